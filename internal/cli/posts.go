package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	xterm "golang.org/x/term"

	"defterm/internal/content"
)

var errNoContentDir = errors.New("no content directory: pass --content or set content_dir in the config")

// postsCmd groups the commands over the markdown posts collection.
var postsCmd = &cobra.Command{
	Use:   "posts",
	Short: "Inspect the markdown posts collection",
	Long:  "List, render and search posts, or print the front matter JSON Schema.",
}

func init() {
	rootCmd.AddCommand(postsCmd)
	postsCmd.PersistentFlags().String("content", "", "posts directory; defaults to content_dir from the config")
	postsLsCmd.Flags().Bool("drafts", false, "include drafts")
	postsShowCmd.Flags().IntP("width", "w", 0, "wrap width; defaults to the terminal width")
	postsCmd.AddCommand(postsLsCmd, postsShowCmd, postsSearchCmd, postsSchemaCmd)
}

func loadPosts(cmd *cobra.Command) (*content.Collection, error) {
	dir, _ := cmd.Flags().GetString("content")
	if dir == "" {
		dir = conf.ContentDir
	}
	if dir == "" {
		return nil, errNoContentDir
	}
	return openPosts(dir)
}

func printPosts(w io.Writer, posts []content.Post) {
	if len(posts) == 0 {
		fmt.Fprintln(w, "(no posts)")
		return
	}
	for _, p := range posts {
		line := fmt.Sprintf("%s  %-28s %s", p.Date.Format("2006-01-02"), p.Slug, p.Title)
		if len(p.Tags) > 0 {
			line += "  [" + strings.Join(p.Tags, ", ") + "]"
		}
		if p.Draft {
			line += "  (draft)"
		}
		fmt.Fprintln(w, line)
	}
}

var postsLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List posts, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		posts, err := loadPosts(cmd)
		if err != nil {
			return err
		}
		drafts, _ := cmd.Flags().GetBool("drafts")
		printPosts(cmd.OutOrStdout(), posts.List(drafts))
		return nil
	},
}

var postsShowCmd = &cobra.Command{
	Use:   "show <slug>",
	Short: "Render a post in the terminal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		posts, err := loadPosts(cmd)
		if err != nil {
			return err
		}
		p, ok := posts.Get(args[0])
		if !ok {
			return fmt.Errorf("post %q not found", args[0])
		}
		width, _ := cmd.Flags().GetInt("width")
		if width <= 0 {
			width = terminalWidth()
		}
		out, err := content.RenderTerminal(p, width)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

// terminalWidth is the width of stdout, or 80 when it is not a terminal.
func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !xterm.IsTerminal(fd) {
		return 80
	}
	w, _, err := xterm.GetSize(fd)
	if err != nil || w <= 0 {
		return 80
	}
	return w
}

var postsSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Fuzzy-search titles, descriptions and tags",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		posts, err := loadPosts(cmd)
		if err != nil {
			return err
		}
		printPosts(cmd.OutOrStdout(), posts.Search(strings.Join(args, " ")))
		return nil
	},
}

var postsSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of post front matter",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := content.MarshalSchema(content.Schema())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(b))
		return nil
	},
}
