package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"defterm/internal/content"
	"defterm/internal/system"
	"defterm/internal/webui/server"
)

func init() {
	rootCmd.AddCommand(webCmd)
	webCmd.Flags().StringP("addr", "a", "", "address to bind (host:port); defaults to web_addr from the config")
	webCmd.Flags().BoolP("open", "o", false, "open the browser after start")
	webCmd.Flags().String("content", "", "markdown posts directory served under /api/posts")
}

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Serve the terminal page, its websocket and the posts API",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")
		open, _ := cmd.Flags().GetBool("open")
		dir, _ := cmd.Flags().GetString("content")
		if addr == "" {
			addr = conf.WebAddr
		}
		if dir == "" {
			dir = conf.ContentDir
		}

		// Handle Ctrl+C
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		srv := &server.Server{Addr: addr, Profile: conf.Profile}
		if dir != "" {
			posts, err := openPosts(dir)
			if err != nil {
				return err
			}
			srv.Posts = posts
			go func() {
				if err := posts.Watch(ctx); err != nil {
					system.Logger.Warn("content watch stopped", "err", err)
				}
			}()
		}

		url := fmt.Sprintf("http://%s/", addr)
		system.Logger.Info("starting web", "url", url)
		if open {
			if err := server.OpenBrowser(url, system.Component("web")); err != nil {
				system.Logger.Warn("failed to open browser", "err", err)
			}
		}
		if err := srv.Start(ctx); err != nil {
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		}
		return nil
	},
}

func openPosts(dir string) (*content.Collection, error) {
	posts, err := content.Open(dir, system.Component("content"))
	switch {
	case err == nil:
	case errors.Is(err, content.ErrInvalid):
		// the valid posts are still served
		system.Logger.Warn("skipping invalid posts", "dir", dir, "err", err)
	default:
		return nil, fmt.Errorf("open content %s: %w", dir, err)
	}
	return posts, nil
}
