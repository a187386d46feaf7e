package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"defterm/internal/config"
	"defterm/internal/settings"
)

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().BoolVarP(&configWizard, "wizard", "w", false, "edit the profile and server settings interactively")
}

// wizard flag
var configWizard bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Create config.yaml and print its location",
	Long:  "Write config.yaml with defaults when it is missing (or normalize the existing one), then print where it lives.",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		path := configPath
		if path == "" {
			p, err := config.Path()
			if err != nil {
				return err
			}
			path = p
		}
		existed := config.FileExists(path)

		if configWizard {
			if err := settings.Run(&conf); err != nil {
				return err
			}
		}
		if err := config.SaveFile(path, conf); err != nil {
			return err
		}
		switch {
		case configWizard:
			fmt.Fprintf(out, "✓ saved %s\n", path)
		case existed:
			fmt.Fprintf(out, "• config normalized: %s\n", path)
		default:
			fmt.Fprintf(out, "✓ created %s\n", path)
		}
		return nil
	},
}
