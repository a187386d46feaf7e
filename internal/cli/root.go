package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"defterm/internal/app"
	"defterm/internal/config"
	"defterm/internal/system"
)

var (
	configPath string
	logLevel   string
	// conf is loaded before every command runs.
	conf config.Config
)

var rootCmd = &cobra.Command{
	Use:   "defterm",
	Short: "defterm – a portfolio shell for the terminal, the browser and SSH",
	Long:  "defterm runs a small portfolio shell. Without a subcommand it opens the TUI.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if configPath != "" {
			conf, err = config.LoadFile(configPath)
		} else {
			conf, err = config.Load()
		}
		if err != nil {
			system.Logger.Warn("using default config", "err", err)
		}
		lvl := conf.LogLevel
		if cmd.Flags().Changed("log-level") {
			lvl = logLevel
		}
		return system.SetLevel(lvl)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default action: launch the TUI
		return app.Start(conf)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default is config.yaml in the defterm config dir)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level: debug, info, warn, error")
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
