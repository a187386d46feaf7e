package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"defterm/internal/config"
	"defterm/internal/sshd"
)

func init() {
	rootCmd.AddCommand(sshCmd)
	sshCmd.Flags().StringP("addr", "a", "", "address to bind (host:port); defaults to ssh_addr from the config")
	sshCmd.Flags().String("host-key", "", "host key file, generated when missing")
	sshCmd.Flags().Int("max-sessions", sshd.DefaultMaxSessions, "concurrent connection limit")
}

var sshCmd = &cobra.Command{
	Use:   "ssh",
	Short: "Serve the shell over SSH",
	Long:  "Start an SSH server. Interactive logins get the shell; `ssh host <command>` runs one command.",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")
		key, _ := cmd.Flags().GetString("host-key")
		limit, _ := cmd.Flags().GetInt("max-sessions")
		if addr == "" {
			addr = conf.SSHAddr
		}
		if key == "" {
			key = conf.HostKey
		}
		if key == "" {
			p, err := config.HostKeyPath()
			if err != nil {
				return err
			}
			key = p
		}

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		srv := &sshd.Server{Addr: addr, HostKeyPath: key, Profile: conf.Profile, MaxSessions: limit}
		return srv.Start(ctx)
	},
}
