package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	appver "defterm/internal/version"
)

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().Bool("long", false, "also print the Go toolchain and platform")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print defterm version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		w := cmd.OutOrStdout()
		long, _ := cmd.Flags().GetBool("long")
		if !long {
			// bare version for scripts
			fmt.Fprintln(w, appver.AppVersion)
			return
		}
		fmt.Fprintf(w, "defterm %s\n%s %s/%s\n", appver.AppVersion, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	},
}
