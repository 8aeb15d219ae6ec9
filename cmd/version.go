package cmd

import (
	"runtime"

	"github.com/spf13/cobra"
)

// versionCmd prints the build stamp, which helps when a dashboard workflow
// pins a particular prdash release.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show which prdash build is running",
	Long: `Print the prdash release, the commit it was built from, the build date
and the Go runtime. Paste this into bug reports about dashboard output.`,
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("prdash CLI\n")
		cmd.Printf("  Version: %s\n", version)
		cmd.Printf("  Commit:  %s\n", commit)
		cmd.Printf("  Built:   %s\n", date)
		cmd.Printf("  Runtime: %s\n", runtime.Version())
	},
}
