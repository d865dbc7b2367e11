package cmd

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "version provides version of scan2manifest",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		info, ok := debug.ReadBuildInfo()
		if !ok {
			fmt.Fprintln(out, "scan2manifest: version info not available")
			return
		}

		fmt.Fprintf(out, "scan2manifest: %s\n", info.Main.Version)
		fmt.Fprintf(out, "go:            %s\n", info.GoVersion)
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				fmt.Fprintf(out, "commit:        %s\n", s.Value)
			case "vcs.time":
				fmt.Fprintf(out, "date:          %s\n", s.Value)
			}
		}
	},
}
