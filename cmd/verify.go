package cmd

import (
	"fmt"

	"github.com/ethanolivertroy/scan2manifest/internal/parsers"
	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <manifest>",
	Short: "Parse a generated manifest and list its dependencies",
	Args:  cobra.ExactArgs(1),
	RunE:  runVerify,
}

func runVerify(cmd *cobra.Command, args []string) error {
	deps, err := parsers.ParseFile(args[0])
	if err != nil {
		return fmt.Errorf("parsing manifest: %w", err)
	}

	out := cmd.OutOrStdout()
	for _, d := range deps {
		fmt.Fprintln(out, d.String())
	}
	fmt.Fprintf(out, "%d dependencies in %s\n", len(deps), args[0])
	return nil
}
