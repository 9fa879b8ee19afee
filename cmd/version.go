package cmd

import (
	"fmt"
	"runtime"

	"github.com/gapwg/gaplint/pkg/buildinfo"
	"github.com/spf13/cobra"
)

// newVersionCommand reports the binary version.
func newVersionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show gaplint version",
		RunE:  runVersion,
	}
	cmd.Flags().Bool("extended", false, "Show build and platform details")
	return cmd
}

func runVersion(cmd *cobra.Command, _ []string) error {
	extended, _ := cmd.Flags().GetBool("extended")
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "gaplint %s\n", buildinfo.BinaryVersion)
	if extended {
		if mv := buildinfo.ModuleVersion(); mv != "" {
			fmt.Fprintf(out, "module version: %s\n", mv)
		}
		fmt.Fprintf(out, "go version: %s\n", runtime.Version())
		fmt.Fprintf(out, "platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	}
	return nil
}
