package main

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// VersionCmd prints build information.
func VersionCmd(info VersionInfo) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Example: `  ghdid version
  ghdid version --verbose`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ghdid %s (commit: %s, built: %s)\n", info.Version, info.Commit, info.Date)
			if !verbose {
				return nil
			}

			fmt.Fprintf(out, "\nGo: %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
			bi, ok := debug.ReadBuildInfo()
			if !ok {
				return nil
			}

			table := NewTableWriter([]string{"Dependency", "Version"})
			for _, dep := range bi.Deps {
				table.AddRow([]string{dep.Path, dep.Version})
			}
			fmt.Fprintln(out)
			table.Print(out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&verbose, "verbose", false, "show Go runtime and dependency versions")

	return cmd
}
