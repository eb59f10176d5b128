package main

import (
	"github.com/MKhiriev/go-version-gen/internal/tui"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build information of version-gen itself",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.NewPrinter(cmd.OutOrStdout()).PrintBuildInfo(appBuildInfo())
		},
	}
}
