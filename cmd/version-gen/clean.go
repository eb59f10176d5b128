package main

import (
	"github.com/MKhiriev/go-version-gen/internal/app"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Remove generated version artifacts from the output directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadRuntime(cmd, "clean")
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			configureColor(out)

			removed, err := env.services.VersionService.CleanArtifacts(cmd.Context())
			if err != nil {
				return reportError(cmd, "clean artifacts", err)
			}
			if len(removed) == 0 {
				color.New(color.Faint).Fprintln(out, app.MsgNothingToClean)
				return nil
			}
			printPaths(out, "-", color.FgYellow, removed)
			return nil
		},
	}
}
