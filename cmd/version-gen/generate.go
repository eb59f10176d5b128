package main

import (
	"github.com/MKhiriev/go-version-gen/internal/app"
	"github.com/MKhiriev/go-version-gen/internal/tui"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newGenerateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Run one generation cycle and write the version artifacts",
		Long: "generate collects the git metadata, builds the version record and writes\n" +
			"one artifact per requested format. In dev mode the artifacts are removed\n" +
			"instead, unless --generate-on-dev is set.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd)
		},
	}
}

func runGenerate(cmd *cobra.Command) error {
	env, err := loadRuntime(cmd, "generate")
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	configureColor(out)
	versions := env.services.VersionService

	if !env.generation.ShouldGenerate() {
		versions.ClearCache(cmd.Context())
		removed, err := versions.CleanArtifacts(cmd.Context())
		if err != nil {
			return reportError(cmd, "clean artifacts", err)
		}
		color.New(color.FgYellow).Fprintln(out, app.MsgDevModeSkipped)
		printPaths(out, "-", color.FgYellow, removed)
		return nil
	}

	result, err := versions.Generate(cmd.Context())
	if err != nil {
		return reportError(cmd, "generate version info", err)
	}

	if err = tui.NewPrinter(out).PrintSummary(result); err != nil {
		return err
	}
	printPaths(out, "+", color.FgGreen, result.Files)
	return nil
}
