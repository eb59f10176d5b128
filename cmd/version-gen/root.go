package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-version-gen/internal/config"
	"github.com/MKhiriev/go-version-gen/models"
	"github.com/spf13/cobra"
)

func execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version-gen",
		Short: "Generate build version artifacts from git metadata",
		Long: "version-gen reads the branch, tag and last commit of a git repository and\n" +
			"writes them, with the build time, to version.<ext> artifacts.\n" +
			"Without a subcommand it runs generate.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				_ = cmd.Usage()
				return fmt.Errorf("unknown command %q for %q", args[0], cmd.CommandPath())
			}
			return runGenerate(cmd)
		},
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	config.RegisterFlags(cmd.PersistentFlags())

	cmd.Version = appBuildInfo().String()
	cmd.SetVersionTemplate("{{.Version}}\n")

	cmd.AddCommand(
		newGenerateCmd(),
		newCleanCmd(),
		newServeCmd(),
		newVersionCmd(),
	)

	return cmd
}

func appBuildInfo() models.AppBuildInfo {
	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}
