package main

import (
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-version-gen/internal/config"
	"github.com/MKhiriev/go-version-gen/internal/logger"
	"github.com/MKhiriev/go-version-gen/internal/service"
	"github.com/MKhiriev/go-version-gen/internal/store"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var isTerminal = term.IsTerminal

// runtimeEnv is everything a subcommand needs after configuration loaded.
type runtimeEnv struct {
	cfg        *config.StructuredConfig
	generation config.Generation
	log        *logger.Logger
	services   *service.Services
}

// loadRuntime merges the configuration for cmd, builds the console logger
// and wires the services. Errors are reported to stderr before returning.
func loadRuntime(cmd *cobra.Command, role string) (*runtimeEnv, error) {
	cfg, err := config.GetStructuredConfig(cmd.Flags())
	if err != nil {
		return nil, reportError(cmd, "load configuration", err)
	}

	log := logger.NewLogger(role, logger.Options{
		Level:   cfg.Log.Level,
		Silent:  config.BoolValue(cfg.Log.Silent),
		Console: true,
		NoColor: !isTTY(cmd.ErrOrStderr()),
		Writer:  cmd.ErrOrStderr(),
	})
	log.Debug().Any("config", cfg).Msg("received configs")

	generation := cfg.Generation()
	services, err := service.NewServices(store.NewStorages(log), generation, appBuildInfo(), log)
	if err != nil {
		return nil, reportError(cmd, "create services", err)
	}

	return &runtimeEnv{
		cfg:        cfg,
		generation: generation,
		log:        log,
		services:   services,
	}, nil
}

func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isTerminal(int(f.Fd()))
}

// configureColor turns fatih/color off unless out is a terminal.
func configureColor(out io.Writer) {
	color.NoColor = !isTTY(out)
}

func reportError(cmd *cobra.Command, action string, err error) error {
	err = fmt.Errorf("%s: %w", action, err)
	color.New(color.FgRed).Fprintln(cmd.ErrOrStderr(), "error:", err)
	return err
}

func printPaths(out io.Writer, mark string, attr color.Attribute, paths []string) {
	c := color.New(attr)
	for _, path := range paths {
		c.Fprintf(out, "%s %s\n", mark, path)
	}
}
