package main

import (
	"github.com/MKhiriev/go-version-gen/internal/handler"
	"github.com/MKhiriev/go-version-gen/internal/server"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the version record and artifacts over HTTP for local development",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadRuntime(cmd, "serve")
			if err != nil {
				return err
			}

			handlers, err := handler.NewHandlers(env.services, env.cfg.Server, env.log)
			if err != nil {
				return reportError(cmd, "create handlers", err)
			}

			srv, err := server.NewServer(handlers, env.cfg.Server, env.log)
			if err != nil {
				return reportError(cmd, "create server", err)
			}

			if err = srv.RunServer(cmd.Context()); err != nil {
				return reportError(cmd, "run server", err)
			}
			return nil
		},
	}
}
