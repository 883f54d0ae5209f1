package main

import (
	"github.com/spf13/cobra"

	"github.com/piwi3910/guillocut/internal/server"
)

func (c *cli) serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the optimizer as an HTTP JSON API",
		Long: `Serve the optimizer over HTTP. Endpoints:

  GET  /healthz
  POST /api/solve    {"board":{"width":5,"height":8},"pieces":[...]}
  POST /api/value    same body, returns {"value":...}
  POST /api/sweep    {"from":1,"to":20,"height":8,"pieces":[...]}
  GET  /api/profiles

Requests without settings use the flags and config of this command.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := c.settings()
			if err != nil {
				return err
			}
			return server.New(settings).Run(c.v.GetString("addr"))
		},
	}

	cmd.Flags().String("addr", "", "Listen address")
	addSettingsFlags(cmd.Flags())
	return cmd
}
