package main

import (
	"github.com/spf13/cobra"

	"github.com/jongio/urljudge/cliout"
	"github.com/jongio/urljudge/server"
)

func newServeCmd(g *globalOptions) *cobra.Command {
	var (
		port        int
		metricsPort int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve verdicts over HTTP",
		Long: `Serve GET /judge?url=..., POST /judge, /health and /metrics.

With --metrics-port, /metrics and /health are also served on a separate
port. The server stops gracefully on interrupt.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("port") {
				port = g.resolved.Port
			}

			srv := server.New(server.Config{
				Port:        port,
				MetricsPort: metricsPort,
				Options:     g.resolved.Options(),
				RateLimit:   g.resolved.RateLimit,
				Burst:       g.resolved.Burst,
			})
			if !cliout.IsJSON() {
				cliout.Info("serving on :%d (profile %s)", port, g.resolved.Name)
				if metricsPort > 0 {
					cliout.Info("metrics on :%d", metricsPort)
				}
			}
			return srv.Run(cmd.Context())
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 8080, "Listen port")
	cmd.Flags().IntVar(&metricsPort, "metrics-port", 0, "Also serve metrics on this port (0 disables)")
	return cmd
}
