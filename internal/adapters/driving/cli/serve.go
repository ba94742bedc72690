package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/ytstats/internal/adapters/driving/api"
)

var (
	serveHost string
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Starts the HTTP server exposing:

  GET /api/data?timePeriod=start,end   enriched video records
  GET /healthz                         liveness probe
  GET /metrics                         Prometheus metrics

The server shuts down gracefully on SIGINT or SIGTERM.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "", "listen host (overrides config)")
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "listen port (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if performanceService == nil || cfg == nil {
		return errors.New("performance service not configured")
	}

	server := cfg.Server
	if cmd.Flags().Changed("host") {
		server.Host = serveHost
	}
	if cmd.Flags().Changed("port") {
		server.Port = servePort
	}

	srv := api.NewServer(performanceService, api.Options{
		Addr:              server.Addr(),
		CORSOrigins:       server.CORSOrigins,
		RateLimitRequests: server.RateLimitRequests,
		RateLimitWindow:   server.RateLimitWindow,
		ShutdownTimeout:   server.ShutdownTimeout,
	})
	return srv.Run(cmd.Context())
}
