package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	mdwlog "github.com/msto63/boole/foundation/core/log"
	"github.com/msto63/boole/internal/boole/server"
	"github.com/msto63/boole/pkg/core/version"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 30 * time.Second

func newServeCmd(a *app) *cobra.Command {
	var (
		host string
		port int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP and WebSocket API",
		Long: `Starts the API server.

Endpoints (under /api/v1):
  GET  /health, /stats, /history, /history/{id}
  POST /evaluate, /table, /normalforms
  GET  /ws   WebSocket with ping, evaluate, table and normalforms messages`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("host") {
				a.cfg.Server.Host = host
			}
			if cmd.Flags().Changed("port") {
				a.cfg.Server.Port = port
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			svc, err := a.newService()
			if err != nil {
				return err
			}
			defer svc.Close()

			srv, err := server.New(server.Config{
				Host:         a.cfg.Server.Host,
				Port:         a.cfg.Server.Port,
				ReadTimeout:  a.cfg.Server.ReadTimeout.Duration,
				WriteTimeout: a.cfg.Server.WriteTimeout.Duration,
				Version:      version.Server,
			}, svc)
			if err != nil {
				return err
			}

			if err := srv.StartAsync(); err != nil {
				return err
			}
			a.logger.Info("boole API started", mdwlog.Fields{"address": srv.Address()})
			cmd.Printf("Listening on http://%s/api/v1/\n", srv.Address())

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			<-ctx.Done()

			a.logger.Info("Shutdown signal received, stopping server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Stop(shutdownCtx)
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "listen host (overrides config)")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "listen port (overrides config)")
	return cmd
}
