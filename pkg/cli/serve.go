package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"

	"github.com/oskaripessinen/vps-container-orchestrator/pkg/cli/config"
	"github.com/oskaripessinen/vps-container-orchestrator/pkg/controller/server"
	"github.com/oskaripessinen/vps-container-orchestrator/pkg/infra"
	"github.com/oskaripessinen/vps-container-orchestrator/pkg/infra/githubapi"
	"github.com/oskaripessinen/vps-container-orchestrator/pkg/usecase"
	"github.com/oskaripessinen/vps-container-orchestrator/pkg/utils/logging"
)

func serveCommand() *cli.Command {
	var (
		addr           string
		allowedOrigins []string

		clerk  config.Clerk
		sentry config.Sentry
	)
	serveFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Binding address",
			Value:       "127.0.0.1:8080",
			Sources:     cli.EnvVars("ORCHESTRATOR_ADDR"),
			Destination: &addr,
		},
		&cli.StringSliceFlag{
			Name:        "allowed-origin",
			Usage:       "CORS allowed origin of the UI, repeatable",
			Sources:     cli.EnvVars("ORCHESTRATOR_ALLOWED_ORIGINS"),
			Destination: &allowedOrigins,
		},
	}

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Server mode",
		Flags: slice.Flatten(
			serveFlags,
			clerk.Flags(),
			sentry.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting serve",
				slog.Any("Addr", addr),
				slog.Any("AllowedOrigins", strings.Join(allowedOrigins, ",")),
				slog.Any("Clerk", clerk),
				slog.Any("Sentry", sentry),
			)

			if err := sentry.Configure(ctx); err != nil {
				return err
			}

			identity, err := clerk.New()
			if err != nil {
				return err
			}

			clients := infra.New(
				infra.WithGitHub(githubapi.New()),
				infra.WithIdentity(identity),
			)

			uc := usecase.New(clients)
			s := server.New(uc,
				server.WithIdentity(identity),
				server.WithAllowedOrigins(allowedOrigins),
			)

			serverErr := make(chan error, 1)
			httpServer := &http.Server{
				Addr:    addr,
				Handler: s.Mux(),

				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       30 * time.Second,
				WriteTimeout:      30 * time.Second,
			}

			go func() {
				logging.Default().Info("starting http server", "addr", addr)
				if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
					serverErr <- goerr.Wrap(err, "failed to listen and serve")
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-serverErr:
				return err

			case sig := <-quit:
				logging.Default().Info("shutting down server", "signal", sig)

				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := httpServer.Shutdown(ctx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server")
				}
			}

			return nil
		},
	}
}
