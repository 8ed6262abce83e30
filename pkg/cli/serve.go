package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/gitminer/pkg/cli/config"
	"github.com/m-mizutani/gitminer/pkg/controller/server"
	"github.com/m-mizutani/gitminer/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"

	"github.com/urfave/cli/v3"
)

func serveCommand() *cli.Command {
	var (
		addr        string
		basePath    string
		maxBodySize int64

		database  config.Database
		firestore config.Firestore
		sentry    config.Sentry
	)
	serveFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Binding address",
			Value:       "127.0.0.1:8000",
			Sources:     cli.EnvVars("GITMINER_ADDR"),
			Destination: &addr,
		},
		&cli.StringFlag{
			Name:        "base-path",
			Usage:       "Path prefix of the catalog API",
			Value:       server.DefaultBasePath,
			Sources:     cli.EnvVars("GITMINER_BASE_PATH"),
			Destination: &basePath,
		},
		&cli.Int64Flag{
			Name:        "max-body-size",
			Usage:       "Maximum size in bytes of a posted project document",
			Value:       32 << 20,
			Sources:     cli.EnvVars("GITMINER_MAX_BODY_SIZE"),
			Destination: &maxBodySize,
		},
	}

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Server mode",
		Flags: slice.Flatten(
			serveFlags,
			database.Flags(),
			firestore.Flags(),
			sentry.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting serve",
				slog.Any("Addr", addr),
				slog.Any("BasePath", basePath),
				slog.Any("Database", &database),
				slog.Any("Firestore", &firestore),
				slog.Any("Sentry", &sentry),
			)

			if err := sentry.Configure(ctx); err != nil {
				return err
			}

			uc, closeRepo, err := newUseCase(ctx, &database, &firestore)
			if err != nil {
				return err
			}
			defer closeRepo()

			s := server.New(uc,
				server.WithBasePath(basePath),
				server.WithMaxBodySize(maxBodySize),
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
