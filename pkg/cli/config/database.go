package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/gitminer/pkg/domain/interfaces"
	"github.com/m-mizutani/gitminer/pkg/domain/types"
	"github.com/m-mizutani/gitminer/pkg/repository/memory"
	"github.com/m-mizutani/gitminer/pkg/repository/rdb"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

const (
	BackendMemory    = "memory"
	BackendPostgres  = "postgres"
	BackendSQLite    = "sqlite"
	BackendFirestore = "firestore"
)

type Database struct {
	backend string
	dsn     types.DatabaseDSN
}

func (x *Database) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "db-backend",
			Usage:       "Catalog storage backend [memory|postgres|sqlite|firestore]",
			Category:    "Database",
			Value:       BackendMemory,
			Destination: &x.backend,
			Sources:     cli.EnvVars("GITMINER_DB_BACKEND"),
		},
		&cli.StringFlag{
			Name:        "db-dsn",
			Usage:       "Data source name for postgres, or database file path for sqlite",
			Category:    "Database",
			Destination: (*string)(&x.dsn),
			Sources:     cli.EnvVars("GITMINER_DB_DSN"),
		},
	}
}

func (x *Database) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("backend", x.backend),
		slog.Any("dsn", x.dsn),
	)
}

// NewRepository opens the configured backend. fs is only consulted for the
// firestore backend.
func (x *Database) NewRepository(ctx context.Context, fs *Firestore) (interfaces.CatalogRepository, error) {
	switch x.backend {
	case BackendMemory, "":
		return memory.New(), nil

	case BackendPostgres, BackendSQLite:
		if x.dsn == "" {
			return nil, goerr.Wrap(types.ErrInvalidOption, "--db-dsn is required", goerr.V("backend", x.backend))
		}
		dialect, err := rdb.LookupDialect(x.backend)
		if err != nil {
			return nil, err
		}
		return rdb.New(ctx, dialect, x.dsn)

	case BackendFirestore:
		if fs == nil || !fs.Enabled() {
			return nil, goerr.Wrap(types.ErrInvalidOption, "--firestore-project-id is required for firestore backend")
		}
		return fs.NewRepository(ctx)

	default:
		return nil, goerr.Wrap(types.ErrInvalidOption, "unknown database backend", goerr.V("backend", x.backend))
	}
}
