package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/gitminer/pkg/domain/interfaces"
	"github.com/m-mizutani/gitminer/pkg/repository/firestore"
	"github.com/urfave/cli/v3"
)

type Firestore struct {
	projectID        string
	databaseID       string
	collectionPrefix string
}

func (x *Firestore) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "firestore-project-id",
			Usage:       "Firestore project ID",
			Category:    "Firestore",
			Sources:     cli.EnvVars("GITMINER_FIRESTORE_PROJECT_ID"),
			Destination: &x.projectID,
		},
		&cli.StringFlag{
			Name:        "firestore-database-id",
			Usage:       "Firestore database ID",
			Category:    "Firestore",
			Sources:     cli.EnvVars("GITMINER_FIRESTORE_DATABASE_ID"),
			Value:       "(default)",
			Destination: &x.databaseID,
		},
		&cli.StringFlag{
			Name:        "firestore-collection-prefix",
			Usage:       "Prefix of catalog collection names",
			Category:    "Firestore",
			Sources:     cli.EnvVars("GITMINER_FIRESTORE_COLLECTION_PREFIX"),
			Destination: &x.collectionPrefix,
		},
	}
}

func (x *Firestore) Enabled() bool {
	return x.projectID != ""
}

func (x *Firestore) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("projectID", x.projectID),
		slog.Any("databaseID", x.databaseID),
		slog.Any("collectionPrefix", x.collectionPrefix),
	)
}

func (x *Firestore) NewRepository(ctx context.Context) (interfaces.CatalogRepository, error) {
	var options []firestore.Option
	if x.collectionPrefix != "" {
		options = append(options, firestore.WithCollectionPrefix(x.collectionPrefix))
	}
	return firestore.New(ctx, x.projectID, x.databaseID, options...)
}
