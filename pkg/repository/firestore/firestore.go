package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/gitminer/pkg/domain/interfaces"
	"github.com/m-mizutani/goerr/v2"
)

type Option func(*catalogRepository)

// WithCollectionPrefix prepends prefix to every collection name. It allows
// several catalogs to share one database.
func WithCollectionPrefix(prefix string) Option {
	return func(r *catalogRepository) {
		r.prefix = prefix
	}
}

// New creates a new Firestore-based catalog repository
func New(ctx context.Context, projectID, databaseID string, options ...Option) (interfaces.CatalogRepository, error) {
	var client *firestore.Client
	var err error

	if databaseID != "" {
		client, err = firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	} else {
		client, err = firestore.NewClient(ctx, projectID)
	}

	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Firestore client",
			goerr.V("projectID", projectID),
			goerr.V("databaseID", databaseID),
		)
	}

	repo := &catalogRepository{
		client: client,
	}
	for _, opt := range options {
		opt(repo)
	}

	return repo, nil
}

func (r *catalogRepository) Close() error {
	if err := r.client.Close(); err != nil {
		return goerr.Wrap(err, "failed to close Firestore client")
	}
	return nil
}
