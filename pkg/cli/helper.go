package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/gitminer/pkg/cli/config"
	"github.com/m-mizutani/gitminer/pkg/infra"
	"github.com/m-mizutani/gitminer/pkg/usecase"
	"github.com/m-mizutani/gitminer/pkg/utils/logging"
)

// newUseCase opens the configured catalog store and builds the use case on
// top of it. The returned function closes the store.
func newUseCase(ctx context.Context, db *config.Database, fs *config.Firestore) (*usecase.UseCase, func(), error) {
	repo, err := db.NewRepository(ctx, fs)
	if err != nil {
		return nil, nil, err
	}

	closer := func() {
		if err := repo.Close(); err != nil {
			logging.Default().Warn("failed to close catalog repository", slog.Any("error", err))
		}
	}

	clients := infra.New(infra.WithCatalogRepository(repo))
	return usecase.New(clients), closer, nil
}
