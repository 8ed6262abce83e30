package usecase

import (
	"context"

	"github.com/m-mizutani/gitminer/pkg/domain/model"
	"github.com/m-mizutani/gitminer/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

func (x *UseCase) ListCommits(ctx context.Context, q model.Query) ([]*model.Commit, error) {
	commits, err := x.clients.CommitRepository().ListCommits(ctx, q)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list commits")
	}
	return commits, nil
}

func (x *UseCase) GetCommit(ctx context.Context, id types.CommitID) (*model.Commit, error) {
	return lookup(ctx, types.KindCommit, id, x.clients.CommitRepository().GetCommit)
}
