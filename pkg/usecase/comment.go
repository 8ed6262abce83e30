package usecase

import (
	"context"

	"github.com/m-mizutani/gitminer/pkg/domain/model"
	"github.com/m-mizutani/gitminer/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

func (x *UseCase) ListComments(ctx context.Context, q model.Query) ([]*model.Comment, error) {
	comments, err := x.clients.CommentRepository().ListComments(ctx, q)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list comments")
	}
	return comments, nil
}

func (x *UseCase) GetComment(ctx context.Context, id types.CommentID) (*model.Comment, error) {
	return lookup(ctx, types.KindComment, id, x.clients.CommentRepository().GetComment)
}
