package usecase

import (
	"context"

	"github.com/m-mizutani/gitminer/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// lookup fetches a single entity and turns an absent one into the not-found
// error of its kind.
func lookup[T any, ID ~string](ctx context.Context, kind types.EntityKind, id ID, get func(context.Context, ID) (*T, error)) (*T, error) {
	v, err := get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get entity",
			goerr.V("kind", kind),
			goerr.V("id", id),
		)
	}

	if v == nil {
		return nil, goerr.Wrap(kind.NotFound(), "entity not found",
			goerr.V("kind", kind),
			goerr.V("id", id),
		)
	}

	return v, nil
}
