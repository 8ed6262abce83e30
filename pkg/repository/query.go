package repository

import (
	"github.com/m-mizutani/gitminer/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

// ResolveQuery checks the query bounds and returns the storage field of its
// sort key. field is empty when the query has no sort.
func ResolveQuery(q model.Query, keys model.SortKeys) (field string, err error) {
	if err := q.Validate(); err != nil {
		return "", err
	}

	field, ok := keys.Resolve(q.Sort)
	if !ok {
		return "", goerr.Wrap(ErrUnknownSortKey, "no such attribute to sort by",
			goerr.V("key", q.Sort.Key),
		)
	}

	return field, nil
}
