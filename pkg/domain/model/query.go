package model

import (
	"math"
	"strings"

	"github.com/m-mizutani/gitminer/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

const (
	DefaultPage = 0
	DefaultSize = 10
)

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// Sort is a single sort criterion. Key is an attribute name of the listed
// entity; stores resolve it through the entity's SortKeys.
type Sort struct {
	Key       string
	Direction SortDirection
}

func (x Sort) Descending() bool { return x.Direction == SortDesc }

// Query is the engine agnostic description of a list request. A nil Sort
// means the store's default ordering, which is insertion order for every
// backend in this repository.
type Query struct {
	Page   int
	Size   int
	Offset int
	Limit  int
	Sort   *Sort
}

// NewQuery builds a Query from the raw page, size and order parameters. An
// order starting with "-" sorts descending on the rest of the string, any
// other non-empty order sorts ascending on the whole string. Bounds are not
// checked here; stores call Validate.
func NewQuery(page, size int, order string) Query {
	q := Query{
		Page:   page,
		Size:   size,
		Offset: page * size,
		Limit:  size,
	}

	switch {
	case order == "":
	case strings.HasPrefix(order, "-"):
		q.Sort = &Sort{Key: order[1:], Direction: SortDesc}
	default:
		q.Sort = &Sort{Key: order, Direction: SortAsc}
	}

	return q
}

// DefaultQuery is the query used when no pagination parameter is given.
func DefaultQuery() Query {
	return NewQuery(DefaultPage, DefaultSize, "")
}

// Validate rejects page and size values no store can serve.
func (x Query) Validate() error {
	if x.Page < 0 {
		return goerr.Wrap(types.ErrInvalidParameter, "page index must not be less than zero", goerr.V("page", x.Page))
	}
	if x.Size < 1 {
		return goerr.Wrap(types.ErrInvalidParameter, "page size must not be less than one", goerr.V("size", x.Size))
	}
	if x.Page > math.MaxInt/x.Size {
		return goerr.Wrap(types.ErrInvalidParameter, "page offset is out of range",
			goerr.V("page", x.Page),
			goerr.V("size", x.Size),
		)
	}
	return nil
}

// SortKeys maps the attribute names accepted in an order parameter to the
// field name used by the store.
type SortKeys map[string]string

// Resolve returns the store field for the query's sort key. ok is false when
// the query has a sort key the entity does not know.
func (x SortKeys) Resolve(sort *Sort) (field string, ok bool) {
	if sort == nil {
		return "", true
	}
	field, ok = x[sort.Key]
	return field, ok
}
