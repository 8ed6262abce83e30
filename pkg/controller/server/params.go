package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/m-mizutani/gitminer/pkg/domain/model"
)

const (
	paramPage     = "page"
	paramSize     = "size"
	paramOrder    = "order"
	paramAuthorID = "authorId"
	paramState    = "state"
)

// parseQuery reads page, size and order. page defaults to 0 and size to
// 10; a missing or empty order keeps the store's default ordering. Bounds
// are left to the store.
func parseQuery(r *http.Request) (model.Query, error) {
	values := r.URL.Query()

	var v []string
	page := parseInt(values.Get(paramPage), model.DefaultPage, paramPage, &v)
	size := parseInt(values.Get(paramSize), model.DefaultSize, paramSize, &v)

	if len(v) > 0 {
		return model.Query{}, &model.ValidationError{Violations: v}
	}

	return model.NewQuery(page, size, values.Get(paramOrder)), nil
}

func parseInt(raw string, defaultValue int, name string, violations *[]string) int {
	if raw == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		*violations = append(*violations, fmt.Sprintf("The parameter %s must be an integer.", name))
		return defaultValue
	}
	return n
}

// parseIssueFilter sets a filter when its parameter is present, even if the
// value is empty.
func parseIssueFilter(r *http.Request) model.IssueFilter {
	values := r.URL.Query()

	var filter model.IssueFilter
	if v, ok := values[paramAuthorID]; ok {
		filter.AuthorID = &v[0]
	}
	if v, ok := values[paramState]; ok {
		filter.State = &v[0]
	}
	return filter
}
