package model

import (
	"fmt"
	"strings"

	"github.com/m-mizutani/gitminer/pkg/domain/types"
)

type Issue struct {
	ID          types.IssueID   `json:"id" yaml:"id"`
	RefID       string          `json:"ref_id" yaml:"ref_id"`
	Title       string          `json:"title" yaml:"title"`
	Description string          `json:"description" yaml:"description"`
	State       string          `json:"state" yaml:"state"`
	Labels      []string        `json:"labels" yaml:"labels"`
	Author      User            `json:"author" yaml:"author"`
	Votes       int             `json:"votes" yaml:"votes"`
	CreatedAt   string          `json:"created_at" yaml:"created_at"`
	UpdatedAt   string          `json:"updated_at" yaml:"updated_at"`
	ClosedAt    string          `json:"closed_at" yaml:"closed_at"`
	Comments    []*Comment      `json:"comments" yaml:"comments"`
	ProjectID   types.ProjectID `json:"-" yaml:"-"`
}

var IssueSortKeys = SortKeys{
	"id":          "id",
	"refId":       "ref_id",
	"ref_id":      "ref_id",
	"title":       "title",
	"description": "description",
	"state":       "state",
	"votes":       "votes",
	"createdAt":   "created_at",
	"created_at":  "created_at",
	"updatedAt":   "updated_at",
	"updated_at":  "updated_at",
	"closedAt":    "closed_at",
	"closed_at":   "closed_at",
}

// IssueFilter holds the optional equality filters of an issue listing. A nil
// field means the filter was not supplied.
type IssueFilter struct {
	AuthorID *string
	State    *string
}

// MatchState compares issue states the way every store must: case-insensitively.
func MatchState(actual, expected string) bool {
	return strings.EqualFold(actual, expected)
}

// NormalizeState is the canonical form of a state used by stores that cannot
// compare case-insensitively at query time.
func NormalizeState(state string) string {
	return strings.ToLower(state)
}

func (x *Issue) violations() violations {
	var v violations
	v.requireString("id", string(x.ID))
	for i, comment := range x.Comments {
		field := fmt.Sprintf("comments[%d]", i)
		if comment == nil {
			v.null(field)
			continue
		}
		v.merge(field, comment.violations())
	}
	return v
}

func (x *Issue) Copy() *Issue {
	if x == nil {
		return nil
	}
	cpy := *x
	if x.Labels != nil {
		cpy.Labels = make([]string, len(x.Labels))
		copy(cpy.Labels, x.Labels)
	}
	if x.Comments != nil {
		cpy.Comments = make([]*Comment, len(x.Comments))
		for i, c := range x.Comments {
			cpy.Comments[i] = c.Copy()
		}
	}
	return &cpy
}
