package model

import "github.com/m-mizutani/gitminer/pkg/domain/types"

type Comment struct {
	ID        types.CommentID `json:"id" yaml:"id"`
	Body      string          `json:"body" yaml:"body"`
	Author    User            `json:"author" yaml:"author"`
	CreatedAt string          `json:"created_at" yaml:"created_at"`
	UpdatedAt string          `json:"updated_at" yaml:"updated_at"`
	IssueID   types.IssueID   `json:"-" yaml:"-"`
}

var CommentSortKeys = SortKeys{
	"id":         "id",
	"body":       "body",
	"createdAt":  "created_at",
	"created_at": "created_at",
	"updatedAt":  "updated_at",
	"updated_at": "updated_at",
}

// Validate checks a single comment outside of a project tree.
func (x *Comment) Validate() error {
	v := x.violations()
	return v.err()
}

func (x *Comment) violations() violations {
	var v violations
	v.requireString("id", string(x.ID))
	v.requireString("body", x.Body)
	v.requireString("created_at", x.CreatedAt)
	return v
}

func (x *Comment) Copy() *Comment {
	if x == nil {
		return nil
	}
	cpy := *x
	return &cpy
}
