package model

import "github.com/m-mizutani/gitminer/pkg/domain/types"

type Commit struct {
	ID           types.CommitID  `json:"id" yaml:"id"`
	Title        string          `json:"title" yaml:"title"`
	Message      string          `json:"message" yaml:"message"`
	AuthorName   string          `json:"author_name" yaml:"author_name"`
	AuthorEmail  string          `json:"author_email" yaml:"author_email"`
	AuthoredDate string          `json:"authored_date" yaml:"authored_date"`
	WebURL       string          `json:"web_url" yaml:"web_url"`
	ProjectID    types.ProjectID `json:"-" yaml:"-"`
}

var CommitSortKeys = SortKeys{
	"id":            "id",
	"title":         "title",
	"message":       "message",
	"authorName":    "author_name",
	"author_name":   "author_name",
	"authorEmail":   "author_email",
	"author_email":  "author_email",
	"authoredDate":  "authored_date",
	"authored_date": "authored_date",
	"webUrl":        "web_url",
	"web_url":       "web_url",
}

func (x *Commit) violations() violations {
	var v violations
	v.requireString("id", string(x.ID))
	return v
}

func (x *Commit) Copy() *Commit {
	if x == nil {
		return nil
	}
	cpy := *x
	return &cpy
}
