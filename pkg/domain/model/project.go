package model

import (
	"fmt"

	"github.com/m-mizutani/gitminer/pkg/domain/types"
)

// Project is a mined repository together with its commits and issues.
type Project struct {
	ID      types.ProjectID `json:"id" yaml:"id"`
	Name    string          `json:"name" yaml:"name"`
	WebURL  string          `json:"web_url" yaml:"web_url"`
	Commits []*Commit       `json:"commits" yaml:"commits"`
	Issues  []*Issue        `json:"issues" yaml:"issues"`
}

// ProjectSortKeys maps sortable attribute names to storage field names.
var ProjectSortKeys = SortKeys{
	"id":      "id",
	"name":    "name",
	"webUrl":  "web_url",
	"web_url": "web_url",
}

// Validate checks the project and everything nested in it. All violations
// are collected into a single *ValidationError.
func (x *Project) Validate() error {
	var v violations
	v.requireString("id", string(x.ID))
	v.requireString("name", x.Name)
	v.requireString("web_url", x.WebURL)

	for i, commit := range x.Commits {
		field := fmt.Sprintf("commits[%d]", i)
		if commit == nil {
			v.null(field)
			continue
		}
		v.merge(field, commit.violations())
	}
	for i, issue := range x.Issues {
		field := fmt.Sprintf("issues[%d]", i)
		if issue == nil {
			v.null(field)
			continue
		}
		v.merge(field, issue.violations())
	}

	return v.err()
}

// Copy returns a deep copy of the project.
func (x *Project) Copy() *Project {
	if x == nil {
		return nil
	}
	cpy := *x
	if x.Commits != nil {
		cpy.Commits = make([]*Commit, len(x.Commits))
		for i, c := range x.Commits {
			cpy.Commits[i] = c.Copy()
		}
	}
	if x.Issues != nil {
		cpy.Issues = make([]*Issue, len(x.Issues))
		for i, issue := range x.Issues {
			cpy.Issues[i] = issue.Copy()
		}
	}
	return &cpy
}
