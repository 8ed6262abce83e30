package firestore

import (
	"github.com/m-mizutani/gitminer/pkg/domain/model"
	"github.com/m-mizutani/gitminer/pkg/domain/types"
)

// Field names follow the storage field names of model sort keys.

type sequenceDoc struct {
	Next int64 `firestore:"next"`
}

type projectDoc struct {
	ID     string `firestore:"id"`
	Name   string `firestore:"name"`
	WebURL string `firestore:"web_url"`
	Seq    int64  `firestore:"seq"`
}

func newProjectDoc(p *model.Project) *projectDoc {
	return &projectDoc{
		ID:     string(p.ID),
		Name:   p.Name,
		WebURL: p.WebURL,
	}
}

func (x *projectDoc) toModel() *model.Project {
	return &model.Project{
		ID:     types.ProjectID(x.ID),
		Name:   x.Name,
		WebURL: x.WebURL,
	}
}

type commitDoc struct {
	ID           string `firestore:"id"`
	ProjectID    string `firestore:"project_id"`
	Title        string `firestore:"title"`
	Message      string `firestore:"message"`
	AuthorName   string `firestore:"author_name"`
	AuthorEmail  string `firestore:"author_email"`
	AuthoredDate string `firestore:"authored_date"`
	WebURL       string `firestore:"web_url"`
	Seq          int64  `firestore:"seq"`
}

func newCommitDoc(c *model.Commit, projectID types.ProjectID) *commitDoc {
	return &commitDoc{
		ID:           string(c.ID),
		ProjectID:    string(projectID),
		Title:        c.Title,
		Message:      c.Message,
		AuthorName:   c.AuthorName,
		AuthorEmail:  c.AuthorEmail,
		AuthoredDate: c.AuthoredDate,
		WebURL:       c.WebURL,
	}
}

func (x *commitDoc) toModel() *model.Commit {
	return &model.Commit{
		ID:           types.CommitID(x.ID),
		Title:        x.Title,
		Message:      x.Message,
		AuthorName:   x.AuthorName,
		AuthorEmail:  x.AuthorEmail,
		AuthoredDate: x.AuthoredDate,
		WebURL:       x.WebURL,
		ProjectID:    types.ProjectID(x.ProjectID),
	}
}

type issueDoc struct {
	ID          string     `firestore:"id"`
	ProjectID   string     `firestore:"project_id"`
	RefID       string     `firestore:"ref_id"`
	Title       string     `firestore:"title"`
	Description string     `firestore:"description"`
	State       string     `firestore:"state"`
	StateKey    string     `firestore:"state_key"`
	Labels      []string   `firestore:"labels"`
	Author      model.User `firestore:"author"`
	Votes       int        `firestore:"votes"`
	CreatedAt   string     `firestore:"created_at"`
	UpdatedAt   string     `firestore:"updated_at"`
	ClosedAt    string     `firestore:"closed_at"`
	Seq         int64      `firestore:"seq"`
}

func newIssueDoc(issue *model.Issue, projectID types.ProjectID) *issueDoc {
	return &issueDoc{
		ID:          string(issue.ID),
		ProjectID:   string(projectID),
		RefID:       issue.RefID,
		Title:       issue.Title,
		Description: issue.Description,
		State:       issue.State,
		StateKey:    model.NormalizeState(issue.State),
		Labels:      issue.Labels,
		Author:      issue.Author,
		Votes:       issue.Votes,
		CreatedAt:   issue.CreatedAt,
		UpdatedAt:   issue.UpdatedAt,
		ClosedAt:    issue.ClosedAt,
	}
}

func (x *issueDoc) toModel() *model.Issue {
	return &model.Issue{
		ID:          types.IssueID(x.ID),
		RefID:       x.RefID,
		Title:       x.Title,
		Description: x.Description,
		State:       x.State,
		Labels:      x.Labels,
		Author:      x.Author,
		Votes:       x.Votes,
		CreatedAt:   x.CreatedAt,
		UpdatedAt:   x.UpdatedAt,
		ClosedAt:    x.ClosedAt,
		ProjectID:   types.ProjectID(x.ProjectID),
	}
}

type commentDoc struct {
	ID        string     `firestore:"id"`
	IssueID   string     `firestore:"issue_id"`
	Body      string     `firestore:"body"`
	Author    model.User `firestore:"author"`
	CreatedAt string     `firestore:"created_at"`
	UpdatedAt string     `firestore:"updated_at"`
	Seq       int64      `firestore:"seq"`
}

func newCommentDoc(c *model.Comment, issueID types.IssueID) *commentDoc {
	return &commentDoc{
		ID:        string(c.ID),
		IssueID:   string(issueID),
		Body:      c.Body,
		Author:    c.Author,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (x *commentDoc) toModel() *model.Comment {
	return &model.Comment{
		ID:        types.CommentID(x.ID),
		Body:      x.Body,
		Author:    x.Author,
		CreatedAt: x.CreatedAt,
		UpdatedAt: x.UpdatedAt,
		IssueID:   types.IssueID(x.IssueID),
	}
}
