package interfaces

//go:generate moq -out ../mock/repository.go -pkg mock . ProjectRepository CommitRepository IssueRepository CommentRepository

import (
	"context"

	"github.com/m-mizutani/gitminer/pkg/domain/model"
	"github.com/m-mizutani/gitminer/pkg/domain/types"
)

// Get methods of every repository return (nil, nil) when no entity has the
// given ID. Absence is an ordinary outcome; the use case layer turns it into
// the entity specific not-found error.

type ProjectRepository interface {
	GetProject(ctx context.Context, id types.ProjectID) (*model.Project, error)
	ListProjects(ctx context.Context, q model.Query) ([]*model.Project, error)
	// CreateProject inserts the project with its commits, issues and comments.
	// It fails with repository.ErrAlreadyExists on any ID collision.
	CreateProject(ctx context.Context, project *model.Project) error
}

type CommitRepository interface {
	GetCommit(ctx context.Context, id types.CommitID) (*model.Commit, error)
	ListCommits(ctx context.Context, q model.Query) ([]*model.Commit, error)
}

type IssueRepository interface {
	GetIssue(ctx context.Context, id types.IssueID) (*model.Issue, error)
	ListIssues(ctx context.Context, q model.Query) ([]*model.Issue, error)
	ListIssuesByAuthorID(ctx context.Context, authorID string, q model.Query) ([]*model.Issue, error)
	ListIssuesByState(ctx context.Context, state string, q model.Query) ([]*model.Issue, error)
	ListIssuesByStateAndAuthorID(ctx context.Context, state, authorID string, q model.Query) ([]*model.Issue, error)
}

type CommentRepository interface {
	GetComment(ctx context.Context, id types.CommentID) (*model.Comment, error)
	ListComments(ctx context.Context, q model.Query) ([]*model.Comment, error)
	// ListCommentsByIssueID does not check that the issue exists.
	ListCommentsByIssueID(ctx context.Context, issueID types.IssueID, q model.Query) ([]*model.Comment, error)
}

// CatalogRepository is implemented by every storage backend.
type CatalogRepository interface {
	ProjectRepository
	CommitRepository
	IssueRepository
	CommentRepository
	Close() error
}
