package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/m-mizutani/gitminer/pkg/domain/model"
	"github.com/m-mizutani/gitminer/pkg/domain/types"
)

type UseCase interface {
	ListProjects(ctx context.Context, q model.Query) ([]*model.Project, error)
	GetProject(ctx context.Context, id types.ProjectID) (*model.Project, error)
	CreateProject(ctx context.Context, project *model.Project) (*model.Project, error)

	ListCommits(ctx context.Context, q model.Query) ([]*model.Commit, error)
	GetCommit(ctx context.Context, id types.CommitID) (*model.Commit, error)

	ListIssues(ctx context.Context, filter model.IssueFilter, q model.Query) ([]*model.Issue, error)
	GetIssue(ctx context.Context, id types.IssueID) (*model.Issue, error)
	ListIssueComments(ctx context.Context, id types.IssueID, q model.Query) ([]*model.Comment, error)

	ListComments(ctx context.Context, q model.Query) ([]*model.Comment, error)
	GetComment(ctx context.Context, id types.CommentID) (*model.Comment, error)
}
