package usecase

import (
	"context"

	"github.com/m-mizutani/gitminer/pkg/domain/interfaces"
	"github.com/m-mizutani/gitminer/pkg/domain/model"
	"github.com/m-mizutani/gitminer/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

type issueFilterKey struct {
	author bool
	state  bool
}

type issueQuery func(ctx context.Context, repo interfaces.IssueRepository, f model.IssueFilter, q model.Query) ([]*model.Issue, error)

// issueQueries selects exactly one store query for each combination of
// supplied filters. When both are given they are combined as a conjunction.
var issueQueries = map[issueFilterKey]issueQuery{
	{author: false, state: false}: func(ctx context.Context, repo interfaces.IssueRepository, _ model.IssueFilter, q model.Query) ([]*model.Issue, error) {
		return repo.ListIssues(ctx, q)
	},
	{author: true, state: false}: func(ctx context.Context, repo interfaces.IssueRepository, f model.IssueFilter, q model.Query) ([]*model.Issue, error) {
		return repo.ListIssuesByAuthorID(ctx, *f.AuthorID, q)
	},
	{author: false, state: true}: func(ctx context.Context, repo interfaces.IssueRepository, f model.IssueFilter, q model.Query) ([]*model.Issue, error) {
		return repo.ListIssuesByState(ctx, *f.State, q)
	},
	{author: true, state: true}: func(ctx context.Context, repo interfaces.IssueRepository, f model.IssueFilter, q model.Query) ([]*model.Issue, error) {
		return repo.ListIssuesByStateAndAuthorID(ctx, *f.State, *f.AuthorID, q)
	},
}

func (x *UseCase) ListIssues(ctx context.Context, filter model.IssueFilter, q model.Query) ([]*model.Issue, error) {
	key := issueFilterKey{author: filter.AuthorID != nil, state: filter.State != nil}

	issues, err := issueQueries[key](ctx, x.clients.IssueRepository(), filter, q)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list issues",
			goerr.V("authorFilter", key.author),
			goerr.V("stateFilter", key.state),
		)
	}
	return issues, nil
}

func (x *UseCase) GetIssue(ctx context.Context, id types.IssueID) (*model.Issue, error) {
	return lookup(ctx, types.KindIssue, id, x.clients.IssueRepository().GetIssue)
}

// ListIssueComments fails with the issue not-found error before querying
// comments when the issue does not exist.
func (x *UseCase) ListIssueComments(ctx context.Context, id types.IssueID, q model.Query) ([]*model.Comment, error) {
	if _, err := x.GetIssue(ctx, id); err != nil {
		return nil, err
	}

	comments, err := x.clients.CommentRepository().ListCommentsByIssueID(ctx, id, q)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list comments of issue", goerr.V("issueID", id))
	}
	return comments, nil
}
