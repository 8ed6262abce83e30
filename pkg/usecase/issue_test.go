package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gitminer/pkg/domain/mock"
	"github.com/m-mizutani/gitminer/pkg/domain/model"
	"github.com/m-mizutani/gitminer/pkg/domain/types"
	"github.com/m-mizutani/gitminer/pkg/infra"
	"github.com/m-mizutani/gitminer/pkg/repository/memory"
	"github.com/m-mizutani/gitminer/pkg/repository/testhelper"
	"github.com/m-mizutani/gitminer/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func ptr(s string) *string { return &s }

func issueMock() *mock.IssueRepositoryMock {
	result := []*model.Issue{{ID: "i1"}}
	return &mock.IssueRepositoryMock{
		ListIssuesFunc: func(ctx context.Context, q model.Query) ([]*model.Issue, error) {
			return result, nil
		},
		ListIssuesByAuthorIDFunc: func(ctx context.Context, authorID string, q model.Query) ([]*model.Issue, error) {
			return result, nil
		},
		ListIssuesByStateFunc: func(ctx context.Context, state string, q model.Query) ([]*model.Issue, error) {
			return result, nil
		},
		ListIssuesByStateAndAuthorIDFunc: func(ctx context.Context, state, authorID string, q model.Query) ([]*model.Issue, error) {
			return result, nil
		},
	}
}

func TestListIssuesFilterSelection(t *testing.T) {
	ctx := context.Background()
	q := model.NewQuery(1, 5, "-votes")

	t.Run("no filter lists every issue", func(t *testing.T) {
		repo := issueMock()
		uc := usecase.New(infra.New(infra.WithIssueRepository(repo)))

		issues, err := uc.ListIssues(ctx, model.IssueFilter{}, q)
		gt.NoError(t, err)
		gt.V(t, len(issues)).Equal(1)
		gt.V(t, len(repo.ListIssuesCalls())).Equal(1)
		gt.V(t, repo.ListIssuesCalls()[0].Q).Equal(q)
		gt.V(t, len(repo.ListIssuesByAuthorIDCalls())).Equal(0)
		gt.V(t, len(repo.ListIssuesByStateCalls())).Equal(0)
		gt.V(t, len(repo.ListIssuesByStateAndAuthorIDCalls())).Equal(0)
	})

	t.Run("author only", func(t *testing.T) {
		repo := issueMock()
		uc := usecase.New(infra.New(infra.WithIssueRepository(repo)))

		_, err := uc.ListIssues(ctx, model.IssueFilter{AuthorID: ptr("u1")}, q)
		gt.NoError(t, err)
		gt.V(t, len(repo.ListIssuesByAuthorIDCalls())).Equal(1)
		gt.V(t, repo.ListIssuesByAuthorIDCalls()[0].AuthorID).Equal("u1")
		gt.V(t, len(repo.ListIssuesCalls())).Equal(0)
		gt.V(t, len(repo.ListIssuesByStateCalls())).Equal(0)
		gt.V(t, len(repo.ListIssuesByStateAndAuthorIDCalls())).Equal(0)
	})

	t.Run("state only", func(t *testing.T) {
		repo := issueMock()
		uc := usecase.New(infra.New(infra.WithIssueRepository(repo)))

		_, err := uc.ListIssues(ctx, model.IssueFilter{State: ptr("opened")}, q)
		gt.NoError(t, err)
		gt.V(t, len(repo.ListIssuesByStateCalls())).Equal(1)
		gt.V(t, repo.ListIssuesByStateCalls()[0].State).Equal("opened")
		gt.V(t, len(repo.ListIssuesCalls())).Equal(0)
		gt.V(t, len(repo.ListIssuesByAuthorIDCalls())).Equal(0)
		gt.V(t, len(repo.ListIssuesByStateAndAuthorIDCalls())).Equal(0)
	})

	t.Run("both filters are combined", func(t *testing.T) {
		repo := issueMock()
		uc := usecase.New(infra.New(infra.WithIssueRepository(repo)))

		_, err := uc.ListIssues(ctx, model.IssueFilter{AuthorID: ptr("u1"), State: ptr("closed")}, q)
		gt.NoError(t, err)
		calls := repo.ListIssuesByStateAndAuthorIDCalls()
		gt.V(t, len(calls)).Equal(1)
		gt.V(t, calls[0].State).Equal("closed")
		gt.V(t, calls[0].AuthorID).Equal("u1")
		gt.V(t, len(repo.ListIssuesCalls())).Equal(0)
		gt.V(t, len(repo.ListIssuesByAuthorIDCalls())).Equal(0)
		gt.V(t, len(repo.ListIssuesByStateCalls())).Equal(0)
	})

	t.Run("empty state is still a filter", func(t *testing.T) {
		repo := issueMock()
		uc := usecase.New(infra.New(infra.WithIssueRepository(repo)))

		_, err := uc.ListIssues(ctx, model.IssueFilter{State: ptr("")}, q)
		gt.NoError(t, err)
		gt.V(t, len(repo.ListIssuesByStateCalls())).Equal(1)
		gt.V(t, repo.ListIssuesByStateCalls()[0].State).Equal("")
	})

	t.Run("store error is returned", func(t *testing.T) {
		storeErr := errors.New("connection refused")
		repo := &mock.IssueRepositoryMock{
			ListIssuesFunc: func(ctx context.Context, q model.Query) ([]*model.Issue, error) {
				return nil, storeErr
			},
		}
		uc := usecase.New(infra.New(infra.WithIssueRepository(repo)))

		_, err := uc.ListIssues(ctx, model.IssueFilter{}, q)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, storeErr))
	})
}

func TestListIssuesWithCatalog(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	testhelper.Seed(t, repo)
	uc := usecase.New(infra.New(infra.WithCatalogRepository(repo)))

	issues, err := uc.ListIssues(ctx, model.IssueFilter{State: ptr("Opened"), AuthorID: ptr("u1")}, model.DefaultQuery())
	gt.NoError(t, err)
	gt.V(t, len(issues)).Equal(1)
	gt.V(t, issues[0].ID).Equal(types.IssueID("i1"))

	issues, err = uc.ListIssues(ctx, model.IssueFilter{}, model.NewQuery(0, 2, ""))
	gt.NoError(t, err)
	gt.V(t, len(issues)).Equal(2)
}

func TestListIssueComments(t *testing.T) {
	ctx := context.Background()

	t.Run("missing issue fails before comments are queried", func(t *testing.T) {
		issues := &mock.IssueRepositoryMock{
			GetIssueFunc: func(ctx context.Context, id types.IssueID) (*model.Issue, error) {
				return nil, nil
			},
		}
		comments := &mock.CommentRepositoryMock{}
		uc := usecase.New(infra.New(
			infra.WithIssueRepository(issues),
			infra.WithCommentRepository(comments),
		))

		_, err := uc.ListIssueComments(ctx, "i404", model.DefaultQuery())
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrIssueNotFound))
		gt.V(t, len(issues.GetIssueCalls())).Equal(1)
		gt.V(t, len(comments.ListCommentsByIssueIDCalls())).Equal(0)
	})

	t.Run("existing issue returns its comments", func(t *testing.T) {
		repo := memory.New()
		testhelper.Seed(t, repo)
		uc := usecase.New(infra.New(infra.WithCatalogRepository(repo)))

		comments, err := uc.ListIssueComments(ctx, "i1", model.NewQuery(0, 10, "-created_at"))
		gt.NoError(t, err)
		gt.V(t, len(comments)).Equal(2)
		gt.V(t, comments[0].ID).Equal(types.CommentID("cm2"))
	})

	t.Run("issue without comments returns empty list", func(t *testing.T) {
		repo := memory.New()
		testhelper.Seed(t, repo)
		uc := usecase.New(infra.New(infra.WithCatalogRepository(repo)))

		comments, err := uc.ListIssueComments(ctx, "i2", model.DefaultQuery())
		gt.NoError(t, err)
		gt.V(t, len(comments)).Equal(0)
	})
}
