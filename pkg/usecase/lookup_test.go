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

func TestLookup(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		commit, err := usecase.LookupCommitForTest(ctx, types.KindCommit, "c1",
			func(ctx context.Context, id types.CommitID) (*model.Commit, error) {
				return &model.Commit{ID: id}, nil
			})
		gt.NoError(t, err)
		gt.V(t, commit.ID).Equal(types.CommitID("c1"))
	})

	t.Run("absent becomes not found", func(t *testing.T) {
		_, err := usecase.LookupCommitForTest(ctx, types.KindCommit, "c1",
			func(ctx context.Context, id types.CommitID) (*model.Commit, error) {
				return nil, nil
			})
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrCommitNotFound))
	})

	t.Run("store error is not a not found", func(t *testing.T) {
		storeErr := errors.New("timeout")
		_, err := usecase.LookupCommitForTest(ctx, types.KindCommit, "c1",
			func(ctx context.Context, id types.CommitID) (*model.Commit, error) {
				return nil, storeErr
			})
		gt.Error(t, err)
		gt.True(t, errors.Is(err, storeErr))
		gt.False(t, errors.Is(err, types.ErrCommitNotFound))
	})
}

func TestGetByID(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	testhelper.Seed(t, repo)
	uc := usecase.New(infra.New(infra.WithCatalogRepository(repo)))

	t.Run("existing entities", func(t *testing.T) {
		project, err := uc.GetProject(ctx, "p2")
		gt.NoError(t, err)
		gt.V(t, project.Name).Equal("argh")

		commit, err := uc.GetCommit(ctx, "c3")
		gt.NoError(t, err)
		gt.V(t, commit.Title).Equal("d: add server")

		issue, err := uc.GetIssue(ctx, "i3")
		gt.NoError(t, err)
		gt.V(t, issue.Votes).Equal(10)

		comment, err := uc.GetComment(ctx, "cm4")
		gt.NoError(t, err)
		gt.V(t, comment.Body).Equal("profiled")
	})

	t.Run("each kind has its own not found error", func(t *testing.T) {
		_, err := uc.GetProject(ctx, "missing")
		gt.True(t, errors.Is(err, types.ErrProjectNotFound))

		_, err = uc.GetCommit(ctx, "missing")
		gt.True(t, errors.Is(err, types.ErrCommitNotFound))

		_, err = uc.GetIssue(ctx, "missing")
		gt.True(t, errors.Is(err, types.ErrIssueNotFound))

		_, err = uc.GetComment(ctx, "missing")
		gt.True(t, errors.Is(err, types.ErrCommentNotFound))
		gt.False(t, errors.Is(err, types.ErrIssueNotFound))
	})
}

func TestListEntities(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	testhelper.Seed(t, repo)
	uc := usecase.New(infra.New(infra.WithCatalogRepository(repo)))

	projects, err := uc.ListProjects(ctx, model.DefaultQuery())
	gt.NoError(t, err)
	gt.V(t, len(projects)).Equal(2)

	commits, err := uc.ListCommits(ctx, model.NewQuery(0, 2, "-authored_date"))
	gt.NoError(t, err)
	gt.V(t, len(commits)).Equal(2)
	gt.V(t, commits[0].ID).Equal(types.CommitID("c5"))

	comments, err := uc.ListComments(ctx, model.NewQuery(1, 3, ""))
	gt.NoError(t, err)
	gt.V(t, len(comments)).Equal(1)
	gt.V(t, comments[0].ID).Equal(types.CommentID("cm4"))

	t.Run("bad bounds are rejected", func(t *testing.T) {
		_, err := uc.ListCommits(ctx, model.NewQuery(0, 0, ""))
		gt.True(t, errors.Is(err, types.ErrInvalidParameter))
	})

	t.Run("query is passed to the store unchanged", func(t *testing.T) {
		commitRepo := &mock.CommitRepositoryMock{
			ListCommitsFunc: func(ctx context.Context, q model.Query) ([]*model.Commit, error) {
				return []*model.Commit{}, nil
			},
		}
		uc := usecase.New(infra.New(infra.WithCommitRepository(commitRepo)))

		q := model.NewQuery(3, 7, "title")
		_, err := uc.ListCommits(ctx, q)
		gt.NoError(t, err)
		gt.V(t, commitRepo.ListCommitsCalls()[0].Q.Offset).Equal(21)
		gt.V(t, commitRepo.ListCommitsCalls()[0].Q.Limit).Equal(7)
	})
}
