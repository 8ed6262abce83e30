package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gitminer/pkg/domain/mock"
	"github.com/m-mizutani/gitminer/pkg/domain/model"
	"github.com/m-mizutani/gitminer/pkg/domain/types"
	"github.com/m-mizutani/gitminer/pkg/infra"
	"github.com/m-mizutani/gitminer/pkg/repository"
	"github.com/m-mizutani/gitminer/pkg/repository/memory"
	"github.com/m-mizutani/gitminer/pkg/repository/testhelper"
	"github.com/m-mizutani/gitminer/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func TestCreateProject(t *testing.T) {
	ctx := context.Background()

	t.Run("stores the whole tree", func(t *testing.T) {
		repo := memory.New()
		uc := usecase.New(infra.New(infra.WithCatalogRepository(repo)))

		created, err := uc.CreateProject(ctx, testhelper.Fixture()[0])
		gt.NoError(t, err)
		gt.V(t, created.ID).Equal(types.ProjectID("p1"))
		gt.V(t, len(created.Commits)).Equal(3)
		gt.V(t, len(created.Issues)).Equal(3)
		gt.V(t, len(created.Issues[0].Comments)).Equal(2)

		comment, err := uc.GetComment(ctx, "cm2")
		gt.NoError(t, err)
		gt.V(t, comment.IssueID).Equal(types.IssueID("i1"))
	})

	t.Run("invalid project is not stored", func(t *testing.T) {
		projects := &mock.ProjectRepositoryMock{}
		uc := usecase.New(infra.New(infra.WithProjectRepository(projects)))

		p := testhelper.Fixture()[0]
		p.Issues[0].Comments[1].Body = ""
		p.Name = ""

		_, err := uc.CreateProject(ctx, p)
		gt.Error(t, err)

		var verr *model.ValidationError
		gt.True(t, errors.As(err, &verr))
		gt.V(t, verr.Violations).Equal([]string{
			"The field name cannot be empty.",
			"The field issues[0].comments[1].body cannot be empty.",
		})
		gt.V(t, len(projects.CreateProjectCalls())).Equal(0)
	})

	t.Run("duplicate id is rejected", func(t *testing.T) {
		repo := memory.New()
		testhelper.Seed(t, repo)
		uc := usecase.New(infra.New(infra.WithCatalogRepository(repo)))

		_, err := uc.CreateProject(ctx, testhelper.Fixture()[1])
		gt.Error(t, err)
		gt.True(t, errors.Is(err, repository.ErrAlreadyExists))
	})
}
