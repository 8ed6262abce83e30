package infra_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gitminer/pkg/domain/interfaces"
	"github.com/m-mizutani/gitminer/pkg/domain/model"
	"github.com/m-mizutani/gitminer/pkg/infra"
	"github.com/m-mizutani/gitminer/pkg/repository/memory"
	"github.com/m-mizutani/gt"
)

func TestNew(t *testing.T) {
	t.Run("create new clients without options", func(t *testing.T) {
		clients := infra.New()
		// Every repository is served by the default in-memory catalog
		gt.V(t, clients.ProjectRepository()).NotEqual(nil)
		gt.V(t, clients.CommitRepository()).NotEqual(nil)
		gt.V(t, clients.IssueRepository()).NotEqual(nil)
		gt.V(t, clients.CommentRepository()).NotEqual(nil)

		projects, err := clients.ProjectRepository().ListProjects(context.Background(), model.DefaultQuery())
		gt.NoError(t, err)
		gt.V(t, len(projects)).Equal(0)
	})

	t.Run("WithCatalogRepository option sets every repository", func(t *testing.T) {
		repo := memory.New()
		clients := infra.New(infra.WithCatalogRepository(repo))
		gt.V(t, clients.ProjectRepository()).Equal(interfaces.ProjectRepository(repo))
		gt.V(t, clients.CommitRepository()).Equal(interfaces.CommitRepository(repo))
		gt.V(t, clients.IssueRepository()).Equal(interfaces.IssueRepository(repo))
		gt.V(t, clients.CommentRepository()).Equal(interfaces.CommentRepository(repo))
	})

	t.Run("single repository options can be combined", func(t *testing.T) {
		catalog := memory.New()
		issues := &issueRepositoryStub{}

		clients := infra.New(
			infra.WithCatalogRepository(catalog),
			infra.WithIssueRepository(issues),
		)

		gt.V(t, clients.IssueRepository()).Equal(interfaces.IssueRepository(issues))
		gt.V(t, clients.CommentRepository()).Equal(interfaces.CommentRepository(catalog))
	})
}

type issueRepositoryStub struct {
	interfaces.IssueRepository
}
