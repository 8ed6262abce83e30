package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/gitminer/pkg/domain/model"
	"github.com/m-mizutani/gitminer/pkg/domain/types"
	"github.com/m-mizutani/gitminer/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

func (x *UseCase) ListProjects(ctx context.Context, q model.Query) ([]*model.Project, error) {
	projects, err := x.clients.ProjectRepository().ListProjects(ctx, q)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list projects")
	}
	return projects, nil
}

func (x *UseCase) GetProject(ctx context.Context, id types.ProjectID) (*model.Project, error) {
	return lookup(ctx, types.KindProject, id, x.clients.ProjectRepository().GetProject)
}

// CreateProject validates the project with everything nested in it, stores
// the whole tree and returns the stored project.
func (x *UseCase) CreateProject(ctx context.Context, project *model.Project) (*model.Project, error) {
	if err := project.Validate(); err != nil {
		return nil, err
	}

	repo := x.clients.ProjectRepository()
	if err := repo.CreateProject(ctx, project); err != nil {
		return nil, goerr.Wrap(err, "failed to create project", goerr.V("projectID", project.ID))
	}

	logging.From(ctx).Info("project created",
		slog.Any("projectID", project.ID),
		slog.Int("commits", len(project.Commits)),
		slog.Int("issues", len(project.Issues)),
	)

	return lookup(ctx, types.KindProject, project.ID, repo.GetProject)
}
