package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/gitminer/pkg/cli/config"
	"github.com/m-mizutani/gitminer/pkg/usecase"
	"github.com/m-mizutani/gitminer/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"
)

func loadCommand() *cli.Command {
	var (
		database  config.Database
		firestore config.Firestore
		files     []string
	)

	return &cli.Command{
		Name:    "load",
		Aliases: []string{"l"},
		Usage:   "Load project documents (JSON or YAML) into the catalog",
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringSliceFlag{
				Name:        "file",
				Aliases:     []string{"f"},
				Usage:       "Path to a project document, can be repeated (required)",
				Sources:     cli.EnvVars("GITMINER_LOAD_FILE"),
				Destination: &files,
			},
		}, database.Flags(), firestore.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			if len(files) == 0 {
				return goerr.New("at least one --file is required")
			}

			logging.Default().Info("Starting load",
				slog.Any("files", files),
				slog.Any("database", &database),
				slog.Any("firestore", &firestore),
			)

			uc, closeRepo, err := newUseCase(ctx, &database, &firestore)
			if err != nil {
				return err
			}
			defer closeRepo()

			for _, file := range files {
				if err := loadFile(ctx, uc, file); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func loadFile(ctx context.Context, uc *usecase.UseCase, file string) error {
	project, err := usecase.LoadProjectFromFile(ctx, file)
	if err != nil {
		return goerr.Wrap(err, "failed to load project document", goerr.V("file", file))
	}

	created, err := uc.CreateProject(ctx, project)
	if err != nil {
		return goerr.Wrap(err, "failed to create project", goerr.V("file", file))
	}

	logging.Default().Info("Load completed",
		slog.String("file", file),
		slog.String("project_id", string(created.ID)),
		slog.Int("commits", len(created.Commits)),
		slog.Int("issues", len(created.Issues)),
	)
	return nil
}
