package cli_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gitminer/pkg/cli"
	"github.com/m-mizutani/gitminer/pkg/domain/model"
	"github.com/m-mizutani/gitminer/pkg/domain/types"
	"github.com/m-mizutani/gitminer/pkg/repository"
	"github.com/m-mizutani/gitminer/pkg/repository/rdb"
	"github.com/m-mizutani/gt"
)

const projectYAML = `id: p1
name: gitminer
web_url: https://example.com/gitminer
commits:
  - id: c1
    title: initial commit
issues:
  - id: i1
    title: crash
    state: opened
    author:
      id: u1
      username: alice
    comments:
      - id: cm1
        body: confirmed
        created_at: "2024-01-05T01:00:00Z"
`

const projectJSON = `{"id":"p2","name":"argh","web_url":"https://example.com/argh"}`

func stubLogging(t *testing.T) *[]string {
	var args []string
	orig := cli.ConfigureLogging
	cli.ConfigureLogging = func(logFormat, logLevel, logOutput string) error {
		args = []string{logFormat, logLevel, logOutput}
		return nil
	}
	t.Cleanup(func() { cli.ConfigureLogging = orig })
	return &args
}

func TestLoadCommand(t *testing.T) {
	stubLogging(t)
	ctx := context.Background()
	dir := t.TempDir()

	yamlFile := filepath.Join(dir, "p1.yaml")
	jsonFile := filepath.Join(dir, "p2.json")
	gt.NoError(t, os.WriteFile(yamlFile, []byte(projectYAML), 0600))
	gt.NoError(t, os.WriteFile(jsonFile, []byte(projectJSON), 0600))
	dbFile := filepath.Join(dir, "catalog.db")

	err := cli.New().Run(ctx, []string{
		"gitminer", "load",
		"--db-backend", "sqlite", "--db-dsn", dbFile,
		"--file", yamlFile, "--file", jsonFile,
	})
	gt.NoError(t, err)

	repo, err := rdb.New(ctx, rdb.SQLite, types.DatabaseDSN(dbFile))
	gt.NoError(t, err)
	defer repo.Close()

	projects, err := repo.ListProjects(ctx, model.DefaultQuery())
	gt.NoError(t, err)
	gt.A(t, projects).Length(2)
	gt.V(t, projects[0].ID).Equal(types.ProjectID("p1"))
	gt.A(t, projects[0].Issues).Length(1)
	gt.A(t, projects[0].Issues[0].Comments).Length(1)

	t.Run("loading the same document again conflicts", func(t *testing.T) {
		err := cli.New().Run(ctx, []string{
			"gitminer", "load",
			"--db-backend", "sqlite", "--db-dsn", dbFile,
			"--file", jsonFile,
		})
		gt.True(t, errors.Is(err, repository.ErrAlreadyExists))
	})
}

func TestLoadCommandErrors(t *testing.T) {
	stubLogging(t)
	ctx := context.Background()
	dir := t.TempDir()

	invalid := filepath.Join(dir, "invalid.json")
	gt.NoError(t, os.WriteFile(invalid, []byte(`{"id":"p3"}`), 0600))

	testCases := map[string]struct {
		args  []string
		isErr error
	}{
		"file is required": {
			args: []string{"gitminer", "load"},
		},
		"unknown backend": {
			args:  []string{"gitminer", "load", "--db-backend", "mysql", "--file", invalid},
			isErr: types.ErrInvalidOption,
		},
		"sqlite requires dsn": {
			args:  []string{"gitminer", "load", "--db-backend", "sqlite", "--file", invalid},
			isErr: types.ErrInvalidOption,
		},
		"firestore requires project id": {
			args:  []string{"gitminer", "load", "--db-backend", "firestore", "--file", invalid},
			isErr: types.ErrInvalidOption,
		},
		"unsupported extension": {
			args:  []string{"gitminer", "load", "--file", filepath.Join(dir, "project.toml")},
			isErr: types.ErrInvalidOption,
		},
		"invalid document": {
			args:  []string{"gitminer", "load", "--file", invalid},
			isErr: types.ErrValidationFailed,
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			err := cli.New().Run(ctx, tc.args)
			gt.Error(t, err)
			if tc.isErr != nil {
				gt.True(t, errors.Is(err, tc.isErr))
			}
		})
	}
}

func TestGlobalLogFlags(t *testing.T) {
	args := stubLogging(t)
	dir := t.TempDir()
	file := filepath.Join(dir, "p2.json")
	gt.NoError(t, os.WriteFile(file, []byte(projectJSON), 0600))

	err := cli.New().Run(context.Background(), []string{
		"gitminer", "--log-format", "json", "--log-level", "debug", "--log-output", "stderr",
		"load", "--file", file,
	})
	gt.NoError(t, err)
	gt.V(t, *args).Equal([]string{"json", "debug", "stderr"})
}
