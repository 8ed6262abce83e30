package rdb_test

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/m-mizutani/gitminer/pkg/domain/interfaces"
	"github.com/m-mizutani/gitminer/pkg/domain/model"
	"github.com/m-mizutani/gitminer/pkg/domain/types"
	"github.com/m-mizutani/gitminer/pkg/repository"
	"github.com/m-mizutani/gitminer/pkg/repository/rdb"
	"github.com/m-mizutani/gitminer/pkg/repository/testhelper"
	"github.com/m-mizutani/gitminer/pkg/utils/testutil"
	"github.com/m-mizutani/gt"
)

func newSQLite(t *testing.T) interfaces.CatalogRepository {
	dsn := types.DatabaseDSN(filepath.Join(t.TempDir(), "catalog.db"))
	repo, err := rdb.New(context.Background(), rdb.SQLite, dsn)
	gt.NoError(t, err)
	t.Cleanup(func() { gt.NoError(t, repo.Close()) })
	return repo
}

func TestSQLiteCatalogRepository(t *testing.T) {
	testhelper.TestAll(t, newSQLite)
}

func TestPostgresCatalogRepository(t *testing.T) {
	baseDSN := testutil.GetEnvOrSkip(t, "TEST_POSTGRES_DSN")

	testhelper.TestAll(t, func(t *testing.T) interfaces.CatalogRepository {
		ctx := context.Background()
		schema := "gitminer_test_" + strings.ReplaceAll(uuid.NewString(), "-", "")

		admin, err := sql.Open("postgres", baseDSN)
		gt.NoError(t, err)
		_, err = admin.ExecContext(ctx, "CREATE SCHEMA "+schema)
		gt.NoError(t, err)
		t.Cleanup(func() {
			_, err := admin.ExecContext(ctx, "DROP SCHEMA "+schema+" CASCADE")
			gt.NoError(t, err)
			gt.NoError(t, admin.Close())
		})

		repo, err := rdb.New(ctx, rdb.Postgres, types.DatabaseDSN(withSearchPath(baseDSN, schema)))
		gt.NoError(t, err)
		t.Cleanup(func() { gt.NoError(t, repo.Close()) })
		return repo
	})
}

func withSearchPath(dsn, schema string) string {
	if !strings.Contains(dsn, "://") {
		return dsn + " search_path=" + schema
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&search_path=" + schema
	}
	return dsn + "?search_path=" + schema
}

func TestSQLiteReopen(t *testing.T) {
	ctx := context.Background()
	dsn := types.DatabaseDSN(filepath.Join(t.TempDir(), "catalog.db"))

	repo, err := rdb.New(ctx, rdb.SQLite, dsn)
	gt.NoError(t, err)
	testhelper.Seed(t, repo)
	gt.NoError(t, repo.Close())

	// Schema creation is idempotent and data survives
	repo, err = rdb.New(ctx, rdb.SQLite, dsn)
	gt.NoError(t, err)
	defer repo.Close()

	commits, err := repo.ListCommits(ctx, model.DefaultQuery())
	gt.NoError(t, err)
	gt.V(t, len(commits)).Equal(5)

	err = repo.CreateProject(ctx, testhelper.Fixture()[1])
	gt.True(t, errors.Is(err, repository.ErrAlreadyExists))
}

func TestLookupDialect(t *testing.T) {
	d, err := rdb.LookupDialect("postgres")
	gt.NoError(t, err)
	gt.True(t, d == rdb.Postgres)

	d, err = rdb.LookupDialect("sqlite")
	gt.NoError(t, err)
	gt.True(t, d == rdb.SQLite)

	_, err = rdb.LookupDialect("mysql")
	gt.Error(t, err)
	gt.True(t, errors.Is(err, types.ErrInvalidOption))
}
