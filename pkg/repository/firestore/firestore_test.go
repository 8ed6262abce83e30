package firestore_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/m-mizutani/gitminer/pkg/domain/interfaces"
	"github.com/m-mizutani/gitminer/pkg/domain/model"
	"github.com/m-mizutani/gitminer/pkg/domain/types"
	"github.com/m-mizutani/gitminer/pkg/repository"
	"github.com/m-mizutani/gitminer/pkg/repository/firestore"
	"github.com/m-mizutani/gitminer/pkg/repository/testhelper"
	"github.com/m-mizutani/gitminer/pkg/utils/testutil"
	"github.com/m-mizutani/gt"
)

func TestFirestoreCatalogRepository(t *testing.T) {
	projectID := testutil.GetEnvOrSkip(t, "TEST_FIRESTORE_PROJECT_ID")
	databaseID := testutil.GetEnvOrSkip(t, "TEST_FIRESTORE_DATABASE_ID")

	testhelper.TestAll(t, func(t *testing.T) interfaces.CatalogRepository {
		// A fresh prefix gives every case its own empty collections
		prefix := "test_" + uuid.NewString()[:8] + "_"
		repo, err := firestore.New(context.Background(), projectID, databaseID,
			firestore.WithCollectionPrefix(prefix),
		)
		gt.NoError(t, err)
		t.Cleanup(func() { gt.NoError(t, repo.Close()) })
		return repo
	})
}

func TestToDocumentID(t *testing.T) {
	// Valid cases
	id, err := firestore.ToDocumentID("12345")
	gt.NoError(t, err)
	gt.V(t, id).Equal("12345")

	id, err = firestore.ToDocumentID("a1b2c3d4e5f6")
	gt.NoError(t, err)
	gt.V(t, id).Equal("a1b2c3d4e5f6")

	// Invalid cases
	for _, invalid := range []string{"", "group/project", ".", ".."} {
		_, err = firestore.ToDocumentID(invalid)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, repository.ErrInvalidInput))
	}
}

func TestCheckProjectSize(t *testing.T) {
	build := func(commits, issues, commentsPerIssue int) *model.Project {
		p := &model.Project{ID: "p1", Name: "big", WebURL: "https://example.com/big"}
		for i := range commits {
			p.Commits = append(p.Commits, &model.Commit{ID: types.CommitID(fmt.Sprintf("c%d", i))})
		}
		for i := range issues {
			issue := &model.Issue{ID: types.IssueID(fmt.Sprintf("i%d", i))}
			for j := range commentsPerIssue {
				issue.Comments = append(issue.Comments, &model.Comment{ID: types.CommentID(fmt.Sprintf("cm%d-%d", i, j))})
			}
			p.Issues = append(p.Issues, issue)
		}
		return p
	}

	t.Run("tree at the limit", func(t *testing.T) {
		// project + 298 commits + 100 issues + 100 comments
		p := build(firestore.MaxProjectDocumentsForTest-201, 100, 1)
		gt.NoError(t, firestore.CheckProjectSizeForTest(p))
	})

	t.Run("comments count toward the limit", func(t *testing.T) {
		p := build(firestore.MaxProjectDocumentsForTest-201, 100, 1)
		p.Issues[0].Comments = append(p.Issues[0].Comments, &model.Comment{ID: "extra"})
		err := firestore.CheckProjectSizeForTest(p)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, repository.ErrInvalidInput))
	})

	t.Run("many commits", func(t *testing.T) {
		err := firestore.CheckProjectSizeForTest(build(600, 0, 0))
		gt.Error(t, err)
		gt.True(t, errors.Is(err, repository.ErrInvalidInput))
	})
}
