package testhelper

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gitminer/pkg/domain/interfaces"
	"github.com/m-mizutani/gitminer/pkg/domain/model"
	"github.com/m-mizutani/gitminer/pkg/domain/types"
	"github.com/m-mizutani/gitminer/pkg/repository"
	"github.com/m-mizutani/gt"
)

// Factory returns an empty repository. It is called once per test case so
// that list results do not depend on data created by other cases.
type Factory func(t *testing.T) interfaces.CatalogRepository

// TestAll runs all test cases for CatalogRepository.
// This is the main entry point for testing any CatalogRepository implementation
func TestAll(t *testing.T, newRepo Factory) {
	t.Run("CreateAndGet", func(t *testing.T) {
		TestCreateAndGet(t, newRepo(t))
	})
	t.Run("GetMissing", func(t *testing.T) {
		TestGetMissing(t, newRepo(t))
	})
	t.Run("DuplicateCreate", func(t *testing.T) {
		TestDuplicateCreate(t, newRepo(t))
	})
	t.Run("Pagination", func(t *testing.T) {
		TestPagination(t, newRepo(t))
	})
	t.Run("Sort", func(t *testing.T) {
		TestSort(t, newRepo(t))
	})
	t.Run("InvalidQuery", func(t *testing.T) {
		TestInvalidQuery(t, newRepo(t))
	})
	t.Run("IssueFilters", func(t *testing.T) {
		TestIssueFilters(t, newRepo(t))
	})
	t.Run("CommentsByIssue", func(t *testing.T) {
		TestCommentsByIssue(t, newRepo(t))
	})
}

// Fixture returns two projects. Issue states deliberately mix letter case
// and votes are chosen so that numeric and lexical order differ.
func Fixture() []*model.Project {
	alice := model.User{ID: "u1", Username: "alice", Name: "Alice", WebURL: "https://example.com/alice"}
	bob := model.User{ID: "u2", Username: "bob", Name: "Bob", AvatarURL: "https://example.com/bob.png"}

	return []*model.Project{
		{
			ID:     "p1",
			Name:   "gitminer",
			WebURL: "https://example.com/gitminer",
			Commits: []*model.Commit{
				{ID: "c1", Title: "b: add model", Message: "model", AuthorName: "Alice", AuthorEmail: "alice@example.com", AuthoredDate: "2024-01-02T00:00:00Z", WebURL: "https://example.com/c1"},
				{ID: "c2", Title: "a: initial commit", Message: "init", AuthorName: "Bob", AuthorEmail: "bob@example.com", AuthoredDate: "2024-01-01T00:00:00Z", WebURL: "https://example.com/c2"},
				{ID: "c3", Title: "d: add server", Message: "server", AuthorName: "Alice", AuthorEmail: "alice@example.com", AuthoredDate: "2024-01-04T00:00:00Z", WebURL: "https://example.com/c3"},
			},
			Issues: []*model.Issue{
				{
					ID: "i1", RefID: "1", Title: "crash on start", Description: "nil pointer", State: "opened",
					Labels: []string{"bug"}, Author: alice, Votes: 3,
					CreatedAt: "2024-01-05T00:00:00Z", UpdatedAt: "2024-01-06T00:00:00Z",
					Comments: []*model.Comment{
						{ID: "cm1", Body: "confirmed", Author: bob, CreatedAt: "2024-01-05T01:00:00Z", UpdatedAt: "2024-01-05T01:00:00Z"},
						{ID: "cm2", Body: "fixed in c3", Author: alice, CreatedAt: "2024-01-05T02:00:00Z"},
					},
				},
				{
					ID: "i2", RefID: "2", Title: "typo in readme", State: "Closed",
					Labels: []string{"docs", "good first issue"}, Author: bob, Votes: 1,
					CreatedAt: "2024-01-03T00:00:00Z", ClosedAt: "2024-01-04T00:00:00Z",
					Comments: []*model.Comment{},
				},
				{
					ID: "i3", RefID: "3", Title: "support yaml", State: "OPENED",
					Labels: []string{"enhancement"}, Author: bob, Votes: 10,
					CreatedAt: "2024-01-07T00:00:00Z",
					Comments: []*model.Comment{
						{ID: "cm3", Body: "+1", Author: alice, CreatedAt: "2024-01-07T03:00:00Z"},
					},
				},
			},
		},
		{
			ID:     "p2",
			Name:   "argh",
			WebURL: "https://example.com/argh",
			Commits: []*model.Commit{
				{ID: "c4", Title: "c: digest", AuthoredDate: "2024-01-03T00:00:00Z"},
				{ID: "c5", Title: "e: release", AuthoredDate: "2024-01-08T00:00:00Z"},
			},
			Issues: []*model.Issue{
				{
					ID: "i4", RefID: "1", Title: "slow sync", State: "closed",
					Labels: []string{"performance"}, Author: alice, Votes: 2,
					CreatedAt: "2024-01-02T00:00:00Z",
					Comments: []*model.Comment{
						{ID: "cm4", Body: "profiled", Author: bob, CreatedAt: "2024-01-02T05:00:00Z"},
					},
				},
			},
		},
	}
}

// Seed stores Fixture in repo and returns it.
func Seed(t *testing.T, repo interfaces.CatalogRepository) []*model.Project {
	t.Helper()
	ctx := context.Background()

	projects := Fixture()
	for _, p := range projects {
		gt.NoError(t, repo.CreateProject(ctx, p.Copy()))
	}
	return projects
}

func TestCreateAndGet(t *testing.T, repo interfaces.CatalogRepository) {
	ctx := context.Background()
	projects := Seed(t, repo)
	expected := projects[0]

	got, err := repo.GetProject(ctx, expected.ID)
	gt.NoError(t, err)
	gt.V(t, got).NotEqual(nil)
	gt.V(t, got.ID).Equal(expected.ID)
	gt.V(t, got.Name).Equal(expected.Name)
	gt.V(t, got.WebURL).Equal(expected.WebURL)

	// Nested collections keep insertion order
	gt.V(t, commitIDs(got.Commits)).Equal([]types.CommitID{"c1", "c2", "c3"})
	gt.V(t, issueIDs(got.Issues)).Equal([]types.IssueID{"i1", "i2", "i3"})
	gt.V(t, commentIDs(got.Issues[0].Comments)).Equal([]types.CommentID{"cm1", "cm2"})
	gt.V(t, len(got.Issues[1].Comments)).Equal(0)

	commit, err := repo.GetCommit(ctx, "c1")
	gt.NoError(t, err)
	gt.V(t, commit.Title).Equal("b: add model")
	gt.V(t, commit.AuthorEmail).Equal("alice@example.com")
	gt.V(t, commit.AuthoredDate).Equal("2024-01-02T00:00:00Z")
	gt.V(t, commit.ProjectID).Equal(types.ProjectID("p1"))

	issue, err := repo.GetIssue(ctx, "i2")
	gt.NoError(t, err)
	want := expected.Issues[1]
	gt.V(t, issue.Title).Equal(want.Title)
	gt.V(t, issue.State).Equal("Closed")
	gt.V(t, issue.Labels).Equal(want.Labels)
	gt.V(t, issue.Author).Equal(want.Author)
	gt.V(t, issue.Votes).Equal(1)
	gt.V(t, issue.ClosedAt).Equal(want.ClosedAt)
	gt.V(t, issue.ProjectID).Equal(types.ProjectID("p1"))

	comment, err := repo.GetComment(ctx, "cm1")
	gt.NoError(t, err)
	gt.V(t, comment.Body).Equal("confirmed")
	gt.V(t, comment.Author).Equal(expected.Issues[0].Comments[0].Author)
	gt.V(t, comment.CreatedAt).Equal("2024-01-05T01:00:00Z")
	gt.V(t, comment.IssueID).Equal(types.IssueID("i1"))

	// Returned values are not shared with the store
	got.Commits[0].Title = "modified"
	again, err := repo.GetCommit(ctx, "c1")
	gt.NoError(t, err)
	gt.V(t, again.Title).Equal("b: add model")
}

func TestGetMissing(t *testing.T, repo interfaces.CatalogRepository) {
	ctx := context.Background()
	Seed(t, repo)

	project, err := repo.GetProject(ctx, "no-such-project")
	gt.NoError(t, err)
	gt.True(t, project == nil)

	commit, err := repo.GetCommit(ctx, "no-such-commit")
	gt.NoError(t, err)
	gt.True(t, commit == nil)

	issue, err := repo.GetIssue(ctx, "no-such-issue")
	gt.NoError(t, err)
	gt.True(t, issue == nil)

	comment, err := repo.GetComment(ctx, "no-such-comment")
	gt.NoError(t, err)
	gt.True(t, comment == nil)
}

func TestDuplicateCreate(t *testing.T, repo interfaces.CatalogRepository) {
	ctx := context.Background()
	projects := Seed(t, repo)

	t.Run("same project id", func(t *testing.T) {
		err := repo.CreateProject(ctx, &model.Project{ID: projects[0].ID, Name: "dup", WebURL: "https://example.com/dup"})
		gt.Error(t, err)
		gt.True(t, errors.Is(err, repository.ErrAlreadyExists))
	})

	t.Run("nested id collision leaves nothing behind", func(t *testing.T) {
		p := &model.Project{
			ID:     "p3",
			Name:   "collider",
			WebURL: "https://example.com/collider",
			Commits: []*model.Commit{
				{ID: "c100", Title: "fresh"},
			},
			Issues: []*model.Issue{
				{ID: "i100", State: "opened", Comments: []*model.Comment{
					{ID: "cm1", Body: "taken", CreatedAt: "2024-02-01T00:00:00Z"},
				}},
			},
		}
		err := repo.CreateProject(ctx, p)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, repository.ErrAlreadyExists))

		got, err := repo.GetProject(ctx, "p3")
		gt.NoError(t, err)
		gt.True(t, got == nil)

		commit, err := repo.GetCommit(ctx, "c100")
		gt.NoError(t, err)
		gt.True(t, commit == nil)
	})

	t.Run("duplicate inside one payload", func(t *testing.T) {
		p := &model.Project{
			ID:     "p4",
			Name:   "twins",
			WebURL: "https://example.com/twins",
			Commits: []*model.Commit{
				{ID: "c200", Title: "one"},
				{ID: "c200", Title: "two"},
			},
		}
		err := repo.CreateProject(ctx, p)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, repository.ErrAlreadyExists))

		got, err := repo.GetProject(ctx, "p4")
		gt.NoError(t, err)
		gt.True(t, got == nil)
	})
}

func TestPagination(t *testing.T, repo interfaces.CatalogRepository) {
	ctx := context.Background()
	Seed(t, repo)

	t.Run("default order is insertion order", func(t *testing.T) {
		commits, err := repo.ListCommits(ctx, model.DefaultQuery())
		gt.NoError(t, err)
		gt.V(t, commitIDs(commits)).Equal([]types.CommitID{"c1", "c2", "c3", "c4", "c5"})

		projects, err := repo.ListProjects(ctx, model.DefaultQuery())
		gt.NoError(t, err)
		gt.V(t, len(projects)).Equal(2)
		gt.V(t, projects[0].ID).Equal(types.ProjectID("p1"))
		gt.V(t, len(projects[0].Commits)).Equal(3)
		gt.V(t, len(projects[1].Issues)).Equal(1)
	})

	t.Run("pages are cut by offset and limit", func(t *testing.T) {
		first, err := repo.ListCommits(ctx, model.NewQuery(0, 2, ""))
		gt.NoError(t, err)
		gt.V(t, commitIDs(first)).Equal([]types.CommitID{"c1", "c2"})

		second, err := repo.ListCommits(ctx, model.NewQuery(1, 2, ""))
		gt.NoError(t, err)
		gt.V(t, commitIDs(second)).Equal([]types.CommitID{"c3", "c4"})

		last, err := repo.ListCommits(ctx, model.NewQuery(2, 2, ""))
		gt.NoError(t, err)
		gt.V(t, commitIDs(last)).Equal([]types.CommitID{"c5"})
	})

	t.Run("page beyond the end is empty", func(t *testing.T) {
		comments, err := repo.ListComments(ctx, model.NewQuery(5, 10, ""))
		gt.NoError(t, err)
		gt.V(t, len(comments)).Equal(0)
	})

	t.Run("issues are hydrated with comments", func(t *testing.T) {
		issues, err := repo.ListIssues(ctx, model.NewQuery(0, 1, ""))
		gt.NoError(t, err)
		gt.V(t, len(issues)).Equal(1)
		gt.V(t, commentIDs(issues[0].Comments)).Equal([]types.CommentID{"cm1", "cm2"})
	})
}

func TestSort(t *testing.T, repo interfaces.CatalogRepository) {
	ctx := context.Background()
	Seed(t, repo)

	t.Run("ascending", func(t *testing.T) {
		commits, err := repo.ListCommits(ctx, model.NewQuery(0, 10, "title"))
		gt.NoError(t, err)
		gt.V(t, commitIDs(commits)).Equal([]types.CommitID{"c2", "c1", "c4", "c3", "c5"})
	})

	t.Run("descending", func(t *testing.T) {
		commits, err := repo.ListCommits(ctx, model.NewQuery(0, 10, "-title"))
		gt.NoError(t, err)
		gt.V(t, commitIDs(commits)).Equal([]types.CommitID{"c5", "c3", "c4", "c1", "c2"})
	})

	t.Run("sort applies before paging", func(t *testing.T) {
		commits, err := repo.ListCommits(ctx, model.NewQuery(1, 2, "title"))
		gt.NoError(t, err)
		gt.V(t, commitIDs(commits)).Equal([]types.CommitID{"c4", "c3"})
	})

	t.Run("camel case key", func(t *testing.T) {
		commits, err := repo.ListCommits(ctx, model.NewQuery(0, 3, "authoredDate"))
		gt.NoError(t, err)
		gt.V(t, commitIDs(commits)).Equal([]types.CommitID{"c2", "c1", "c4"})
	})

	t.Run("numeric attribute", func(t *testing.T) {
		issues, err := repo.ListIssues(ctx, model.NewQuery(0, 10, "-votes"))
		gt.NoError(t, err)
		gt.V(t, issueIDs(issues)).Equal([]types.IssueID{"i3", "i1", "i4", "i2"})
	})

	t.Run("projects and comments", func(t *testing.T) {
		projects, err := repo.ListProjects(ctx, model.NewQuery(0, 10, "name"))
		gt.NoError(t, err)
		gt.V(t, len(projects)).Equal(2)
		gt.V(t, projects[0].ID).Equal(types.ProjectID("p2"))

		comments, err := repo.ListComments(ctx, model.NewQuery(0, 10, "-created_at"))
		gt.NoError(t, err)
		gt.V(t, commentIDs(comments)).Equal([]types.CommentID{"cm3", "cm2", "cm1", "cm4"})
	})
}

func TestInvalidQuery(t *testing.T, repo interfaces.CatalogRepository) {
	ctx := context.Background()
	Seed(t, repo)

	t.Run("unknown sort key", func(t *testing.T) {
		_, err := repo.ListCommits(ctx, model.NewQuery(0, 10, "password"))
		gt.Error(t, err)
		gt.True(t, errors.Is(err, repository.ErrUnknownSortKey))

		_, err = repo.ListIssuesByState(ctx, "opened", model.NewQuery(0, 10, "-nope"))
		gt.Error(t, err)
		gt.True(t, errors.Is(err, repository.ErrUnknownSortKey))
	})

	t.Run("negative page", func(t *testing.T) {
		_, err := repo.ListProjects(ctx, model.NewQuery(-1, 10, ""))
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrInvalidParameter))
	})

	t.Run("zero size", func(t *testing.T) {
		_, err := repo.ListComments(ctx, model.NewQuery(0, 0, ""))
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrInvalidParameter))
	})

	t.Run("offset overflow", func(t *testing.T) {
		// page*size wraps to a negative offset and to zero respectively
		_, err := repo.ListCommits(ctx, model.NewQuery(3074457345618258603, 3, ""))
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrInvalidParameter))

		_, err = repo.ListCommits(ctx, model.NewQuery(4611686018427387904, 4, ""))
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrInvalidParameter))

		_, err = repo.ListIssuesByState(ctx, "opened", model.NewQuery(4611686018427387904, 4, "votes"))
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrInvalidParameter))
	})
}

func TestIssueFilters(t *testing.T, repo interfaces.CatalogRepository) {
	ctx := context.Background()
	Seed(t, repo)
	q := model.DefaultQuery()

	t.Run("by author", func(t *testing.T) {
		issues, err := repo.ListIssuesByAuthorID(ctx, "u2", q)
		gt.NoError(t, err)
		gt.V(t, issueIDs(issues)).Equal([]types.IssueID{"i2", "i3"})
	})

	t.Run("by state ignores case", func(t *testing.T) {
		issues, err := repo.ListIssuesByState(ctx, "opened", q)
		gt.NoError(t, err)
		gt.V(t, issueIDs(issues)).Equal([]types.IssueID{"i1", "i3"})

		issues, err = repo.ListIssuesByState(ctx, "CLOSED", q)
		gt.NoError(t, err)
		gt.V(t, issueIDs(issues)).Equal([]types.IssueID{"i2", "i4"})
	})

	t.Run("by state and author", func(t *testing.T) {
		issues, err := repo.ListIssuesByStateAndAuthorID(ctx, "Opened", "u2", q)
		gt.NoError(t, err)
		gt.V(t, issueIDs(issues)).Equal([]types.IssueID{"i3"})

		issues, err = repo.ListIssuesByStateAndAuthorID(ctx, "closed", "u1", q)
		gt.NoError(t, err)
		gt.V(t, issueIDs(issues)).Equal([]types.IssueID{"i4"})
	})

	t.Run("no match", func(t *testing.T) {
		issues, err := repo.ListIssuesByAuthorID(ctx, "u9", q)
		gt.NoError(t, err)
		gt.V(t, len(issues)).Equal(0)

		issues, err = repo.ListIssuesByState(ctx, "", q)
		gt.NoError(t, err)
		gt.V(t, len(issues)).Equal(0)
	})

	t.Run("filtered and sorted", func(t *testing.T) {
		issues, err := repo.ListIssuesByState(ctx, "opened", model.NewQuery(0, 10, "-votes"))
		gt.NoError(t, err)
		gt.V(t, issueIDs(issues)).Equal([]types.IssueID{"i3", "i1"})
	})
}

func TestCommentsByIssue(t *testing.T, repo interfaces.CatalogRepository) {
	ctx := context.Background()
	Seed(t, repo)

	comments, err := repo.ListCommentsByIssueID(ctx, "i1", model.DefaultQuery())
	gt.NoError(t, err)
	gt.V(t, commentIDs(comments)).Equal([]types.CommentID{"cm1", "cm2"})

	comments, err = repo.ListCommentsByIssueID(ctx, "i1", model.NewQuery(0, 1, "-createdAt"))
	gt.NoError(t, err)
	gt.V(t, commentIDs(comments)).Equal([]types.CommentID{"cm2"})

	comments, err = repo.ListCommentsByIssueID(ctx, "i2", model.DefaultQuery())
	gt.NoError(t, err)
	gt.V(t, len(comments)).Equal(0)

	comments, err = repo.ListCommentsByIssueID(ctx, "no-such-issue", model.DefaultQuery())
	gt.NoError(t, err)
	gt.V(t, len(comments)).Equal(0)
}

func commitIDs(commits []*model.Commit) []types.CommitID {
	ids := make([]types.CommitID, len(commits))
	for i, c := range commits {
		ids[i] = c.ID
	}
	return ids
}

func issueIDs(issues []*model.Issue) []types.IssueID {
	ids := make([]types.IssueID, len(issues))
	for i, issue := range issues {
		ids[i] = issue.ID
	}
	return ids
}

func commentIDs(comments []*model.Comment) []types.CommentID {
	ids := make([]types.CommentID, len(comments))
	for i, c := range comments {
		ids[i] = c.ID
	}
	return ids
}
