package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"testing"

	"github.com/m-mizutani/gitminer/pkg/controller/server"
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

func newSeededServer(t *testing.T, options ...server.Option) *server.Server {
	repo := memory.New()
	testhelper.Seed(t, repo)
	uc := usecase.New(infra.New(infra.WithCatalogRepository(repo)))
	return server.New(uc, options...)
}

func serve(t *testing.T, srv *server.Server, method, path string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, path, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	srv.Mux().ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

type errorsBody struct {
	Errors []string `json:"errors"`
}

type messageBody struct {
	Message string `json:"message"`
}

func TestHealth(t *testing.T) {
	srv := server.New(usecase.New(infra.New()))

	rec := serve(t, srv, http.MethodGet, "/health", nil)
	gt.V(t, rec.Code).Equal(http.StatusOK)
	gt.V(t, rec.Body.String()).Equal("ok")
}

func TestListCommits(t *testing.T) {
	srv := newSeededServer(t)

	testCases := map[string]struct {
		query string
		ids   []types.CommitID
	}{
		"default page": {
			query: "",
			ids:   []types.CommitID{"c1", "c2", "c3", "c4", "c5"},
		},
		"second page": {
			query: "?page=1&size=2",
			ids:   []types.CommitID{"c3", "c4"},
		},
		"last page is short": {
			query: "?page=2&size=2",
			ids:   []types.CommitID{"c5"},
		},
		"beyond last page": {
			query: "?page=9&size=2",
			ids:   []types.CommitID{},
		},
		"ascending by title": {
			query: "?order=title",
			ids:   []types.CommitID{"c2", "c1", "c4", "c3", "c5"},
		},
		"descending by title": {
			query: "?order=-title&size=2",
			ids:   []types.CommitID{"c5", "c3"},
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			rec := serve(t, srv, http.MethodGet, "/gitminer/commits"+tc.query, nil)
			gt.V(t, rec.Code).Equal(http.StatusOK)
			gt.V(t, rec.Header().Get("Content-Type")).Equal("application/json")

			commits := decode[[]*model.Commit](t, rec)
			ids := make([]types.CommitID, len(commits))
			for i, c := range commits {
				ids[i] = c.ID
			}
			gt.V(t, ids).Equal(tc.ids)
		})
	}
}

func TestListParameterErrors(t *testing.T) {
	srv := newSeededServer(t)

	t.Run("non integer page", func(t *testing.T) {
		rec := serve(t, srv, http.MethodGet, "/gitminer/projects?page=abc", nil)
		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
		body := decode[errorsBody](t, rec)
		gt.A(t, body.Errors).Length(1)
		gt.S(t, body.Errors[0]).Contains("page")
	})

	t.Run("non integer page and size", func(t *testing.T) {
		rec := serve(t, srv, http.MethodGet, "/gitminer/projects?page=x&size=y", nil)
		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
		gt.A(t, decode[errorsBody](t, rec).Errors).Length(2)
	})

	t.Run("negative page is rejected by store", func(t *testing.T) {
		rec := serve(t, srv, http.MethodGet, "/gitminer/commits?page=-1", nil)
		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
	})

	t.Run("zero size is rejected by store", func(t *testing.T) {
		rec := serve(t, srv, http.MethodGet, "/gitminer/comments?size=0", nil)
		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
	})

	t.Run("page offset overflow", func(t *testing.T) {
		rec := serve(t, srv, http.MethodGet, "/gitminer/commits?page=3074457345618258603&size=3", nil)
		gt.V(t, rec.Code).Equal(http.StatusBadRequest)

		rec = serve(t, srv, http.MethodGet, "/gitminer/commits?page=4611686018427387904&size=4", nil)
		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
	})

	t.Run("unknown sort key", func(t *testing.T) {
		rec := serve(t, srv, http.MethodGet, "/gitminer/issues?order=nope", nil)
		gt.V(t, rec.Code).Equal(http.StatusInternalServerError)
		gt.V(t, decode[messageBody](t, rec).Message).Equal("internal server error")
	})
}

func TestGetByID(t *testing.T) {
	srv := newSeededServer(t)

	testCases := map[string]struct {
		path    string
		code    int
		message string
	}{
		"project":           {path: "/gitminer/projects/p1", code: http.StatusOK},
		"missing project":   {path: "/gitminer/projects/nope", code: http.StatusNotFound, message: "Project not found"},
		"commit":            {path: "/gitminer/commits/c4", code: http.StatusOK},
		"missing commit":    {path: "/gitminer/commits/nope", code: http.StatusNotFound, message: "Commit not found"},
		"issue":             {path: "/gitminer/issues/i3", code: http.StatusOK},
		"missing issue":     {path: "/gitminer/issues/nope", code: http.StatusNotFound, message: "Issue not found"},
		"comment":           {path: "/gitminer/comments/cm2", code: http.StatusOK},
		"missing comment":   {path: "/gitminer/comments/nope", code: http.StatusNotFound, message: "Comment not found"},
		"unknown route":     {path: "/gitminer/users/u1", code: http.StatusNotFound},
		"outside base path": {path: "/projects/p1", code: http.StatusNotFound},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			rec := serve(t, srv, http.MethodGet, tc.path, nil)
			gt.V(t, rec.Code).Equal(tc.code)
			if tc.message != "" {
				gt.V(t, decode[messageBody](t, rec).Message).Equal(tc.message)
			}
		})
	}

	t.Run("project is hydrated", func(t *testing.T) {
		rec := serve(t, srv, http.MethodGet, "/gitminer/projects/p1", nil)
		project := decode[model.Project](t, rec)
		gt.V(t, project.Name).Equal("gitminer")
		gt.A(t, project.Commits).Length(3)
		gt.A(t, project.Issues).Length(3)
	})
}

func TestListIssues(t *testing.T) {
	srv := newSeededServer(t)

	testCases := map[string]struct {
		query string
		ids   []types.IssueID
	}{
		"no filter":             {query: "", ids: []types.IssueID{"i1", "i2", "i3", "i4"}},
		"by author":             {query: "?authorId=u2", ids: []types.IssueID{"i2", "i3"}},
		"by state ignores case": {query: "?state=Closed", ids: []types.IssueID{"i2", "i4"}},
		"by state and author":   {query: "?state=closed&authorId=u1", ids: []types.IssueID{"i4"}},
		"empty author matches none": {
			query: "?authorId=",
			ids:   []types.IssueID{},
		},
		"filter with sort": {
			query: "?state=opened&order=-votes",
			ids:   []types.IssueID{"i3", "i1"},
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			rec := serve(t, srv, http.MethodGet, "/gitminer/issues"+tc.query, nil)
			gt.V(t, rec.Code).Equal(http.StatusOK)

			issues := decode[[]*model.Issue](t, rec)
			ids := make([]types.IssueID, len(issues))
			for i, issue := range issues {
				ids[i] = issue.ID
			}
			gt.V(t, ids).Equal(tc.ids)
		})
	}
}

func TestListIssueComments(t *testing.T) {
	srv := newSeededServer(t)

	t.Run("comments of issue", func(t *testing.T) {
		rec := serve(t, srv, http.MethodGet, "/gitminer/issues/i1/comments", nil)
		gt.V(t, rec.Code).Equal(http.StatusOK)
		comments := decode[[]*model.Comment](t, rec)
		gt.A(t, comments).Length(2)
		gt.V(t, comments[0].ID).Equal(types.CommentID("cm1"))
	})

	t.Run("issue without comments", func(t *testing.T) {
		rec := serve(t, srv, http.MethodGet, "/gitminer/issues/i2/comments", nil)
		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.V(t, strings.TrimSpace(rec.Body.String())).Equal("[]")
	})

	t.Run("missing issue", func(t *testing.T) {
		rec := serve(t, srv, http.MethodGet, "/gitminer/issues/nope/comments", nil)
		gt.V(t, rec.Code).Equal(http.StatusNotFound)
		gt.V(t, decode[messageBody](t, rec).Message).Equal("Issue not found")
	})
}

func TestCreateProject(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		srv := newSeededServer(t)
		body := []byte(`{"id":"p9","name":"new","web_url":"https://example.com/new","commits":[{"id":"c9","title":"t"}]}`)

		rec := serve(t, srv, http.MethodPost, "/gitminer/projects", body)
		gt.V(t, rec.Code).Equal(http.StatusCreated)
		gt.V(t, decode[model.Project](t, rec).ID).Equal(types.ProjectID("p9"))

		rec = serve(t, srv, http.MethodGet, "/gitminer/commits/c9", nil)
		gt.V(t, rec.Code).Equal(http.StatusOK)
	})

	t.Run("validation errors are aggregated", func(t *testing.T) {
		srv := newSeededServer(t)
		body := []byte(`{"id":"p9","issues":[{"id":"i9","comments":[{"id":"cm9"}]}]}`)

		rec := serve(t, srv, http.MethodPost, "/gitminer/projects", body)
		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
		errs := decode[errorsBody](t, rec).Errors
		gt.True(t, len(errs) >= 3)
		gt.True(t, slices.Contains(errs, "The field name cannot be empty."))
	})

	t.Run("malformed body", func(t *testing.T) {
		srv := newSeededServer(t)
		rec := serve(t, srv, http.MethodPost, "/gitminer/projects", []byte(`{"id":`))
		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
		gt.A(t, decode[errorsBody](t, rec).Errors).Length(1)
	})

	t.Run("body too large", func(t *testing.T) {
		srv := newSeededServer(t, server.WithMaxBodySize(8))
		body := []byte(`{"id":"p9","name":"new","web_url":"https://example.com/new"}`)
		rec := serve(t, srv, http.MethodPost, "/gitminer/projects", body)
		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
	})

	t.Run("duplicate id", func(t *testing.T) {
		srv := newSeededServer(t)
		body := []byte(`{"id":"p1","name":"again","web_url":"https://example.com/again"}`)
		rec := serve(t, srv, http.MethodPost, "/gitminer/projects", body)
		gt.V(t, rec.Code).Equal(http.StatusConflict)
	})
}

func TestBasePath(t *testing.T) {
	srv := newSeededServer(t, server.WithBasePath("/api/v1"))

	rec := serve(t, srv, http.MethodGet, "/api/v1/projects/p2", nil)
	gt.V(t, rec.Code).Equal(http.StatusOK)

	rec = serve(t, srv, http.MethodGet, "/gitminer/projects/p2", nil)
	gt.V(t, rec.Code).Equal(http.StatusNotFound)
}

func TestServerWithMockUseCase(t *testing.T) {
	t.Run("parsed query and filter reach use case", func(t *testing.T) {
		mockUC := &mock.UseCaseMock{
			ListIssuesFunc: func(ctx context.Context, filter model.IssueFilter, q model.Query) ([]*model.Issue, error) {
				return []*model.Issue{}, nil
			},
		}
		srv := server.New(mockUC)

		rec := serve(t, srv, http.MethodGet, "/gitminer/issues?page=3&size=4&order=-createdAt&state=opened", nil)
		gt.V(t, rec.Code).Equal(http.StatusOK)

		calls := mockUC.ListIssuesCalls()
		gt.A(t, calls).Length(1)
		gt.V(t, calls[0].Q.Offset).Equal(12)
		gt.V(t, calls[0].Q.Limit).Equal(4)
		gt.V(t, calls[0].Q.Sort).NotEqual(nil)
		gt.V(t, calls[0].Q.Sort.Key).Equal("createdAt")
		gt.True(t, calls[0].Q.Sort.Descending())
		gt.V(t, calls[0].Filter.AuthorID).Equal(nil)
		gt.V(t, *calls[0].Filter.State).Equal("opened")
	})

	t.Run("store failure is internal error", func(t *testing.T) {
		mockUC := &mock.UseCaseMock{
			GetCommitFunc: func(ctx context.Context, id types.CommitID) (*model.Commit, error) {
				return nil, errors.New("connection refused")
			},
		}
		srv := server.New(mockUC)

		rec := serve(t, srv, http.MethodGet, "/gitminer/commits/c1", nil)
		gt.V(t, rec.Code).Equal(http.StatusInternalServerError)
		gt.False(t, strings.Contains(rec.Body.String(), "connection refused"))
	})

	t.Run("invalid input from store", func(t *testing.T) {
		mockUC := &mock.UseCaseMock{
			CreateProjectFunc: func(ctx context.Context, project *model.Project) (*model.Project, error) {
				return nil, repository.ErrInvalidInput
			},
		}
		srv := server.New(mockUC)

		body := []byte(`{"id":"..","name":"x","web_url":"y"}`)
		rec := serve(t, srv, http.MethodPost, "/gitminer/projects", body)
		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
		gt.A(t, mockUC.CreateProjectCalls()).Length(1)
	})
}
