package infra

import (
	"github.com/m-mizutani/gitminer/pkg/domain/interfaces"
	"github.com/m-mizutani/gitminer/pkg/repository/memory"
)

type Clients struct {
	projectRepository interfaces.ProjectRepository
	commitRepository  interfaces.CommitRepository
	issueRepository   interfaces.IssueRepository
	commentRepository interfaces.CommentRepository
}

type Option func(*Clients)

// New creates clients backed by an in-memory catalog unless a repository
// option replaces it.
func New(options ...Option) *Clients {
	client := &Clients{}
	WithCatalogRepository(memory.New())(client)

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) ProjectRepository() interfaces.ProjectRepository {
	return x.projectRepository
}
func (x *Clients) CommitRepository() interfaces.CommitRepository {
	return x.commitRepository
}
func (x *Clients) IssueRepository() interfaces.IssueRepository {
	return x.issueRepository
}
func (x *Clients) CommentRepository() interfaces.CommentRepository {
	return x.commentRepository
}

// WithCatalogRepository uses one backend for every collection.
func WithCatalogRepository(repo interfaces.CatalogRepository) Option {
	return func(x *Clients) {
		x.projectRepository = repo
		x.commitRepository = repo
		x.issueRepository = repo
		x.commentRepository = repo
	}
}

func WithProjectRepository(repo interfaces.ProjectRepository) Option {
	return func(x *Clients) {
		x.projectRepository = repo
	}
}

func WithCommitRepository(repo interfaces.CommitRepository) Option {
	return func(x *Clients) {
		x.commitRepository = repo
	}
}

func WithIssueRepository(repo interfaces.IssueRepository) Option {
	return func(x *Clients) {
		x.issueRepository = repo
	}
}

func WithCommentRepository(repo interfaces.CommentRepository) Option {
	return func(x *Clients) {
		x.commentRepository = repo
	}
}
