package memory

import (
	"github.com/m-mizutani/gitminer/pkg/domain/interfaces"
	"github.com/m-mizutani/gitminer/pkg/domain/model"
	"github.com/m-mizutani/gitminer/pkg/domain/types"
)

// New creates a new in-memory catalog repository. Default ordering of every
// list is insertion order.
func New() interfaces.CatalogRepository {
	return &catalogRepository{
		projects: make(map[types.ProjectID]*projectData),
		commits:  make(map[types.CommitID]*model.Commit),
		issues:   make(map[types.IssueID]*issueData),
		comments: make(map[types.CommentID]*model.Comment),
	}
}
