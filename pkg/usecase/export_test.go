package usecase

import (
	"github.com/m-mizutani/gitminer/pkg/domain/model"
	"github.com/m-mizutani/gitminer/pkg/domain/types"
)

// Export unexported functions for testing
var (
	LookupCommitForTest = lookup[model.Commit, types.CommitID]
)
