package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption    = goerr.New("invalid option")
	ErrValidationFailed = goerr.New("validation failed")
	ErrInvalidParameter = goerr.New("invalid request parameter")

	ErrProjectNotFound = goerr.New("Project not found")
	ErrCommitNotFound  = goerr.New("Commit not found")
	ErrIssueNotFound   = goerr.New("Issue not found")
	ErrCommentNotFound = goerr.New("Comment not found")
)

// NotFound returns the sentinel reported when an entity of the kind is absent.
func (x EntityKind) NotFound() error {
	switch x {
	case KindProject:
		return ErrProjectNotFound
	case KindCommit:
		return ErrCommitNotFound
	case KindIssue:
		return ErrIssueNotFound
	case KindComment:
		return ErrCommentNotFound
	default:
		return ErrInvalidOption
	}
}
