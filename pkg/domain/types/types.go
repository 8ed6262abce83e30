package types

import (
	"log/slog"

	"github.com/google/uuid"
)

type (
	ProjectID   string
	CommitID    string
	IssueID     string
	CommentID   string
	RequestID   string
	DatabaseDSN string
)

// EntityKind names a catalog collection. It is used in error values and in
// the fixed not-found messages returned to clients.
type EntityKind string

const (
	KindProject EntityKind = "Project"
	KindCommit  EntityKind = "Commit"
	KindIssue   EntityKind = "Issue"
	KindComment EntityKind = "Comment"
)

func (x EntityKind) String() string { return string(x) }

func NewRequestID() RequestID {
	return RequestID(uuid.NewString())
}

func (x RequestID) String() string { return string(x) }

func (x DatabaseDSN) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x DatabaseDSN) String() string {
	return "***********"
}
