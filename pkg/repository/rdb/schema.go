package rdb

const (
	tableProjects = "projects"
	tableCommits  = "commits"
	tableIssues   = "issues"
	tableComments = "comments"
)

// seq keeps insertion order; every list without an explicit sort is ordered
// by it and sorted lists use it as tie-break.
const schemaTemplate = `
CREATE TABLE IF NOT EXISTS projects (
	%s,
	id TEXT NOT NULL UNIQUE,
	name TEXT NOT NULL,
	web_url TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS commits (
	%s,
	id TEXT NOT NULL UNIQUE,
	project_id TEXT NOT NULL,
	title TEXT NOT NULL DEFAULT '',
	message TEXT NOT NULL DEFAULT '',
	author_name TEXT NOT NULL DEFAULT '',
	author_email TEXT NOT NULL DEFAULT '',
	authored_date TEXT NOT NULL DEFAULT '',
	web_url TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS issues (
	%s,
	id TEXT NOT NULL UNIQUE,
	project_id TEXT NOT NULL,
	ref_id TEXT NOT NULL DEFAULT '',
	title TEXT NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT '',
	state TEXT NOT NULL DEFAULT '',
	labels TEXT NOT NULL DEFAULT '[]',
	author_id TEXT NOT NULL DEFAULT '',
	author_username TEXT NOT NULL DEFAULT '',
	author_name TEXT NOT NULL DEFAULT '',
	author_avatar_url TEXT NOT NULL DEFAULT '',
	author_web_url TEXT NOT NULL DEFAULT '',
	votes INTEGER NOT NULL DEFAULT 0,
	created_at TEXT NOT NULL DEFAULT '',
	updated_at TEXT NOT NULL DEFAULT '',
	closed_at TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS comments (
	%s,
	id TEXT NOT NULL UNIQUE,
	issue_id TEXT NOT NULL,
	body TEXT NOT NULL,
	author_id TEXT NOT NULL DEFAULT '',
	author_username TEXT NOT NULL DEFAULT '',
	author_name TEXT NOT NULL DEFAULT '',
	author_avatar_url TEXT NOT NULL DEFAULT '',
	author_web_url TEXT NOT NULL DEFAULT '',
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_commits_project_id ON commits (project_id);
CREATE INDEX IF NOT EXISTS idx_issues_project_id ON issues (project_id);
CREATE INDEX IF NOT EXISTS idx_issues_author_id ON issues (author_id);
CREATE INDEX IF NOT EXISTS idx_comments_issue_id ON comments (issue_id);
`

var (
	projectColumns = []string{"id", "name", "web_url"}

	commitColumns = []string{
		"id", "project_id", "title", "message",
		"author_name", "author_email", "authored_date", "web_url",
	}

	issueColumns = []string{
		"id", "project_id", "ref_id", "title", "description", "state", "labels",
		"author_id", "author_username", "author_name", "author_avatar_url", "author_web_url",
		"votes", "created_at", "updated_at", "closed_at",
	}

	commentColumns = []string{
		"id", "issue_id", "body",
		"author_id", "author_username", "author_name", "author_avatar_url", "author_web_url",
		"created_at", "updated_at",
	}
)
