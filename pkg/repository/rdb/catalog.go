package rdb

import (
	"context"
	"encoding/json"

	"github.com/m-mizutani/gitminer/pkg/domain/model"
	"github.com/m-mizutani/gitminer/pkg/domain/types"
	"github.com/m-mizutani/gitminer/pkg/repository"
	"github.com/m-mizutani/gitminer/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
)

// Project operations

func (r *catalogRepository) GetProject(ctx context.Context, id types.ProjectID) (*model.Project, error) {
	query, args := r.buildSelect(tableProjects, projectColumns,
		[]condition{{expr: "id = %s", arg: string(id)}}, nil)

	project, err := queryOne(ctx, r.db, query, args, scanProject)
	if err != nil || project == nil {
		return nil, err
	}

	if err := r.hydrateProject(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (r *catalogRepository) ListProjects(ctx context.Context, q model.Query) ([]*model.Project, error) {
	p, err := toPage(q, model.ProjectSortKeys)
	if err != nil {
		return nil, err
	}

	query, args := r.buildSelect(tableProjects, projectColumns, nil, p)
	projects, err := queryAll(ctx, r.db, query, args, scanProject)
	if err != nil {
		return nil, err
	}

	for _, project := range projects {
		if err := r.hydrateProject(ctx, project); err != nil {
			return nil, err
		}
	}
	return projects, nil
}

func (r *catalogRepository) CreateProject(ctx context.Context, project *model.Project) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return goerr.Wrap(err, "failed to begin transaction", goerr.V("projectID", project.ID))
	}
	defer safe.Rollback(tx)

	if _, err := tx.ExecContext(ctx, r.buildInsert(tableProjects, projectColumns),
		string(project.ID), project.Name, project.WebURL,
	); err != nil {
		return r.wrapWriteError(err, types.KindProject, project.ID)
	}

	commitStmt := r.buildInsert(tableCommits, commitColumns)
	for _, c := range project.Commits {
		if _, err := tx.ExecContext(ctx, commitStmt,
			string(c.ID), string(project.ID), c.Title, c.Message,
			c.AuthorName, c.AuthorEmail, c.AuthoredDate, c.WebURL,
		); err != nil {
			return r.wrapWriteError(err, types.KindCommit, c.ID)
		}
	}

	issueStmt := r.buildInsert(tableIssues, issueColumns)
	commentStmt := r.buildInsert(tableComments, commentColumns)
	for _, issue := range project.Issues {
		labels, err := json.Marshal(issue.Labels)
		if err != nil {
			return goerr.Wrap(err, "failed to encode labels", goerr.V("issueID", issue.ID))
		}

		a := issue.Author
		if _, err := tx.ExecContext(ctx, issueStmt,
			string(issue.ID), string(project.ID), issue.RefID, issue.Title, issue.Description,
			issue.State, string(labels),
			a.ID, a.Username, a.Name, a.AvatarURL, a.WebURL,
			issue.Votes, issue.CreatedAt, issue.UpdatedAt, issue.ClosedAt,
		); err != nil {
			return r.wrapWriteError(err, types.KindIssue, issue.ID)
		}

		for _, c := range issue.Comments {
			a := c.Author
			if _, err := tx.ExecContext(ctx, commentStmt,
				string(c.ID), string(issue.ID), c.Body,
				a.ID, a.Username, a.Name, a.AvatarURL, a.WebURL,
				c.CreatedAt, c.UpdatedAt,
			); err != nil {
				return r.wrapWriteError(err, types.KindComment, c.ID)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return r.wrapWriteError(err, types.KindProject, project.ID)
	}

	return nil
}

// Commit operations

func (r *catalogRepository) GetCommit(ctx context.Context, id types.CommitID) (*model.Commit, error) {
	query, args := r.buildSelect(tableCommits, commitColumns,
		[]condition{{expr: "id = %s", arg: string(id)}}, nil)
	return queryOne(ctx, r.db, query, args, scanCommit)
}

func (r *catalogRepository) ListCommits(ctx context.Context, q model.Query) ([]*model.Commit, error) {
	p, err := toPage(q, model.CommitSortKeys)
	if err != nil {
		return nil, err
	}

	query, args := r.buildSelect(tableCommits, commitColumns, nil, p)
	return queryAll(ctx, r.db, query, args, scanCommit)
}

// Issue operations

func (r *catalogRepository) GetIssue(ctx context.Context, id types.IssueID) (*model.Issue, error) {
	query, args := r.buildSelect(tableIssues, issueColumns,
		[]condition{{expr: "id = %s", arg: string(id)}}, nil)

	issue, err := queryOne(ctx, r.db, query, args, scanIssue)
	if err != nil || issue == nil {
		return nil, err
	}

	if err := r.hydrateIssues(ctx, []*model.Issue{issue}); err != nil {
		return nil, err
	}
	return issue, nil
}

func (r *catalogRepository) ListIssues(ctx context.Context, q model.Query) ([]*model.Issue, error) {
	return r.listIssues(ctx, q)
}

func (r *catalogRepository) ListIssuesByAuthorID(ctx context.Context, authorID string, q model.Query) ([]*model.Issue, error) {
	return r.listIssues(ctx, q, byAuthorID(authorID))
}

func (r *catalogRepository) ListIssuesByState(ctx context.Context, state string, q model.Query) ([]*model.Issue, error) {
	return r.listIssues(ctx, q, byState(state))
}

func (r *catalogRepository) ListIssuesByStateAndAuthorID(ctx context.Context, state, authorID string, q model.Query) ([]*model.Issue, error) {
	return r.listIssues(ctx, q, byState(state), byAuthorID(authorID))
}

func byAuthorID(authorID string) condition {
	return condition{expr: "author_id = %s", arg: authorID}
}

func byState(state string) condition {
	return condition{expr: "LOWER(state) = %s", arg: model.NormalizeState(state)}
}

func (r *catalogRepository) listIssues(ctx context.Context, q model.Query, conds ...condition) ([]*model.Issue, error) {
	p, err := toPage(q, model.IssueSortKeys)
	if err != nil {
		return nil, err
	}

	query, args := r.buildSelect(tableIssues, issueColumns, conds, p)
	issues, err := queryAll(ctx, r.db, query, args, scanIssue)
	if err != nil {
		return nil, err
	}

	if err := r.hydrateIssues(ctx, issues); err != nil {
		return nil, err
	}
	return issues, nil
}

// Comment operations

func (r *catalogRepository) GetComment(ctx context.Context, id types.CommentID) (*model.Comment, error) {
	query, args := r.buildSelect(tableComments, commentColumns,
		[]condition{{expr: "id = %s", arg: string(id)}}, nil)
	return queryOne(ctx, r.db, query, args, scanComment)
}

func (r *catalogRepository) ListComments(ctx context.Context, q model.Query) ([]*model.Comment, error) {
	return r.listComments(ctx, q)
}

func (r *catalogRepository) ListCommentsByIssueID(ctx context.Context, issueID types.IssueID, q model.Query) ([]*model.Comment, error) {
	return r.listComments(ctx, q, condition{expr: "issue_id = %s", arg: string(issueID)})
}

func (r *catalogRepository) listComments(ctx context.Context, q model.Query, conds ...condition) ([]*model.Comment, error) {
	p, err := toPage(q, model.CommentSortKeys)
	if err != nil {
		return nil, err
	}

	query, args := r.buildSelect(tableComments, commentColumns, conds, p)
	return queryAll(ctx, r.db, query, args, scanComment)
}

// Helper functions

func toPage(q model.Query, keys model.SortKeys) (*page, error) {
	field, err := repository.ResolveQuery(q, keys)
	if err != nil {
		return nil, err
	}

	p := &page{field: field, limit: q.Limit, offset: q.Offset}
	if q.Sort != nil {
		p.descending = q.Sort.Descending()
	}
	return p, nil
}

// hydrateProject loads the commits and issues of a project. Rows of one
// query are fully read before the next query starts because SQLite runs on
// a single connection.
func (r *catalogRepository) hydrateProject(ctx context.Context, project *model.Project) error {
	byProject := []condition{{expr: "project_id = %s", arg: string(project.ID)}}

	query, args := r.buildSelect(tableCommits, commitColumns, byProject, nil)
	commits, err := queryAll(ctx, r.db, query, args, scanCommit)
	if err != nil {
		return err
	}

	query, args = r.buildSelect(tableIssues, issueColumns, byProject, nil)
	issues, err := queryAll(ctx, r.db, query, args, scanIssue)
	if err != nil {
		return err
	}
	if err := r.hydrateIssues(ctx, issues); err != nil {
		return err
	}

	project.Commits = commits
	project.Issues = issues
	return nil
}

func (r *catalogRepository) hydrateIssues(ctx context.Context, issues []*model.Issue) error {
	for _, issue := range issues {
		query, args := r.buildSelect(tableComments, commentColumns,
			[]condition{{expr: "issue_id = %s", arg: string(issue.ID)}}, nil)

		comments, err := queryAll(ctx, r.db, query, args, scanComment)
		if err != nil {
			return err
		}
		issue.Comments = comments
	}
	return nil
}

func scanProject(row scanner) (*model.Project, error) {
	var p model.Project
	if err := row.Scan(&p.ID, &p.Name, &p.WebURL); err != nil {
		return nil, err
	}
	return &p, nil
}

func scanCommit(row scanner) (*model.Commit, error) {
	var c model.Commit
	if err := row.Scan(
		&c.ID, &c.ProjectID, &c.Title, &c.Message,
		&c.AuthorName, &c.AuthorEmail, &c.AuthoredDate, &c.WebURL,
	); err != nil {
		return nil, err
	}
	return &c, nil
}

func scanIssue(row scanner) (*model.Issue, error) {
	var (
		issue  model.Issue
		labels string
		a      = &issue.Author
	)
	if err := row.Scan(
		&issue.ID, &issue.ProjectID, &issue.RefID, &issue.Title, &issue.Description,
		&issue.State, &labels,
		&a.ID, &a.Username, &a.Name, &a.AvatarURL, &a.WebURL,
		&issue.Votes, &issue.CreatedAt, &issue.UpdatedAt, &issue.ClosedAt,
	); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(labels), &issue.Labels); err != nil {
		return nil, goerr.Wrap(err, "failed to decode labels", goerr.V("issueID", issue.ID))
	}
	return &issue, nil
}

func scanComment(row scanner) (*model.Comment, error) {
	var (
		c model.Comment
		a = &c.Author
	)
	if err := row.Scan(
		&c.ID, &c.IssueID, &c.Body,
		&a.ID, &a.Username, &a.Name, &a.AvatarURL, &a.WebURL,
		&c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &c, nil
}
