package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/m-mizutani/gitminer/pkg/domain/model"
	"github.com/m-mizutani/gitminer/pkg/domain/types"
	"github.com/m-mizutani/gitminer/pkg/repository"
	"github.com/m-mizutani/goerr/v2"
)

// projectData and issueData keep their children as ordered ID lists so that
// nested collections come back in the order they were created.
type projectData struct {
	project   *model.Project
	commitIDs []types.CommitID
	issueIDs  []types.IssueID
}

type issueData struct {
	issue      *model.Issue
	commentIDs []types.CommentID
}

type catalogRepository struct {
	mu sync.RWMutex

	projects     map[types.ProjectID]*projectData
	projectOrder []types.ProjectID

	commits     map[types.CommitID]*model.Commit
	commitOrder []types.CommitID

	issues     map[types.IssueID]*issueData
	issueOrder []types.IssueID

	comments     map[types.CommentID]*model.Comment
	commentOrder []types.CommentID
}

func (r *catalogRepository) Close() error {
	return nil
}

// Project operations

func (r *catalogRepository) GetProject(ctx context.Context, id types.ProjectID) (*model.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	data, exists := r.projects[id]
	if !exists {
		return nil, nil
	}
	return r.buildProject(data), nil
}

func (r *catalogRepository) ListProjects(ctx context.Context, q model.Query) ([]*model.Project, error) {
	field, err := repository.ResolveQuery(q, model.ProjectSortKeys)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	projects := make([]*model.Project, 0, len(r.projectOrder))
	for _, id := range r.projectOrder {
		projects = append(projects, r.buildProject(r.projects[id]))
	}

	return sortAndPage(projects, q, projectFields[field]), nil
}

func (r *catalogRepository) CreateProject(ctx context.Context, project *model.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkCollision(project); err != nil {
		return err
	}

	data := &projectData{project: stripProject(project)}
	for _, commit := range project.Commits {
		c := commit.Copy()
		c.ProjectID = project.ID
		r.commits[c.ID] = c
		r.commitOrder = append(r.commitOrder, c.ID)
		data.commitIDs = append(data.commitIDs, c.ID)
	}

	for _, issue := range project.Issues {
		idata := &issueData{issue: stripIssue(issue)}
		idata.issue.ProjectID = project.ID
		for _, comment := range issue.Comments {
			c := comment.Copy()
			c.IssueID = issue.ID
			r.comments[c.ID] = c
			r.commentOrder = append(r.commentOrder, c.ID)
			idata.commentIDs = append(idata.commentIDs, c.ID)
		}

		r.issues[issue.ID] = idata
		r.issueOrder = append(r.issueOrder, issue.ID)
		data.issueIDs = append(data.issueIDs, issue.ID)
	}

	r.projects[project.ID] = data
	r.projectOrder = append(r.projectOrder, project.ID)

	return nil
}

// checkCollision rejects the whole project tree if any ID is already stored
// or appears twice in the tree itself.
func (r *catalogRepository) checkCollision(project *model.Project) error {
	if _, exists := r.projects[project.ID]; exists {
		return goerr.Wrap(repository.ErrAlreadyExists, "project already exists",
			goerr.V("projectID", project.ID),
		)
	}

	commitIDs := make(map[types.CommitID]struct{})
	for _, c := range project.Commits {
		_, stored := r.commits[c.ID]
		_, dup := commitIDs[c.ID]
		if stored || dup {
			return goerr.Wrap(repository.ErrAlreadyExists, "commit already exists",
				goerr.V("commitID", c.ID),
			)
		}
		commitIDs[c.ID] = struct{}{}
	}

	issueIDs := make(map[types.IssueID]struct{})
	commentIDs := make(map[types.CommentID]struct{})
	for _, issue := range project.Issues {
		_, stored := r.issues[issue.ID]
		_, dup := issueIDs[issue.ID]
		if stored || dup {
			return goerr.Wrap(repository.ErrAlreadyExists, "issue already exists",
				goerr.V("issueID", issue.ID),
			)
		}
		issueIDs[issue.ID] = struct{}{}

		for _, c := range issue.Comments {
			_, stored := r.comments[c.ID]
			_, dup := commentIDs[c.ID]
			if stored || dup {
				return goerr.Wrap(repository.ErrAlreadyExists, "comment already exists",
					goerr.V("commentID", c.ID),
				)
			}
			commentIDs[c.ID] = struct{}{}
		}
	}

	return nil
}

// Commit operations

func (r *catalogRepository) GetCommit(ctx context.Context, id types.CommitID) (*model.Commit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.commits[id].Copy(), nil
}

func (r *catalogRepository) ListCommits(ctx context.Context, q model.Query) ([]*model.Commit, error) {
	field, err := repository.ResolveQuery(q, model.CommitSortKeys)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	commits := make([]*model.Commit, 0, len(r.commitOrder))
	for _, id := range r.commitOrder {
		commits = append(commits, r.commits[id].Copy())
	}

	return sortAndPage(commits, q, commitFields[field]), nil
}

// Issue operations

func (r *catalogRepository) GetIssue(ctx context.Context, id types.IssueID) (*model.Issue, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	data, exists := r.issues[id]
	if !exists {
		return nil, nil
	}
	return r.buildIssue(data), nil
}

func (r *catalogRepository) ListIssues(ctx context.Context, q model.Query) ([]*model.Issue, error) {
	return r.listIssues(q, func(*model.Issue) bool { return true })
}

func (r *catalogRepository) ListIssuesByAuthorID(ctx context.Context, authorID string, q model.Query) ([]*model.Issue, error) {
	return r.listIssues(q, func(issue *model.Issue) bool {
		return issue.Author.ID == authorID
	})
}

func (r *catalogRepository) ListIssuesByState(ctx context.Context, state string, q model.Query) ([]*model.Issue, error) {
	return r.listIssues(q, func(issue *model.Issue) bool {
		return model.MatchState(issue.State, state)
	})
}

func (r *catalogRepository) ListIssuesByStateAndAuthorID(ctx context.Context, state, authorID string, q model.Query) ([]*model.Issue, error) {
	return r.listIssues(q, func(issue *model.Issue) bool {
		return model.MatchState(issue.State, state) && issue.Author.ID == authorID
	})
}

func (r *catalogRepository) listIssues(q model.Query, match func(*model.Issue) bool) ([]*model.Issue, error) {
	field, err := repository.ResolveQuery(q, model.IssueSortKeys)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var issues []*model.Issue
	for _, id := range r.issueOrder {
		data := r.issues[id]
		if match(data.issue) {
			issues = append(issues, r.buildIssue(data))
		}
	}

	return sortAndPage(issues, q, issueFields[field]), nil
}

// Comment operations

func (r *catalogRepository) GetComment(ctx context.Context, id types.CommentID) (*model.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.comments[id].Copy(), nil
}

func (r *catalogRepository) ListComments(ctx context.Context, q model.Query) ([]*model.Comment, error) {
	return r.listComments(q, func(*model.Comment) bool { return true })
}

func (r *catalogRepository) ListCommentsByIssueID(ctx context.Context, issueID types.IssueID, q model.Query) ([]*model.Comment, error) {
	return r.listComments(q, func(c *model.Comment) bool { return c.IssueID == issueID })
}

func (r *catalogRepository) listComments(q model.Query, match func(*model.Comment) bool) ([]*model.Comment, error) {
	field, err := repository.ResolveQuery(q, model.CommentSortKeys)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var comments []*model.Comment
	for _, id := range r.commentOrder {
		if c := r.comments[id]; match(c) {
			comments = append(comments, c.Copy())
		}
	}

	return sortAndPage(comments, q, commentFields[field]), nil
}

// Helper functions

func (r *catalogRepository) buildProject(data *projectData) *model.Project {
	project := data.project.Copy()
	project.Commits = make([]*model.Commit, 0, len(data.commitIDs))
	for _, id := range data.commitIDs {
		project.Commits = append(project.Commits, r.commits[id].Copy())
	}
	project.Issues = make([]*model.Issue, 0, len(data.issueIDs))
	for _, id := range data.issueIDs {
		project.Issues = append(project.Issues, r.buildIssue(r.issues[id]))
	}
	return project
}

func (r *catalogRepository) buildIssue(data *issueData) *model.Issue {
	issue := data.issue.Copy()
	issue.Comments = make([]*model.Comment, 0, len(data.commentIDs))
	for _, id := range data.commentIDs {
		issue.Comments = append(issue.Comments, r.comments[id].Copy())
	}
	return issue
}

func stripProject(project *model.Project) *model.Project {
	cpy := *project
	cpy.Commits = nil
	cpy.Issues = nil
	return cpy.Copy()
}

func stripIssue(issue *model.Issue) *model.Issue {
	cpy := *issue
	cpy.Comments = nil
	return cpy.Copy()
}

// sortAndPage sorts items by the given field (keeping insertion order for
// ties) and cuts out the requested page. A nil field keeps insertion order.
func sortAndPage[T any](items []*T, q model.Query, field func(*T) sortValue) []*T {
	if field != nil && q.Sort != nil {
		slices.SortStableFunc(items, func(a, b *T) int {
			c := field(a).compare(field(b))
			if q.Sort.Descending() {
				return -c
			}
			return c
		})
	}

	if q.Offset < 0 || q.Offset >= len(items) {
		return []*T{}
	}
	end := min(q.Offset+q.Limit, len(items))
	return items[q.Offset:end]
}

type sortValue struct {
	str string
	num int
}

func (x sortValue) compare(y sortValue) int {
	if c := cmp.Compare(x.num, y.num); c != 0 {
		return c
	}
	return cmp.Compare(x.str, y.str)
}

func str(s string) sortValue { return sortValue{str: s} }

var projectFields = map[string]func(*model.Project) sortValue{
	"id":      func(x *model.Project) sortValue { return str(string(x.ID)) },
	"name":    func(x *model.Project) sortValue { return str(x.Name) },
	"web_url": func(x *model.Project) sortValue { return str(x.WebURL) },
}

var commitFields = map[string]func(*model.Commit) sortValue{
	"id":            func(x *model.Commit) sortValue { return str(string(x.ID)) },
	"title":         func(x *model.Commit) sortValue { return str(x.Title) },
	"message":       func(x *model.Commit) sortValue { return str(x.Message) },
	"author_name":   func(x *model.Commit) sortValue { return str(x.AuthorName) },
	"author_email":  func(x *model.Commit) sortValue { return str(x.AuthorEmail) },
	"authored_date": func(x *model.Commit) sortValue { return str(x.AuthoredDate) },
	"web_url":       func(x *model.Commit) sortValue { return str(x.WebURL) },
}

var issueFields = map[string]func(*model.Issue) sortValue{
	"id":          func(x *model.Issue) sortValue { return str(string(x.ID)) },
	"ref_id":      func(x *model.Issue) sortValue { return str(x.RefID) },
	"title":       func(x *model.Issue) sortValue { return str(x.Title) },
	"description": func(x *model.Issue) sortValue { return str(x.Description) },
	"state":       func(x *model.Issue) sortValue { return str(x.State) },
	"votes":       func(x *model.Issue) sortValue { return sortValue{num: x.Votes} },
	"created_at":  func(x *model.Issue) sortValue { return str(x.CreatedAt) },
	"updated_at":  func(x *model.Issue) sortValue { return str(x.UpdatedAt) },
	"closed_at":   func(x *model.Issue) sortValue { return str(x.ClosedAt) },
}

var commentFields = map[string]func(*model.Comment) sortValue{
	"id":         func(x *model.Comment) sortValue { return str(string(x.ID)) },
	"body":       func(x *model.Comment) sortValue { return str(x.Body) },
	"created_at": func(x *model.Comment) sortValue { return str(x.CreatedAt) },
	"updated_at": func(x *model.Comment) sortValue { return str(x.UpdatedAt) },
}
