package firestore

import (
	"context"
	"strings"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/gitminer/pkg/domain/model"
	"github.com/m-mizutani/gitminer/pkg/domain/types"
	"github.com/m-mizutani/gitminer/pkg/repository"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	collectionProject = "project"
	collectionCommit  = "commit"
	collectionIssue   = "issue"
	collectionComment = "comment"
	collectionMeta    = "meta"

	docSequence = "sequence"
	fieldSeq    = "seq"

	// A transaction accepts at most 500 writes and one of them updates the
	// sequence counter.
	maxProjectDocuments = 499
)

type catalogRepository struct {
	client *firestore.Client
	prefix string
}

// ToDocumentID checks that an entity ID can be used as a Firestore document
// ID as is. Document IDs cannot contain '/' and cannot be "." or "..".
func ToDocumentID(id string) (string, error) {
	if id == "" {
		return "", goerr.Wrap(repository.ErrInvalidInput, "id is empty")
	}
	if strings.Contains(id, "/") || id == "." || id == ".." {
		return "", goerr.Wrap(repository.ErrInvalidInput, "id is not a valid document ID",
			goerr.V("id", id),
		)
	}
	return id, nil
}

func (r *catalogRepository) collection(name string) *firestore.CollectionRef {
	return r.client.Collection(r.prefix + name)
}

// Project operations

func (r *catalogRepository) GetProject(ctx context.Context, id types.ProjectID) (*model.Project, error) {
	var doc projectDoc
	found, err := r.getDoc(ctx, collectionProject, string(id), &doc)
	if err != nil || !found {
		return nil, err
	}

	project := doc.toModel()
	if err := r.hydrateProject(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (r *catalogRepository) ListProjects(ctx context.Context, q model.Query) ([]*model.Project, error) {
	query, err := r.pagedQuery(r.collection(collectionProject).Query, q, model.ProjectSortKeys)
	if err != nil {
		return nil, err
	}

	docs, err := listDocs[projectDoc](ctx, query)
	if err != nil {
		return nil, err
	}

	projects := make([]*model.Project, len(docs))
	for i, doc := range docs {
		projects[i] = doc.toModel()
		if err := r.hydrateProject(ctx, projects[i]); err != nil {
			return nil, err
		}
	}
	return projects, nil
}

// CreateProject writes the whole project tree in one transaction. Every
// document is created with the next value of a shared sequence so that
// default listings keep insertion order.
func (r *catalogRepository) CreateProject(ctx context.Context, project *model.Project) error {
	if err := checkProjectSize(project); err != nil {
		return err
	}

	writes, err := r.projectWrites(project)
	if err != nil {
		return err
	}

	refs := make([]*firestore.DocumentRef, len(writes))
	for i, w := range writes {
		refs[i] = w.ref
	}
	seqRef := r.collection(collectionMeta).Doc(docSequence)

	err = r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snaps, err := tx.GetAll(refs)
		if err != nil {
			return goerr.Wrap(err, "failed to check existing documents", goerr.V("projectID", project.ID))
		}
		for i, snap := range snaps {
			if snap.Exists() {
				return goerr.Wrap(repository.ErrAlreadyExists, "entity already exists",
					goerr.V("kind", writes[i].kind),
					goerr.V("id", refs[i].ID),
				)
			}
		}

		var counter sequenceDoc
		seqSnap, err := tx.Get(seqRef)
		switch {
		case status.Code(err) == codes.NotFound:
		case err != nil:
			return goerr.Wrap(err, "failed to get sequence")
		default:
			if err := seqSnap.DataTo(&counter); err != nil {
				return goerr.Wrap(err, "failed to decode sequence")
			}
		}

		for _, w := range writes {
			counter.Next++
			w.setSeq(counter.Next)
			if err := tx.Create(w.ref, w.data); err != nil {
				return goerr.Wrap(err, "failed to create document",
					goerr.V("kind", w.kind),
					goerr.V("id", w.ref.ID),
				)
			}
		}

		if err := tx.Set(seqRef, counter); err != nil {
			return goerr.Wrap(err, "failed to update sequence")
		}
		return nil
	})

	if status.Code(err) == codes.AlreadyExists {
		return goerr.Wrap(repository.ErrAlreadyExists, "project already exists",
			goerr.V("projectID", project.ID),
		)
	}
	if err != nil {
		return goerr.Wrap(err, "failed to create project", goerr.V("projectID", project.ID))
	}

	return nil
}

type docWrite struct {
	kind   types.EntityKind
	ref    *firestore.DocumentRef
	data   any
	setSeq func(int64)
}

// checkProjectSize rejects a project tree that does not fit in one
// transaction.
func checkProjectSize(project *model.Project) error {
	n := 1 + len(project.Commits) + len(project.Issues)
	for _, issue := range project.Issues {
		if issue != nil {
			n += len(issue.Comments)
		}
	}

	if n > maxProjectDocuments {
		return goerr.Wrap(repository.ErrInvalidInput, "project has too many documents to store at once",
			goerr.V("projectID", project.ID),
			goerr.V("documents", n),
			goerr.V("limit", maxProjectDocuments),
		)
	}
	return nil
}

// projectWrites lists the documents of a project tree in insertion order and
// rejects IDs that are invalid or repeated within the tree.
func (r *catalogRepository) projectWrites(project *model.Project) ([]docWrite, error) {
	var writes []docWrite
	seen := make(map[string]struct{})

	add := func(kind types.EntityKind, collection, id string, data any, setSeq func(int64)) error {
		docID, err := ToDocumentID(id)
		if err != nil {
			return err
		}
		key := collection + "/" + docID
		if _, ok := seen[key]; ok {
			return goerr.Wrap(repository.ErrAlreadyExists, "duplicated id in project",
				goerr.V("kind", kind),
				goerr.V("id", id),
			)
		}
		seen[key] = struct{}{}

		writes = append(writes, docWrite{
			kind:   kind,
			ref:    r.collection(collection).Doc(docID),
			data:   data,
			setSeq: setSeq,
		})
		return nil
	}

	pd := newProjectDoc(project)
	if err := add(types.KindProject, collectionProject, pd.ID, pd, func(s int64) { pd.Seq = s }); err != nil {
		return nil, err
	}

	for _, c := range project.Commits {
		cd := newCommitDoc(c, project.ID)
		if err := add(types.KindCommit, collectionCommit, cd.ID, cd, func(s int64) { cd.Seq = s }); err != nil {
			return nil, err
		}
	}

	for _, issue := range project.Issues {
		idoc := newIssueDoc(issue, project.ID)
		if err := add(types.KindIssue, collectionIssue, idoc.ID, idoc, func(s int64) { idoc.Seq = s }); err != nil {
			return nil, err
		}

		for _, c := range issue.Comments {
			cd := newCommentDoc(c, issue.ID)
			if err := add(types.KindComment, collectionComment, cd.ID, cd, func(s int64) { cd.Seq = s }); err != nil {
				return nil, err
			}
		}
	}

	return writes, nil
}

// Commit operations

func (r *catalogRepository) GetCommit(ctx context.Context, id types.CommitID) (*model.Commit, error) {
	var doc commitDoc
	found, err := r.getDoc(ctx, collectionCommit, string(id), &doc)
	if err != nil || !found {
		return nil, err
	}
	return doc.toModel(), nil
}

func (r *catalogRepository) ListCommits(ctx context.Context, q model.Query) ([]*model.Commit, error) {
	query, err := r.pagedQuery(r.collection(collectionCommit).Query, q, model.CommitSortKeys)
	if err != nil {
		return nil, err
	}

	docs, err := listDocs[commitDoc](ctx, query)
	if err != nil {
		return nil, err
	}
	return toModels(docs, (*commitDoc).toModel), nil
}

// Issue operations

func (r *catalogRepository) GetIssue(ctx context.Context, id types.IssueID) (*model.Issue, error) {
	var doc issueDoc
	found, err := r.getDoc(ctx, collectionIssue, string(id), &doc)
	if err != nil || !found {
		return nil, err
	}

	issues := []*model.Issue{doc.toModel()}
	if err := r.hydrateIssues(ctx, issues); err != nil {
		return nil, err
	}
	return issues[0], nil
}

func (r *catalogRepository) ListIssues(ctx context.Context, q model.Query) ([]*model.Issue, error) {
	return r.listIssues(ctx, r.collection(collectionIssue).Query, q)
}

func (r *catalogRepository) ListIssuesByAuthorID(ctx context.Context, authorID string, q model.Query) ([]*model.Issue, error) {
	base := r.collection(collectionIssue).Where("author.id", "==", authorID)
	return r.listIssues(ctx, base, q)
}

// State is matched on state_key, the lower-cased copy of state written at
// creation, because Firestore cannot compare case-insensitively.
func (r *catalogRepository) ListIssuesByState(ctx context.Context, state string, q model.Query) ([]*model.Issue, error) {
	base := r.collection(collectionIssue).Where("state_key", "==", model.NormalizeState(state))
	return r.listIssues(ctx, base, q)
}

func (r *catalogRepository) ListIssuesByStateAndAuthorID(ctx context.Context, state, authorID string, q model.Query) ([]*model.Issue, error) {
	base := r.collection(collectionIssue).
		Where("state_key", "==", model.NormalizeState(state)).
		Where("author.id", "==", authorID)
	return r.listIssues(ctx, base, q)
}

func (r *catalogRepository) listIssues(ctx context.Context, base firestore.Query, q model.Query) ([]*model.Issue, error) {
	query, err := r.pagedQuery(base, q, model.IssueSortKeys)
	if err != nil {
		return nil, err
	}

	docs, err := listDocs[issueDoc](ctx, query)
	if err != nil {
		return nil, err
	}

	issues := toModels(docs, (*issueDoc).toModel)
	if err := r.hydrateIssues(ctx, issues); err != nil {
		return nil, err
	}
	return issues, nil
}

// Comment operations

func (r *catalogRepository) GetComment(ctx context.Context, id types.CommentID) (*model.Comment, error) {
	var doc commentDoc
	found, err := r.getDoc(ctx, collectionComment, string(id), &doc)
	if err != nil || !found {
		return nil, err
	}
	return doc.toModel(), nil
}

func (r *catalogRepository) ListComments(ctx context.Context, q model.Query) ([]*model.Comment, error) {
	return r.listComments(ctx, r.collection(collectionComment).Query, q)
}

func (r *catalogRepository) ListCommentsByIssueID(ctx context.Context, issueID types.IssueID, q model.Query) ([]*model.Comment, error) {
	base := r.collection(collectionComment).Where("issue_id", "==", string(issueID))
	return r.listComments(ctx, base, q)
}

func (r *catalogRepository) listComments(ctx context.Context, base firestore.Query, q model.Query) ([]*model.Comment, error) {
	query, err := r.pagedQuery(base, q, model.CommentSortKeys)
	if err != nil {
		return nil, err
	}

	docs, err := listDocs[commentDoc](ctx, query)
	if err != nil {
		return nil, err
	}
	return toModels(docs, (*commentDoc).toModel), nil
}

// Helper functions

// getDoc reports found=false for a missing document and for an ID that can
// never be a document ID.
func (r *catalogRepository) getDoc(ctx context.Context, collection, id string, dst any) (bool, error) {
	docID, err := ToDocumentID(id)
	if err != nil {
		return false, nil
	}

	snap, err := r.collection(collection).Doc(docID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return false, nil
		}
		return false, goerr.Wrap(err, "failed to get document",
			goerr.V("collection", collection),
			goerr.V("id", id),
		)
	}

	if err := snap.DataTo(dst); err != nil {
		return false, goerr.Wrap(err, "failed to decode document",
			goerr.V("collection", collection),
			goerr.V("id", id),
		)
	}
	return true, nil
}

// pagedQuery orders by the requested field with seq as tie-break and cuts
// out the requested page. Sorting a filtered query needs a composite index
// on (filter fields, sort field, seq).
func (r *catalogRepository) pagedQuery(base firestore.Query, q model.Query, keys model.SortKeys) (firestore.Query, error) {
	field, err := repository.ResolveQuery(q, keys)
	if err != nil {
		return firestore.Query{}, err
	}

	query := base
	if field != "" {
		dir := firestore.Asc
		if q.Sort.Descending() {
			dir = firestore.Desc
		}
		query = query.OrderBy(field, dir)
	}

	return query.OrderBy(fieldSeq, firestore.Asc).Offset(q.Offset).Limit(q.Limit), nil
}

func (r *catalogRepository) hydrateProject(ctx context.Context, project *model.Project) error {
	commitQuery := r.collection(collectionCommit).
		Where("project_id", "==", string(project.ID)).
		OrderBy(fieldSeq, firestore.Asc)
	commits, err := listDocs[commitDoc](ctx, commitQuery)
	if err != nil {
		return err
	}

	issueQuery := r.collection(collectionIssue).
		Where("project_id", "==", string(project.ID)).
		OrderBy(fieldSeq, firestore.Asc)
	issues, err := listDocs[issueDoc](ctx, issueQuery)
	if err != nil {
		return err
	}

	project.Commits = toModels(commits, (*commitDoc).toModel)
	project.Issues = toModels(issues, (*issueDoc).toModel)
	return r.hydrateIssues(ctx, project.Issues)
}

func (r *catalogRepository) hydrateIssues(ctx context.Context, issues []*model.Issue) error {
	for _, issue := range issues {
		query := r.collection(collectionComment).
			Where("issue_id", "==", string(issue.ID)).
			OrderBy(fieldSeq, firestore.Asc)

		comments, err := listDocs[commentDoc](ctx, query)
		if err != nil {
			return err
		}
		issue.Comments = toModels(comments, (*commentDoc).toModel)
	}
	return nil
}

func listDocs[T any](ctx context.Context, query firestore.Query) ([]*T, error) {
	iter := query.Documents(ctx)
	defer iter.Stop()

	var docs []*T
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate documents")
		}

		var doc T
		if err := snap.DataTo(&doc); err != nil {
			return nil, goerr.Wrap(err, "failed to decode document", goerr.V("id", snap.Ref.ID))
		}
		docs = append(docs, &doc)
	}

	return docs, nil
}

func toModels[D any, M any](docs []*D, conv func(*D) *M) []*M {
	models := make([]*M, len(docs))
	for i, doc := range docs {
		models[i] = conv(doc)
	}
	return models
}
