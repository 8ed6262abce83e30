package rdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"github.com/m-mizutani/gitminer/pkg/domain/interfaces"
	"github.com/m-mizutani/gitminer/pkg/domain/types"
	"github.com/m-mizutani/gitminer/pkg/repository"
	"github.com/m-mizutani/gitminer/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
	"github.com/mattn/go-sqlite3"
)

// Dialect holds what differs between the supported SQL engines.
type Dialect struct {
	name         string
	driver       string
	seqColumn    string
	maxOpenConns int
	placeholder  func(n int) string
	isDuplicate  func(err error) bool
}

func (x *Dialect) String() string { return x.name }

var (
	Postgres = &Dialect{
		name:      "postgres",
		driver:    "postgres",
		seqColumn: "seq BIGSERIAL PRIMARY KEY",
		placeholder: func(n int) string {
			return fmt.Sprintf("$%d", n)
		},
		isDuplicate: func(err error) bool {
			var pqErr *pq.Error
			return errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation"
		},
	}

	// SQLite allows a single open connection so that writers never see
	// "database is locked".
	SQLite = &Dialect{
		name:         "sqlite",
		driver:       "sqlite3",
		seqColumn:    "seq INTEGER PRIMARY KEY AUTOINCREMENT",
		maxOpenConns: 1,
		placeholder: func(int) string {
			return "?"
		},
		isDuplicate: func(err error) bool {
			var sqliteErr sqlite3.Error
			if !errors.As(err, &sqliteErr) {
				return false
			}
			return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
				sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
		},
	}
)

// LookupDialect returns the dialect registered under name.
func LookupDialect(name string) (*Dialect, error) {
	for _, d := range []*Dialect{Postgres, SQLite} {
		if d.name == name {
			return d, nil
		}
	}
	return nil, goerr.Wrap(types.ErrInvalidOption, "unsupported database dialect", goerr.V("dialect", name))
}

type catalogRepository struct {
	db      *sql.DB
	dialect *Dialect
}

// New opens the database, checks the connection and creates the catalog
// tables if they do not exist yet.
func New(ctx context.Context, dialect *Dialect, dsn types.DatabaseDSN) (interfaces.CatalogRepository, error) {
	db, err := sql.Open(dialect.driver, string(dsn))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open database", goerr.V("dialect", dialect.name))
	}
	if dialect.maxOpenConns > 0 {
		db.SetMaxOpenConns(dialect.maxOpenConns)
	}

	if err := db.PingContext(ctx); err != nil {
		safe.Close(db)
		return nil, goerr.Wrap(err, "failed to ping database", goerr.V("dialect", dialect.name))
	}

	repo := &catalogRepository{db: db, dialect: dialect}
	if err := repo.initialize(ctx); err != nil {
		safe.Close(db)
		return nil, err
	}

	return repo, nil
}

func (r *catalogRepository) Close() error {
	if err := r.db.Close(); err != nil {
		return goerr.Wrap(err, "failed to close database")
	}
	return nil
}

func (r *catalogRepository) initialize(ctx context.Context) error {
	schema := fmt.Sprintf(schemaTemplate,
		r.dialect.seqColumn,
		r.dialect.seqColumn,
		r.dialect.seqColumn,
		r.dialect.seqColumn,
	)

	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return goerr.Wrap(err, "failed to create schema", goerr.V("dialect", r.dialect.name))
	}
	return nil
}

// wrapWriteError turns a unique constraint violation into
// repository.ErrAlreadyExists.
func (r *catalogRepository) wrapWriteError(err error, kind types.EntityKind, id any) error {
	if r.dialect.isDuplicate(err) {
		return goerr.Wrap(repository.ErrAlreadyExists, "entity already exists",
			goerr.V("kind", kind),
			goerr.V("id", id),
			goerr.V("cause", err.Error()),
		)
	}
	return goerr.Wrap(err, "failed to insert entity",
		goerr.V("kind", kind),
		goerr.V("id", id),
	)
}

// condition is a WHERE clause fragment. expr contains one %s that is
// replaced by the placeholder bound to arg.
type condition struct {
	expr string
	arg  any
}

// page is nil for queries that return every row (nested collections).
type page struct {
	field      string
	descending bool
	limit      int
	offset     int
}

func (r *catalogRepository) buildSelect(table string, columns []string, conds []condition, p *page) (string, []any) {
	var (
		sb   strings.Builder
		args []any
	)
	bind := func(v any) string {
		args = append(args, v)
		return r.dialect.placeholder(len(args))
	}

	fmt.Fprintf(&sb, "SELECT %s FROM %s", strings.Join(columns, ", "), table)
	for i, c := range conds {
		if i == 0 {
			sb.WriteString(" WHERE ")
		} else {
			sb.WriteString(" AND ")
		}
		fmt.Fprintf(&sb, c.expr, bind(c.arg))
	}

	sb.WriteString(" ORDER BY ")
	if p != nil && p.field != "" {
		dir := "ASC"
		if p.descending {
			dir = "DESC"
		}
		fmt.Fprintf(&sb, "%s %s, ", p.field, dir)
	}
	sb.WriteString("seq ASC")

	if p != nil {
		fmt.Fprintf(&sb, " LIMIT %s OFFSET %s", bind(p.limit), bind(p.offset))
	}

	return sb.String(), args
}

func (r *catalogRepository) buildInsert(table string, columns []string) string {
	placeholders := make([]string, len(columns))
	for i := range columns {
		placeholders[i] = r.dialect.placeholder(i + 1)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		table, strings.Join(columns, ", "), strings.Join(placeholders, ", "))
}

type scanner interface {
	Scan(dest ...any) error
}

func queryAll[T any](ctx context.Context, db *sql.DB, query string, args []any, scan func(scanner) (*T, error)) ([]*T, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query", goerr.V("query", query))
	}
	defer safe.Close(rows)

	results := []*T{}
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to scan row", goerr.V("query", query))
		}
		results = append(results, v)
	}
	if err := rows.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to iterate rows", goerr.V("query", query))
	}

	return results, nil
}

// queryOne returns (nil, nil) when no row matches.
func queryOne[T any](ctx context.Context, db *sql.DB, query string, args []any, scan func(scanner) (*T, error)) (*T, error) {
	v, err := scan(db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query row", goerr.V("query", query))
	}
	return v, nil
}
