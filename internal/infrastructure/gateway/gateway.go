// Package gateway executes parameterized statements against PostgreSQL and
// returns their rows as column maps. It never retries; callers decide what a
// failure means to the user.
package gateway

import (
	"context"
	"database/sql"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"go.opentelemetry.io/otel/attribute"
)

const defaultQueryTimeout = 5 * time.Second

// Statement is one SQL statement with its positional ($n) arguments.
type Statement struct {
	Name string
	SQL  string
	Args []any
}

// Executor is the query-execution capability handed to repositories.
type Executor interface {
	// Query runs a single independent statement.
	Query(ctx context.Context, stmt Statement) (Rows, error)
	// Batch runs statements in order inside one transaction. It returns one
	// Rows per statement, or a single error and no rows at all.
	Batch(ctx context.Context, task string, stmts ...Statement) ([]Rows, error)
	Ping(ctx context.Context) error
}

type Option func(*DB)

func WithQueryTimeout(timeout time.Duration) Option {
	return func(g *DB) {
		g.timeout = timeout
	}
}

func WithTxOptions(opts *sql.TxOptions) Option {
	return func(g *DB) {
		g.txOptions = opts
	}
}

// DB is the sqlx-backed Executor.
type DB struct {
	db        *sqlx.DB
	timeout   time.Duration
	txOptions *sql.TxOptions
}

func New(db *sqlx.DB, opts ...Option) *DB {
	g := &DB{
		db:        db,
		timeout:   defaultQueryTimeout,
		txOptions: &sql.TxOptions{Isolation: sql.LevelRepeatableRead},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *DB) Query(ctx context.Context, stmt Statement) (Rows, error) {
	ctx, span := startSpan(ctx, "gateway.DB.Query", attribute.String("db.statement.name", stmt.Name))
	defer span.End()

	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	rows, err := queryRows(ctx, g.db, stmt)
	if err != nil {
		span.RecordError(err)
		return nil, classify(ctx, "", stmt.Name, err)
	}
	return rows, nil
}

func (g *DB) Batch(ctx context.Context, task string, stmts ...Statement) ([]Rows, error) {
	ctx, span := startSpan(ctx, "gateway.DB.Batch",
		attribute.String("db.task", task),
		attribute.Int("db.batch.size", len(stmts)),
	)
	defer span.End()

	if len(stmts) == 0 {
		return []Rows{}, nil
	}

	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	tx, err := g.db.BeginTxx(ctx, g.txOptions)
	if err != nil {
		span.RecordError(err)
		return nil, classify(ctx, task, "", errors.Wrap(err, "begin tx"))
	}
	defer func() {
		_ = tx.Rollback()
	}()

	out := make([]Rows, 0, len(stmts))
	for _, stmt := range stmts {
		rows, err := queryRows(ctx, tx, stmt)
		if err != nil {
			span.RecordError(err)
			return nil, classify(ctx, task, stmt.Name, err)
		}
		out = append(out, rows)
	}

	if err := tx.Commit(); err != nil {
		span.RecordError(err)
		return nil, classify(ctx, task, "", errors.Wrap(err, "commit tx"))
	}
	return out, nil
}

func (g *DB) Ping(ctx context.Context) error {
	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	if err := g.db.PingContext(ctx); err != nil {
		return classify(ctx, "", "ping", err)
	}
	return nil
}

func (g *DB) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if g.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, g.timeout)
}

type queryer interface {
	QueryxContext(ctx context.Context, query string, args ...any) (*sqlx.Rows, error)
}

func queryRows(ctx context.Context, q queryer, stmt Statement) (Rows, error) {
	rows, err := q.QueryxContext(ctx, stmt.SQL, stmt.Args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(Rows, 0)
	for rows.Next() {
		row := make(map[string]any)
		if err := rows.MapScan(row); err != nil {
			return nil, errors.Wrap(err, "scan row")
		}
		out = append(out, Row(row))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}
