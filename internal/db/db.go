// Package db provides relational storage for users, projects, brand kits and
// generation history. PostgreSQL is accessed through a pgx pool; SQLite (pure Go,
// modernc.org/sqlite) is supported for local development and tests.
package db

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "modernc.org/sqlite"
)

// Supported drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// ErrNotFound is returned when a row does not exist (or is not visible to the caller).
var ErrNotFound = errors.New("not found")

// Unique-constraint violations on users, mapped from either driver.
var (
	ErrDuplicateEmail    = errors.New("email already registered")
	ErrDuplicateUsername = errors.New("username already taken")
)

//go:embed schema_postgres.sql
var schemaPostgres string

//go:embed schema_sqlite.sql
var schemaSQLite string

// DB wraps either a PostgreSQL connection pool or a SQLite handle.
type DB struct {
	driver string
	pool   *pgxpool.Pool
	sqlDB  *sql.DB
}

// Open connects using the named driver ("postgres" or "sqlite").
func Open(ctx context.Context, driver, url string) (*DB, error) {
	switch driver {
	case DriverPostgres, "":
		return Connect(ctx, url)
	case DriverSQLite:
		return OpenSQLite(ctx, url)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// Connect establishes a connection pool to a PostgreSQL database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{driver: DriverPostgres, pool: pool}, nil
}

// OpenSQLite opens (creating if needed) a SQLite database file with foreign keys enabled.
func OpenSQLite(ctx context.Context, path string) (*DB, error) {
	dsn := path
	if !strings.HasPrefix(dsn, "file:") {
		dsn = "file:" + dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	dsn += sep + "_pragma=foreign_keys(ON)&_pragma=busy_timeout(5000)"

	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	// SQLite allows a single writer.
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{driver: DriverSQLite, sqlDB: sqlDB}, nil
}

// Driver reports which backend this DB talks to.
func (db *DB) Driver() string {
	return db.driver
}

// Close closes the underlying pool or handle
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
	if db.sqlDB != nil {
		db.sqlDB.Close()
	}
}

// Migrate applies the embedded schema. Statements are idempotent.
func (db *DB) Migrate(ctx context.Context) error {
	schema := schemaPostgres
	if db.driver == DriverSQLite {
		schema = schemaSQLite
	}
	for _, stmt := range splitStatements(schema) {
		if _, err := db.exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}

func splitStatements(schema string) []string {
	var stmts []string
	for _, s := range strings.Split(schema, ";") {
		if s = strings.TrimSpace(s); s != "" {
			stmts = append(stmts, s)
		}
	}
	return stmts
}

// rebind rewrites '?' placeholders to PostgreSQL's $n form.
func (db *DB) rebind(query string) string {
	if db.driver != DriverPostgres {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// row is satisfied by both pgx.Row and *sql.Row.
type row interface {
	Scan(dest ...any) error
}

// rows is the iteration surface shared by pgx.Rows and *sql.Rows.
type rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close()
}

type sqlRows struct{ *sql.Rows }

func (r sqlRows) Close() { _ = r.Rows.Close() }

func (db *DB) exec(ctx context.Context, query string, args ...any) (int64, error) {
	query = db.rebind(query)
	if db.pool != nil {
		tag, err := db.pool.Exec(ctx, query, args...)
		if err != nil {
			return 0, err
		}
		return tag.RowsAffected(), nil
	}
	res, err := db.sqlDB.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (db *DB) queryRow(ctx context.Context, query string, args ...any) row {
	query = db.rebind(query)
	if db.pool != nil {
		return db.pool.QueryRow(ctx, query, args...)
	}
	return db.sqlDB.QueryRowContext(ctx, query, args...)
}

func (db *DB) query(ctx context.Context, query string, args ...any) (rows, error) {
	query = db.rebind(query)
	if db.pool != nil {
		return db.pool.Query(ctx, query, args...)
	}
	r, err := db.sqlDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return sqlRows{r}, nil
}

// execFunc runs a statement against the pool, the SQLite handle, or an open transaction.
type execFunc func(ctx context.Context, query string, args ...any) (int64, error)

// inTx runs fn inside a transaction, committing only if fn returns nil.
func (db *DB) inTx(ctx context.Context, fn func(exec execFunc) error) error {
	if db.pool != nil {
		return pgx.BeginFunc(ctx, db.pool, func(tx pgx.Tx) error {
			return fn(func(ctx context.Context, query string, args ...any) (int64, error) {
				tag, err := tx.Exec(ctx, db.rebind(query), args...)
				if err != nil {
					return 0, err
				}
				return tag.RowsAffected(), nil
			})
		})
	}

	tx, err := db.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	err = fn(func(ctx context.Context, query string, args ...any) (int64, error) {
		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return 0, err
		}
		return res.RowsAffected()
	})
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// uniqueViolation maps a users.email or users.username constraint failure to
// ErrDuplicateEmail or ErrDuplicateUsername. Other errors are returned unchanged.
func uniqueViolation(err error) error {
	var column string
	var pgErr *pgconn.PgError
	switch {
	case errors.As(err, &pgErr):
		if pgErr.Code != "23505" {
			return err
		}
		column = pgErr.ConstraintName
	case strings.Contains(err.Error(), "UNIQUE constraint failed"):
		column = err.Error()
	default:
		return err
	}

	switch {
	case strings.Contains(column, "email"):
		return ErrDuplicateEmail
	case strings.Contains(column, "username"):
		return ErrDuplicateUsername
	}
	return err
}

// isNoRows reports whether err means the query matched nothing, for either driver.
func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows)
}

// count runs a single-value COUNT query.
func (db *DB) count(ctx context.Context, query string, args ...any) (int64, error) {
	var n int64
	if err := db.queryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
