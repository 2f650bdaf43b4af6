package fragstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/CTAG07/Drosera/pkg/templating"
)

// SetupSchema initializes the fragments table in the provided database.
// It should be called once on a new database before any other operations
// are performed. It is idempotent and safe to call on an
// already-initialized database.
func SetupSchema(db *sql.DB) error {
	const schemaFragments = `
CREATE TABLE IF NOT EXISTS fragments (
    path TEXT NOT NULL PRIMARY KEY,
    content TEXT NOT NULL
);
`
	if _, err := db.Exec(schemaFragments); err != nil {
		return fmt.Errorf("could not create fragments schema: %w", err)
	}
	return nil
}

// Store holds the database connection and the prepared statements used
// to read and write fragments. All methods are safe for concurrent use;
// the underlying *sql.DB handles pooling.
type Store struct {
	db         *sql.DB
	stmtGet    *sql.Stmt
	stmtPut    *sql.Stmt
	stmtDelete *sql.Stmt
	stmtList   *sql.Stmt
}

// NewStore creates and returns a new Store over an initialized database.
// It pre-compiles all necessary SQL statements, returning an error if any
// preparation fails.
func NewStore(db *sql.DB) (*Store, error) {
	stmtGet, err := db.Prepare(`SELECT content FROM fragments WHERE path = ?;`)
	if err != nil {
		return nil, err
	}

	stmtPut, err := db.Prepare(`INSERT INTO fragments (path, content) VALUES (?, ?) ON CONFLICT(path) DO UPDATE SET content = excluded.content;`)
	if err != nil {
		return nil, err
	}

	stmtDelete, err := db.Prepare(`DELETE FROM fragments WHERE path = ?;`)
	if err != nil {
		return nil, err
	}

	stmtList, err := db.Prepare(`SELECT path FROM fragments ORDER BY path;`)
	if err != nil {
		return nil, err
	}

	return &Store{
		db:         db,
		stmtGet:    stmtGet,
		stmtPut:    stmtPut,
		stmtDelete: stmtDelete,
		stmtList:   stmtList,
	}, nil
}

// Get returns the content stored under path. A path with no fragment
// returns an error wrapping sql.ErrNoRows.
func (s *Store) Get(ctx context.Context, path string) (string, error) {
	var content string
	if err := s.stmtGet.QueryRowContext(ctx, path).Scan(&content); err != nil {
		return "", fmt.Errorf("fragment %q: %w", path, err)
	}
	return content, nil
}

// Put stores content under path, replacing any existing fragment.
func (s *Store) Put(ctx context.Context, path, content string) error {
	if _, err := s.stmtPut.ExecContext(ctx, path, content); err != nil {
		return fmt.Errorf("could not store fragment %q: %w", path, err)
	}
	return nil
}

// Delete removes the fragment stored under path. Deleting a path with no
// fragment is a no-op.
func (s *Store) Delete(ctx context.Context, path string) error {
	if _, err := s.stmtDelete.ExecContext(ctx, path); err != nil {
		return fmt.Errorf("could not delete fragment %q: %w", path, err)
	}
	return nil
}

// List returns the paths of all stored fragments in sorted order.
func (s *Store) List(ctx context.Context) ([]string, error) {
	rows, err := s.stmtList.QueryContext(ctx)
	if err != nil {
		return nil, err
	}
	defer func(rows *sql.Rows) {
		_ = rows.Close()
	}(rows)

	var paths []string
	for rows.Next() {
		var path string
		if err = rows.Scan(&path); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return paths, nil
}

// Reader adapts the store to the templating engine's include seam.
// Include tokens then resolve their base-directory-joined paths against
// the fragments table.
func (s *Store) Reader() templating.FileReader {
	return func(ctx context.Context, path string) (string, error) {
		return s.Get(ctx, path)
	}
}

// Close releases the store's prepared statements. It does not close the
// database connection, which the caller owns.
func (s *Store) Close() {
	_ = s.stmtGet.Close()
	_ = s.stmtPut.Close()
	_ = s.stmtDelete.Close()
	_ = s.stmtList.Close()
}
