package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/poiesic/indexit/vectorstore"
)

// EnsureSchema provisions the document table and the namespace metadata
// index. sqlite_master is the existence probe; the DDL is additionally
// guarded with IF NOT EXISTS so re-running against an existing schema
// changes nothing. Nothing is ever dropped or mutated.
func EnsureSchema(ctx context.Context, db *sql.DB, table string) error {
	if table == "" {
		table = DefaultTable
	}

	var name string
	err := db.QueryRowContext(ctx,
		"SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&name)
	switch {
	case err == nil:
		return nil
	case !errors.Is(err, sql.ErrNoRows):
		return vectorstore.NewBackendError(backendName, "probe", err)
	}

	statements := []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id TEXT PRIMARY KEY,
			content TEXT NOT NULL,
			metadata TEXT NOT NULL DEFAULT '{}',
			embedding BLOB
		)`, table),
		fmt.Sprintf("CREATE INDEX IF NOT EXISTS %s_namespace_idx ON %s (json_extract(metadata, '$.namespace'))", table, table),
	}
	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return vectorstore.NewBackendError(backendName, "create_schema", err)
		}
	}
	return nil
}
