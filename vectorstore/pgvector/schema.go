package pgvector

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/poiesic/indexit/vectorstore"
)

// EnsureSchema provisions the document table, the cosine vector index, and
// the namespace metadata index. It probes for the table first and treats an
// existing schema as success; every DDL statement is additionally guarded
// with IF NOT EXISTS so a lost race with another provisioner changes
// nothing. Nothing is ever dropped or mutated.
func EnsureSchema(ctx context.Context, db *sql.DB, table string, dimensions int) error {
	if table == "" {
		table = DefaultTable
	}
	if dimensions < 1 {
		return fmt.Errorf("%w: embedding dimensions must be at least 1", vectorstore.ErrConfigRequired)
	}

	var existing sql.NullString
	if err := db.QueryRowContext(ctx, "SELECT to_regclass($1)", table).Scan(&existing); err != nil {
		return vectorstore.NewBackendError(backendName, "probe", err)
	}
	if existing.Valid {
		return nil
	}

	statements := []string{
		"CREATE EXTENSION IF NOT EXISTS vector",
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id TEXT PRIMARY KEY,
			content TEXT NOT NULL,
			metadata JSONB NOT NULL DEFAULT '{}',
			embedding vector(%d)
		)`, table, dimensions),
		fmt.Sprintf("CREATE INDEX IF NOT EXISTS %s_embedding_idx ON %s USING hnsw (embedding vector_cosine_ops)", table, table),
		fmt.Sprintf("CREATE INDEX IF NOT EXISTS %s_namespace_idx ON %s ((metadata->>'namespace'))", table, table),
	}
	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return vectorstore.NewBackendError(backendName, "create_schema", err)
		}
	}
	return nil
}
