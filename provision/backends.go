package provision

import (
	"context"
	"database/sql"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/poiesic/indexit/config"
	"github.com/poiesic/indexit/vectorstore/pgvector"
	"github.com/poiesic/indexit/vectorstore/qdrant"
	"github.com/poiesic/indexit/vectorstore/sqlite"
)

func provisionPgvector(ctx context.Context, cfg config.PgvectorConfig, dimensions int) error {
	db, err := sql.Open("postgres", cfg.URL)
	if err != nil {
		return err
	}
	defer db.Close()

	return pgvector.EnsureSchema(ctx, db, cfg.Table, dimensions)
}

func provisionQdrant(ctx context.Context, cfg config.QdrantConfig, dimensions int) error {
	port := cfg.Port
	if port == 0 {
		port = qdrant.DefaultPort
	}

	conn, err := grpc.NewClient(
		fmt.Sprintf("%s:%d", cfg.Host, port),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return err
	}
	defer conn.Close()

	return qdrant.EnsureCollection(ctx, conn, cfg.Collection, dimensions)
}

func provisionSQLite(ctx context.Context, cfg config.SQLiteConfig) error {
	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return err
	}
	defer db.Close()
	db.SetMaxOpenConns(1)

	return sqlite.EnsureSchema(ctx, db, cfg.Table)
}
