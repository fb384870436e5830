package repository

import (
	"context"
	"errors"
	"fmt"

	"scheme-navigator/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// ErrStorageUnavailable is returned when the document store cannot be read.
var ErrStorageUnavailable = errors.New("storage unavailable")

const schemeDocumentsTable = "scheme_documents"

// DB is the subset of *pgxpool.Pool the repository uses.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

type SchemeRepository struct {
	db     DB
	logger *zap.Logger
}

func NewSchemeRepository(db DB, logger *zap.Logger) *SchemeRepository {
	return &SchemeRepository{
		db:     db,
		logger: logger,
	}
}

// FetchAll returns every stored document of a category in insertion order.
func (r *SchemeRepository) FetchAll(ctx context.Context, category string) ([]models.RawDocument, error) {
	query := squirrel.Select("id", "category", "document", "created_at").
		From(schemeDocumentsTable).
		Where(squirrel.Eq{"category": category}).
		OrderBy("id ASC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrStorageUnavailable, category, err)
	}
	defer rows.Close()

	docs := []models.RawDocument{}
	for rows.Next() {
		var doc models.RawDocument
		if err := rows.Scan(&doc.ID, &doc.Category, &doc.Data, &doc.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrStorageUnavailable, category, err)
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrStorageUnavailable, category, err)
	}

	return docs, nil
}

// ReplaceCategory swaps all documents of a category for docs in one
// transaction.
func (r *SchemeRepository) ReplaceCategory(ctx context.Context, category string, docs [][]byte) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	del := squirrel.Delete(schemeDocumentsTable).
		Where(squirrel.Eq{"category": category}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := del.ToSql()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("failed to clear category %s: %w", category, err)
	}

	if len(docs) > 0 {
		builder := squirrel.Insert(schemeDocumentsTable).
			Columns("category", "document").
			PlaceholderFormat(squirrel.Dollar)

		for _, doc := range docs {
			builder = builder.Values(category, string(doc))
		}

		sql, args, err = builder.ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			return fmt.Errorf("failed to insert documents for %s: %w", category, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	r.logger.Info("Category replaced",
		zap.String("category", category),
		zap.Int("documents", len(docs)),
	)
	return nil
}

// Migrate creates the document table if it does not exist yet.
func (r *SchemeRepository) Migrate(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS scheme_documents (
			id BIGSERIAL PRIMARY KEY,
			category TEXT NOT NULL,
			document JSON NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_scheme_documents_category ON scheme_documents (category)`,
	}

	for _, stmt := range statements {
		if _, err := r.db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}
	return nil
}
