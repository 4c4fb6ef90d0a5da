package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gdugdh24/mentor-directory/internal/domain"
	"github.com/gdugdh24/mentor-directory/internal/repository"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const schema = `
	CREATE TABLE IF NOT EXISTS documents (
		collection TEXT NOT NULL,
		id         TEXT NOT NULL,
		data       JSONB NOT NULL DEFAULT '{}'::jsonb,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (collection, id)
	)
`

type documentRow struct {
	ID   string `db:"id"`
	Data []byte `db:"data"`
}

type documentRepository struct {
	db *sqlx.DB
}

func NewDocumentRepository(db *sqlx.DB) repository.DocumentRepository {
	return &documentRepository{db: db}
}

// EnsureSchema creates the documents table when it does not exist.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create documents table: %w", err)
	}
	return nil
}

func (r *documentRepository) ListAll(ctx context.Context, collection string) ([]domain.Document, error) {
	var rows []documentRow
	query := `SELECT id, data FROM documents WHERE collection = $1 ORDER BY id`
	if err := r.db.SelectContext(ctx, &rows, query, collection); err != nil {
		return nil, err
	}

	docs := make([]domain.Document, 0, len(rows))
	for _, row := range rows {
		doc, err := decode(row.Data)
		if err != nil {
			return nil, fmt.Errorf("document %s/%s: %w", collection, row.ID, err)
		}
		doc[domain.FieldID] = row.ID
		docs = append(docs, doc)
	}
	return docs, nil
}

func (r *documentRepository) GetByID(ctx context.Context, collection, id string) (domain.Document, error) {
	var row documentRow
	query := `SELECT id, data FROM documents WHERE collection = $1 AND id = $2`
	err := r.db.GetContext(ctx, &row, query, collection, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrDocumentNotFound
		}
		return nil, err
	}
	return decode(row.Data)
}

func (r *documentRepository) MergeWrite(ctx context.Context, collection, id string, patch domain.Patch) error {
	set, err := json.Marshal(patch.Set)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}
	deletes := patch.Delete
	if deletes == nil {
		deletes = []string{}
	}

	query := `
		INSERT INTO documents (collection, id, data)
		VALUES ($1, $2, $3::jsonb - $4::text[])
		ON CONFLICT (collection, id) DO UPDATE
		SET data = (documents.data || EXCLUDED.data) - $4::text[],
		    updated_at = CURRENT_TIMESTAMP
	`
	_, err = r.db.ExecContext(ctx, query, collection, id, string(set), pq.Array(deletes))
	return err
}

func (r *documentRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *documentRepository) Close() error {
	return r.db.Close()
}

func decode(data []byte) (domain.Document, error) {
	doc := domain.Document{}
	if len(data) == 0 {
		return doc, nil
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}
	return doc, nil
}
