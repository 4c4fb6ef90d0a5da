package repository

import (
	"context"

	"github.com/gdugdh24/mentor-directory/internal/domain"
)

// DocumentRepository is the document store adapter. Implementations live in
// the per-driver sub-packages.
type DocumentRepository interface {
	// ListAll returns every document of a collection with FieldID attached.
	ListAll(ctx context.Context, collection string) ([]domain.Document, error)
	// GetByID returns domain.ErrDocumentNotFound when the document is absent.
	GetByID(ctx context.Context, collection, id string) (domain.Document, error)
	// MergeWrite creates the document if needed, writes patch.Set and removes
	// patch.Delete, leaving every other stored field as it was.
	MergeWrite(ctx context.Context, collection, id string, patch domain.Patch) error
	Ping(ctx context.Context) error
	Close() error
}
