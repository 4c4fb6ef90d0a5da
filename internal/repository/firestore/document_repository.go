package firestore

import (
	"context"
	"fmt"

	gcfirestore "cloud.google.com/go/firestore"
	"github.com/gdugdh24/mentor-directory/internal/domain"
	"github.com/gdugdh24/mentor-directory/internal/repository"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type documentRepository struct {
	client *gcfirestore.Client
}

func NewDocumentRepository(client *gcfirestore.Client) repository.DocumentRepository {
	return &documentRepository{client: client}
}

func (r *documentRepository) ListAll(ctx context.Context, collection string) ([]domain.Document, error) {
	snaps, err := r.client.Collection(collection).Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}

	docs := make([]domain.Document, 0, len(snaps))
	for _, snap := range snaps {
		doc := domain.Document(snap.Data())
		doc[domain.FieldID] = snap.Ref.ID
		docs = append(docs, doc)
	}
	return docs, nil
}

func (r *documentRepository) GetByID(ctx context.Context, collection, id string) (domain.Document, error) {
	snap, err := r.client.Collection(collection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, domain.ErrDocumentNotFound
		}
		return nil, err
	}
	return domain.Document(snap.Data()), nil
}

func (r *documentRepository) MergeWrite(ctx context.Context, collection, id string, patch domain.Patch) error {
	data := make(map[string]interface{}, len(patch.Set)+len(patch.Delete))
	for k, v := range patch.Set {
		data[k] = v
	}
	for _, k := range patch.Delete {
		data[k] = gcfirestore.Delete
	}

	ref := r.client.Collection(collection).Doc(id)
	if len(data) == 0 {
		// Set with MergeAll rejects an empty map; create the document if missing.
		if _, err := ref.Create(ctx, map[string]interface{}{}); err != nil && status.Code(err) != codes.AlreadyExists {
			return fmt.Errorf("failed to create document: %w", err)
		}
		return nil
	}

	if _, err := ref.Set(ctx, data, gcfirestore.MergeAll); err != nil {
		return fmt.Errorf("failed to merge document: %w", err)
	}
	return nil
}

// Ping issues a cheap read so readiness reflects connectivity and credentials.
func (r *documentRepository) Ping(ctx context.Context) error {
	_, err := r.client.Collection(domain.DefaultCollection).Limit(1).Documents(ctx).GetAll()
	return err
}

func (r *documentRepository) Close() error {
	return r.client.Close()
}
