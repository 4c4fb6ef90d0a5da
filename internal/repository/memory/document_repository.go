package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/gdugdh24/mentor-directory/internal/domain"
	"github.com/gdugdh24/mentor-directory/internal/repository"
)

type documentRepository struct {
	mu          sync.RWMutex
	collections map[string]map[string]domain.Document
}

// NewDocumentRepository returns a map-backed store for local runs and tests.
func NewDocumentRepository() repository.DocumentRepository {
	return &documentRepository{collections: make(map[string]map[string]domain.Document)}
}

func (r *documentRepository) ListAll(ctx context.Context, collection string) ([]domain.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	docs := r.collections[collection]
	ids := make([]string, 0, len(docs))
	for id := range docs {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]domain.Document, 0, len(ids))
	for _, id := range ids {
		doc := docs[id].Clone()
		doc[domain.FieldID] = id
		out = append(out, doc)
	}
	return out, nil
}

func (r *documentRepository) GetByID(ctx context.Context, collection, id string) (domain.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	doc, ok := r.collections[collection][id]
	if !ok {
		return nil, domain.ErrDocumentNotFound
	}
	return doc.Clone(), nil
}

func (r *documentRepository) MergeWrite(ctx context.Context, collection, id string, patch domain.Patch) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	docs, ok := r.collections[collection]
	if !ok {
		docs = make(map[string]domain.Document)
		r.collections[collection] = docs
	}
	doc, ok := docs[id]
	if !ok {
		doc = domain.Document{}
	}
	for k, v := range patch.Set {
		doc[k] = v
	}
	for _, k := range patch.Delete {
		delete(doc, k)
	}
	docs[id] = doc
	return nil
}

func (r *documentRepository) Ping(ctx context.Context) error { return nil }

func (r *documentRepository) Close() error { return nil }
