package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/gdugdh24/mentor-directory/internal/domain"
	"github.com/gdugdh24/mentor-directory/internal/repository"
	goredis "github.com/redis/go-redis/v9"
)

// Each document is a hash whose values are JSON-encoded field values. A set
// per collection tracks the document ids.
type documentRepository struct {
	client *goredis.Client
}

func NewDocumentRepository(client *goredis.Client) repository.DocumentRepository {
	return &documentRepository{client: client}
}

func docKey(collection, id string) string {
	return fmt.Sprintf("doc:%s:%s", collection, id)
}

func idsKey(collection string) string {
	return "docs:" + collection
}

func (r *documentRepository) ListAll(ctx context.Context, collection string) ([]domain.Document, error) {
	ids, err := r.client.SMembers(ctx, idsKey(collection)).Result()
	if err != nil {
		return nil, err
	}
	sort.Strings(ids)

	pipe := r.client.Pipeline()
	cmds := make([]*goredis.MapStringStringCmd, len(ids))
	for i, id := range ids {
		cmds[i] = pipe.HGetAll(ctx, docKey(collection, id))
	}
	if len(ids) > 0 {
		if _, err := pipe.Exec(ctx); err != nil {
			return nil, err
		}
	}

	docs := make([]domain.Document, 0, len(ids))
	for i, id := range ids {
		fields, err := cmds[i].Result()
		if err != nil {
			return nil, err
		}
		doc, err := decode(fields)
		if err != nil {
			return nil, fmt.Errorf("document %s/%s: %w", collection, id, err)
		}
		doc[domain.FieldID] = id
		docs = append(docs, doc)
	}
	return docs, nil
}

func (r *documentRepository) GetByID(ctx context.Context, collection, id string) (domain.Document, error) {
	exists, err := r.client.SIsMember(ctx, idsKey(collection), id).Result()
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrDocumentNotFound
	}

	fields, err := r.client.HGetAll(ctx, docKey(collection, id)).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, domain.ErrDocumentNotFound
		}
		return nil, err
	}
	return decode(fields)
}

func (r *documentRepository) MergeWrite(ctx context.Context, collection, id string, patch domain.Patch) error {
	values := make(map[string]any, len(patch.Set))
	for field, v := range patch.Set {
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to encode field %s: %w", field, err)
		}
		values[field] = string(raw)
	}

	key := docKey(collection, id)
	_, err := r.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		if len(values) > 0 {
			pipe.HSet(ctx, key, values)
		}
		if len(patch.Delete) > 0 {
			pipe.HDel(ctx, key, patch.Delete...)
		}
		pipe.SAdd(ctx, idsKey(collection), id)
		return nil
	})
	return err
}

func (r *documentRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *documentRepository) Close() error {
	return r.client.Close()
}

func decode(fields map[string]string) (domain.Document, error) {
	doc := make(domain.Document, len(fields))
	for field, raw := range fields {
		var v any
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			return nil, fmt.Errorf("failed to decode field %s: %w", field, err)
		}
		doc[field] = v
	}
	return doc, nil
}
