package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/gdugdh24/mentor-directory/internal/domain"
	"github.com/gdugdh24/mentor-directory/internal/repository"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

type documentRepository struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewDocumentRepository stores each collection as a Mongo collection of the
// same name, using the document id as _id.
func NewDocumentRepository(client *mongo.Client, database string) repository.DocumentRepository {
	return &documentRepository{client: client, db: client.Database(database)}
}

func (r *documentRepository) ListAll(ctx context.Context, collection string) ([]domain.Document, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.db.Collection(collection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var raw []bson.M
	if err := cursor.All(ctx, &raw); err != nil {
		return nil, err
	}

	docs := make([]domain.Document, 0, len(raw))
	for _, m := range raw {
		doc := toDocument(m)
		doc[domain.FieldID] = fmt.Sprint(m["_id"])
		docs = append(docs, doc)
	}
	return docs, nil
}

func (r *documentRepository) GetByID(ctx context.Context, collection, id string) (domain.Document, error) {
	var m bson.M
	err := r.db.Collection(collection).FindOne(ctx, bson.M{"_id": id}).Decode(&m)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrDocumentNotFound
		}
		return nil, err
	}
	return toDocument(m), nil
}

func (r *documentRepository) MergeWrite(ctx context.Context, collection, id string, patch domain.Patch) error {
	update := bson.M{}
	if len(patch.Set) > 0 {
		set := bson.M{}
		for k, v := range patch.Set {
			set[k] = v
		}
		update["$set"] = set
	}
	if len(patch.Delete) > 0 {
		unset := bson.M{}
		for _, k := range patch.Delete {
			unset[k] = ""
		}
		update["$unset"] = unset
	}
	if len(update) == 0 {
		update["$setOnInsert"] = bson.M{"_id": id}
	}

	opts := options.UpdateOne().SetUpsert(true)
	if _, err := r.db.Collection(collection).UpdateOne(ctx, bson.M{"_id": id}, update, opts); err != nil {
		return fmt.Errorf("failed to merge document: %w", err)
	}
	return nil
}

func (r *documentRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx, readpref.Primary())
}

func (r *documentRepository) Close() error {
	return r.client.Disconnect(context.Background())
}

// toDocument drops _id and converts nested BSON containers into plain maps
// and slices so the rest of the service sees one shape regardless of driver.
func toDocument(m bson.M) domain.Document {
	doc := make(domain.Document, len(m))
	for k, v := range m {
		if k == "_id" {
			continue
		}
		doc[k] = plain(v)
	}
	return doc
}

func plain(v any) any {
	switch t := v.(type) {
	case bson.M:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[k] = plain(item)
		}
		return out
	case bson.D:
		out := make(map[string]any, len(t))
		for _, e := range t {
			out[e.Key] = plain(e.Value)
		}
		return out
	case bson.A:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = plain(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[k] = plain(item)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = plain(item)
		}
		return out
	}
	return v
}
