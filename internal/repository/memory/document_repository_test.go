package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/gdugdh24/mentor-directory/internal/domain"
)

func TestMergeWrite(t *testing.T) {
	repo := NewDocumentRepository()
	ctx := context.Background()

	if err := repo.MergeWrite(ctx, "mentees", "u1", domain.Patch{Set: domain.Document{"a": 1, "b": 2}}); err != nil {
		t.Fatalf("MergeWrite failed: %v", err)
	}
	if err := repo.MergeWrite(ctx, "mentees", "u1", domain.Patch{Set: domain.Document{"c": 3}, Delete: []string{"a"}}); err != nil {
		t.Fatalf("MergeWrite failed: %v", err)
	}

	doc, err := repo.GetByID(ctx, "mentees", "u1")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if _, ok := doc["a"]; ok {
		t.Error("a should be deleted")
	}
	if doc["b"] != 2 || doc["c"] != 3 {
		t.Errorf("unexpected document %v", doc)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	repo := NewDocumentRepository()

	if _, err := repo.GetByID(context.Background(), "mentees", "nobody"); !errors.Is(err, domain.ErrDocumentNotFound) {
		t.Errorf("expected ErrDocumentNotFound, got %v", err)
	}
}

func TestListAllAttachesIDs(t *testing.T) {
	repo := NewDocumentRepository()
	ctx := context.Background()

	for _, id := range []string{"b", "a"} {
		if err := repo.MergeWrite(ctx, "mentors", id, domain.SetPatch(domain.Document{"x": id})); err != nil {
			t.Fatalf("MergeWrite failed: %v", err)
		}
	}

	docs, err := repo.ListAll(ctx, "mentors")
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(docs) != 2 || docs[0]["id"] != "a" || docs[1]["id"] != "b" {
		t.Errorf("unexpected docs %v", docs)
	}

	// Returned documents are copies.
	docs[0]["x"] = "changed"
	stored, _ := repo.GetByID(ctx, "mentors", "a")
	if stored["x"] != "a" {
		t.Error("ListAll leaked a stored document")
	}
	if _, ok := stored["id"]; ok {
		t.Error("id should not be stored as a field")
	}
}
