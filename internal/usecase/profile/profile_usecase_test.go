package profile

import (
	"context"
	"errors"
	"testing"

	"github.com/gdugdh24/mentor-directory/internal/domain"
	"github.com/gdugdh24/mentor-directory/internal/infrastructure/event"
	"github.com/gdugdh24/mentor-directory/internal/infrastructure/logger"
	"github.com/gdugdh24/mentor-directory/internal/repository"
	"github.com/gdugdh24/mentor-directory/internal/repository/memory"
)

type failingRepository struct {
	repository.DocumentRepository
	getErr   error
	writeErr error
	writes   int
}

func (r *failingRepository) GetByID(ctx context.Context, collection, id string) (domain.Document, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	return r.DocumentRepository.GetByID(ctx, collection, id)
}

func (r *failingRepository) MergeWrite(ctx context.Context, collection, id string, patch domain.Patch) error {
	r.writes++
	if r.writeErr != nil {
		return r.writeErr
	}
	return r.DocumentRepository.MergeWrite(ctx, collection, id, patch)
}

func setupUseCase(t *testing.T) (*ProfileUseCase, *failingRepository, *event.Recorder) {
	t.Helper()
	repo := &failingRepository{DocumentRepository: memory.NewDocumentRepository()}
	rec := &event.Recorder{}
	return NewProfileUseCase(repo, rec, logger.Discard()), repo, rec
}

func TestUpdateProfileCreatesDocument(t *testing.T) {
	uc, repo, rec := setupUseCase(t)
	ctx := context.Background()

	res, err := uc.UpdateProfile(ctx, "5", DirectInput{
		"pronouns":   "he/him",
		"location":   "Austin",
		"skills":     []any{"Go"},
		"isPublic":   true,
		"collection": "mentors",
	})
	if err != nil {
		t.Fatalf("UpdateProfile failed: %v", err)
	}
	if res.Collection != "mentors" {
		t.Errorf("expected mentors collection, got %s", res.Collection)
	}
	if res.Profile["completeness"] != 27 {
		t.Errorf("expected completeness 27, got %v", res.Profile["completeness"])
	}

	stored, err := repo.GetByID(ctx, "mentors", "5")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if stored["location"] != "Austin" || stored["isPublic"] != true {
		t.Errorf("unexpected stored document %v", stored)
	}
	if stored["completeness"] != 27 {
		t.Errorf("expected stored completeness 27, got %v", stored["completeness"])
	}

	if len(rec.Events) != 1 || rec.Events[0].Type != event.TypeProfileUpdated || rec.Events[0].DocumentID != "5" {
		t.Errorf("unexpected events %+v", rec.Events)
	}
}

func TestUpdateProfileMergesAndClears(t *testing.T) {
	uc, repo, _ := setupUseCase(t)
	ctx := context.Background()

	if err := repo.DocumentRepository.MergeWrite(ctx, "mentees", "7", domain.SetPatch(domain.Document{
		"first_name": "Ada",
		"location":   "London",
		"goals":      "Mentor others",
		"isPublic":   true,
	})); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	res, err := uc.UpdateProfile(ctx, "7", DirectInput{
		"location": domain.NotSpecified,
		"jobTitle": "CTO",
		"userId":   "7",
	})
	if err != nil {
		t.Fatalf("UpdateProfile failed: %v", err)
	}

	stored, _ := repo.GetByID(ctx, "mentees", "7")
	if _, ok := stored["location"]; ok {
		t.Error("location should be removed")
	}
	if _, ok := stored["goals"]; ok {
		t.Error("goals missing from the update should be removed")
	}
	if stored["first_name"] != "Ada" {
		t.Errorf("first_name should be preserved, got %v", stored["first_name"])
	}
	if stored["isPublic"] != true {
		t.Errorf("isPublic should be preserved when absent, got %v", stored["isPublic"])
	}
	if stored["jobTitle"] != "CTO" {
		t.Errorf("expected jobTitle CTO, got %v", stored["jobTitle"])
	}
	if res.Profile["completeness"] != 9 {
		t.Errorf("expected completeness 9, got %v", res.Profile["completeness"])
	}
}

func TestUpdateProfileForbidden(t *testing.T) {
	tests := []struct {
		name   string
		userID any
	}{
		{"other user", "9"},
		{"numeric id", float64(5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, repo, rec := setupUseCase(t)

			_, err := uc.UpdateProfile(context.Background(), "5", DirectInput{"userId": tt.userID, "location": "Rome"})
			if !errors.Is(err, domain.ErrForbiddenUpdate) {
				t.Fatalf("expected ErrForbiddenUpdate, got %v", err)
			}
			if repo.writes != 0 {
				t.Errorf("expected no writes, got %d", repo.writes)
			}
			if len(rec.Events) != 0 {
				t.Errorf("expected no events, got %d", len(rec.Events))
			}
		})
	}
}

func TestUpdateProfileEmptyUserIDAllowed(t *testing.T) {
	uc, _, _ := setupUseCase(t)

	if _, err := uc.UpdateProfile(context.Background(), "5", DirectInput{"userId": ""}); err != nil {
		t.Errorf("empty userId should be ignored, got %v", err)
	}
}

func TestUpdateProfileStoreFailures(t *testing.T) {
	storeErr := errors.New("store down")

	uc, repo, rec := setupUseCase(t)
	repo.getErr = storeErr
	if _, err := uc.UpdateProfile(context.Background(), "1", DirectInput{}); !errors.Is(err, storeErr) {
		t.Errorf("expected wrapped read error, got %v", err)
	}

	repo.getErr = nil
	repo.writeErr = storeErr
	if _, err := uc.UpdateProfile(context.Background(), "1", DirectInput{}); !errors.Is(err, storeErr) {
		t.Errorf("expected wrapped write error, got %v", err)
	}
	if len(rec.Events) != 0 {
		t.Errorf("failed writes must not publish, got %d events", len(rec.Events))
	}
}

func TestUpdateProfilePublishFailureIgnored(t *testing.T) {
	uc, _, rec := setupUseCase(t)
	rec.Err = errors.New("broker down")

	if _, err := uc.UpdateProfile(context.Background(), "1", DirectInput{"location": "Oslo"}); err != nil {
		t.Errorf("publish failure should not fail the update, got %v", err)
	}
}

func TestApplyWebhook(t *testing.T) {
	uc, repo, _ := setupUseCase(t)
	ctx := context.Background()

	res, err := uc.ApplyWebhook(ctx, NewWebflowInput(map[string]any{
		"data": map[string]any{
			"User ID":            "wf-1",
			"Collection":         "mentors",
			"Preferred pronouns": "she/her",
			"Job title":          "Designer",
			"Public Profile":     "true",
		},
	}))
	if err != nil {
		t.Fatalf("ApplyWebhook failed: %v", err)
	}
	if res.UserID != "wf-1" || res.Collection != "mentors" {
		t.Errorf("unexpected result %+v", res)
	}

	stored, err := repo.GetByID(ctx, "mentors", "wf-1")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if stored["pronouns"] != "she/her" || stored["jobTitle"] != "Designer" || stored["isPublic"] != true {
		t.Errorf("unexpected stored document %v", stored)
	}
}

func TestApplyWebhookMissingUserID(t *testing.T) {
	uc, repo, _ := setupUseCase(t)

	for _, body := range []map[string]any{
		{},
		{"data": map[string]any{"Location": "Rome"}},
		{"User ID": ""},
	} {
		if _, err := uc.ApplyWebhook(context.Background(), NewWebflowInput(body)); !errors.Is(err, domain.ErrMissingUserID) {
			t.Errorf("body %v: expected ErrMissingUserID, got %v", body, err)
		}
	}
	if repo.writes != 0 {
		t.Errorf("expected no writes, got %d", repo.writes)
	}
}
