package profile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gdugdh24/mentor-directory/internal/domain"
	"github.com/gdugdh24/mentor-directory/internal/infrastructure/event"
	"github.com/gdugdh24/mentor-directory/internal/repository"
)

type ProfileUseCase struct {
	docRepo   repository.DocumentRepository
	publisher event.Publisher
	log       *slog.Logger
}

func NewProfileUseCase(
	docRepo repository.DocumentRepository,
	publisher event.Publisher,
	log *slog.Logger,
) *ProfileUseCase {
	return &ProfileUseCase{
		docRepo:   docRepo,
		publisher: publisher,
		log:       log,
	}
}

// UpdateResult is a stored profile after a write.
type UpdateResult struct {
	UserID     string
	Collection string
	Profile    domain.Document
}

// UpdateProfile applies a direct field update to the profile stored under
// userID. A userId in the body that names someone else is rejected with
// domain.ErrForbiddenUpdate before anything is read or written.
func (uc *ProfileUseCase) UpdateProfile(ctx context.Context, userID string, in DirectInput) (*UpdateResult, error) {
	if !ownsProfile(userID, in) {
		return nil, domain.ErrForbiddenUpdate
	}

	update, err := Normalize(in)
	if err != nil {
		return nil, err
	}

	collection := collectionOf(in)
	profile, err := uc.save(ctx, collection, userID, update)
	if err != nil {
		return nil, err
	}

	return &UpdateResult{UserID: userID, Collection: collection, Profile: profile}, nil
}

// ApplyWebhook applies a Webflow form submission to the profile named by
// its "User ID" field.
func (uc *ProfileUseCase) ApplyWebhook(ctx context.Context, in WebflowInput) (*UpdateResult, error) {
	userID, ok := userIDOf(in)
	if !ok {
		return nil, domain.ErrMissingUserID
	}

	update, err := Normalize(in)
	if err != nil {
		return nil, err
	}

	collection := collectionOf(in)
	profile, err := uc.save(ctx, collection, userID, update)
	if err != nil {
		return nil, err
	}

	return &UpdateResult{UserID: userID, Collection: collection, Profile: profile}, nil
}

// ownsProfile reports whether the body's userId is absent, empty or equal to
// the path id.
func ownsProfile(userID string, in DirectInput) bool {
	switch v := in[directTable.userID].(type) {
	case nil:
		return true
	case string:
		return v == "" || v == userID
	}
	return false
}

// save merges update over the stored document, recomputes completeness and
// writes the result back in one merge-write.
func (uc *ProfileUseCase) save(ctx context.Context, collection, id string, update domain.Update) (domain.Document, error) {
	existing, err := uc.docRepo.GetByID(ctx, collection, id)
	if err != nil {
		if !errors.Is(err, domain.ErrDocumentNotFound) {
			return nil, fmt.Errorf("failed to load profile: %w", err)
		}
		existing = domain.Document{}
	}

	merged := update.Apply(existing)
	score := Completeness(merged)
	merged[domain.FieldCompleteness] = score

	patch := update.Patch()
	patch.Set[domain.FieldCompleteness] = score

	if err := uc.docRepo.MergeWrite(ctx, collection, id, patch); err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}

	uc.log.Info("profile updated",
		"collection", collection,
		"user_id", id,
		"completeness", score,
	)

	err = uc.publisher.Publish(ctx, &event.Event{
		Type:         event.TypeProfileUpdated,
		Collection:   collection,
		DocumentID:   id,
		Completeness: &score,
		Timestamp:    time.Now().UTC(),
	})
	if err != nil {
		uc.log.Error("failed to publish profile event", "user_id", id, "error", err)
	}

	return merged, nil
}
