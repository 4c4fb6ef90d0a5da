package membership

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gdugdh24/mentor-directory/internal/domain"
	"github.com/gdugdh24/mentor-directory/internal/infrastructure/event"
	"github.com/gdugdh24/mentor-directory/internal/repository"
)

// MemberClient updates members on the membership platform.
type MemberClient interface {
	UpdateMember(ctx context.Context, memberID string, customFields map[string]any) (domain.Document, error)
}

type MembershipUseCase struct {
	client    MemberClient
	docRepo   repository.DocumentRepository
	publisher event.Publisher
	log       *slog.Logger
}

func NewMembershipUseCase(
	client MemberClient,
	docRepo repository.DocumentRepository,
	publisher event.Publisher,
	log *slog.Logger,
) *MembershipUseCase {
	return &MembershipUseCase{
		client:    client,
		docRepo:   docRepo,
		publisher: publisher,
		log:       log,
	}
}

// SyncMember pushes custom field updates to the membership platform and
// mirrors the returned member record into the members collection. A remote
// update is not undone when the mirror write fails.
func (uc *MembershipUseCase) SyncMember(ctx context.Context, memberID string, fields map[string]any) (domain.Document, error) {
	member, err := uc.client.UpdateMember(ctx, memberID, fields)
	if err != nil {
		return nil, err
	}

	if err := uc.docRepo.MergeWrite(ctx, domain.CollectionMembers, memberID, domain.SetPatch(member)); err != nil {
		return nil, fmt.Errorf("failed to mirror member: %w", err)
	}

	uc.log.Info("member synced", "member_id", memberID, "fields", len(fields))

	err = uc.publisher.Publish(ctx, &event.Event{
		Type:       event.TypeMemberSynced,
		Collection: domain.CollectionMembers,
		DocumentID: memberID,
		Timestamp:  time.Now().UTC(),
	})
	if err != nil {
		uc.log.Error("failed to publish member event", "member_id", memberID, "error", err)
	}

	return member, nil
}
