package directory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gdugdh24/mentor-directory/internal/domain"
	"github.com/gdugdh24/mentor-directory/internal/repository"
)

type DirectoryUseCase struct {
	docRepo repository.DocumentRepository
	log     *slog.Logger
}

func NewDirectoryUseCase(docRepo repository.DocumentRepository, log *slog.Logger) *DirectoryUseCase {
	return &DirectoryUseCase{
		docRepo: docRepo,
		log:     log,
	}
}

// ListDirectory reads the whole collection and returns the profiles that
// pass spec. An empty collection name reads mentees.
func (uc *DirectoryUseCase) ListDirectory(ctx context.Context, collection string, spec FilterSpec) ([]domain.Document, error) {
	if collection == "" {
		collection = domain.DefaultCollection
	}

	docs, err := uc.docRepo.ListAll(ctx, collection)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", collection, err)
	}

	result := Filter(docs, spec)

	uc.log.Debug("directory filtered",
		"collection", collection,
		"total", len(docs),
		"matched", len(result),
	)

	return result, nil
}
