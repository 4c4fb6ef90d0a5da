package database

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/gdugdh24/mentor-directory/internal/config"
	"google.golang.org/api/option"
)

// NewFirestoreClient creates a Firestore client. Without a credentials file
// the client falls back to application default credentials.
func NewFirestoreClient(cfg *config.FirestoreConfig) (*firestore.Client, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	client, err := firestore.NewClient(context.Background(), cfg.ProjectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create firestore client: %w", err)
	}
	return client, nil
}
