package database

import (
	"context"
	"fmt"
	"time"

	"github.com/gdugdh24/mentor-directory/internal/config"
	"github.com/gdugdh24/mentor-directory/internal/repository"
	firestorerepo "github.com/gdugdh24/mentor-directory/internal/repository/firestore"
	"github.com/gdugdh24/mentor-directory/internal/repository/memory"
	"github.com/gdugdh24/mentor-directory/internal/repository/mongodb"
	"github.com/gdugdh24/mentor-directory/internal/repository/postgres"
	redisrepo "github.com/gdugdh24/mentor-directory/internal/repository/redis"
)

// NewDocumentStore connects the document store selected by cfg.Store.Driver.
func NewDocumentStore(cfg *config.Config) (repository.DocumentRepository, error) {
	switch cfg.Store.Driver {
	case config.DriverFirestore:
		client, err := NewFirestoreClient(&cfg.Firestore)
		if err != nil {
			return nil, err
		}
		return firestorerepo.NewDocumentRepository(client), nil

	case config.DriverMongo:
		client, err := NewMongoClient(&cfg.Mongo)
		if err != nil {
			return nil, err
		}
		return mongodb.NewDocumentRepository(client, cfg.Mongo.Database), nil

	case config.DriverPostgres:
		db, err := NewPostgresDB(&cfg.Database)
		if err != nil {
			return nil, err
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := postgres.EnsureSchema(ctx, db); err != nil {
			db.Close()
			return nil, err
		}
		return postgres.NewDocumentRepository(db), nil

	case config.DriverRedis:
		client, err := NewRedisClient(&cfg.Redis)
		if err != nil {
			return nil, err
		}
		return redisrepo.NewDocumentRepository(client), nil

	case config.DriverMemory:
		return memory.NewDocumentRepository(), nil
	}
	return nil, fmt.Errorf("unsupported store driver %q", cfg.Store.Driver)
}
