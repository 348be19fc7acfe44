// Package persistence selects the storage adapter configured for the deployment.
package persistence

import (
	"context"

	"levantamiento_service/internal/adapter/persistence/repository"
	"levantamiento_service/internal/adapter/persistence/sqlite"
	"levantamiento_service/internal/infrastructure/config"
	"levantamiento_service/internal/infrastructure/database"
	"levantamiento_service/internal/usecase/interfaces"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// Store bundles the repositories of one storage backend.
type Store struct {
	Surveys interfaces.ISurveyStore
	Events  interfaces.IReviewEventRepository
	close   func() error
}

// Close releases the underlying connections.
func (s *Store) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// Open connects the driver named in cfg.Store.
func Open(ctx context.Context, cfg *config.Config) (*Store, error) {
	switch cfg.Store.Driver {
	case config.StoreSQLite:
		db, err := database.OpenSQLite(cfg.Store.SQLitePath)
		if err != nil {
			return nil, eris.Wrap(err, "persistence: open sqlite")
		}
		zap.L().Info("[persistence] using sqlite store", zap.String("path", cfg.Store.SQLitePath))
		return &Store{
			Surveys: sqlite.NewSurveyRepository(db),
			Events:  sqlite.NewReviewEventRepository(db),
			close:   db.Close,
		}, nil
	case config.StoreDynamoDB, "":
		ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
		if err != nil {
			return nil, eris.Wrap(err, "persistence: connect dynamodb")
		}
		zap.L().Info("[persistence] using dynamodb store",
			zap.String("region", cfg.DynamoDB.Region), zap.String("surveys_table", cfg.DynamoDB.SurveysTable))
		return &Store{
			Surveys: repository.NewSurveyDynamoRepository(ddb, cfg.DynamoDB.SurveysTable),
			Events:  repository.NewReviewEventDynamoRepository(ddb, cfg.DynamoDB.ReviewEventsTable),
		}, nil
	default:
		return nil, eris.Errorf("persistence: unknown store driver %q", cfg.Store.Driver)
	}
}
