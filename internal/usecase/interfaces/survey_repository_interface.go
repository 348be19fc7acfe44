package interfaces

import (
	"context"
	"fmt"

	"levantamiento_service/internal/domain/entities"
	"levantamiento_service/pkg"
)

// ErrInvalidTransition is returned by repositories when the store refuses a block
// decision, typically because the block is no longer pending.
var ErrInvalidTransition = fmt.Errorf("%w: block is not pending", pkg.ErrValidation)

//go:generate mockgen -source=survey_repository_interface.go -destination=mocks/survey_repository_interface_mock.go -package=mock_interfaces

// ISurveyRepository is the source of truth for survey aggregates.
//
// Every command returns the full updated aggregate. A zero Survey (empty ID) means
// the survey does not exist.
//
// Implementations:
//   - remote procurement backend (REST)
//   - DynamoDB
//   - SQLite (local deployments)
type ISurveyRepository interface {
	FetchSurvey(ctx context.Context, id string) (entities.Survey, error)
	ReviewBlock(ctx context.Context, id string, block entities.Block, decision entities.BlockStatus, comments *string) (entities.Survey, error)
	ApproveAllBlocks(ctx context.Context, id string) (entities.Survey, error)
	ReopenForEditing(ctx context.Context, id string, reason *string) (entities.Survey, error)
}

// ISurveyStore is implemented by the storage adapters that also own survey creation
// (import/seed). The remote backend creates surveys itself.
type ISurveyStore interface {
	ISurveyRepository
	Create(ctx context.Context, s entities.Survey) (entities.Survey, error)
}
