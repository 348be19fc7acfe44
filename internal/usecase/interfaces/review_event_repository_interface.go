package interfaces

import (
	"context"

	"levantamiento_service/internal/domain/entities"
)

//go:generate mockgen -source=review_event_repository_interface.go -destination=mocks/review_event_repository_interface_mock.go -package=mock_interfaces

// IReviewEventRepository persists the audit trail of review commands.
type IReviewEventRepository interface {
	Create(ctx context.Context, e entities.ReviewEvent) (entities.ReviewEvent, error)
	ListBySurveyID(ctx context.Context, surveyID string) ([]entities.ReviewEvent, error)
}
