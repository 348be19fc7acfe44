package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"levantamiento_service/internal/domain/auth"
	"levantamiento_service/internal/domain/entities"
	"levantamiento_service/internal/usecase/interfaces"
	"levantamiento_service/pkg"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrSurveyNotFound           = fmt.Errorf("%w: survey not found", pkg.ErrNotFound)
	ErrInvalidSurveyID          = fmt.Errorf("%w: invalid survey id", pkg.ErrValidation)
	ErrInvalidBlock             = fmt.Errorf("%w: invalid block", pkg.ErrValidation)
	ErrRejectionCommentRequired = fmt.Errorf("%w: rejection comment is required", pkg.ErrValidation)
	ErrNothingToReopen          = fmt.Errorf("%w: no reviewed blocks to reopen", pkg.ErrValidation)
	ErrNotAllowed               = fmt.Errorf("%w: operation not allowed for this role", pkg.ErrForbidden)
	ErrHistoryUnavailable       = fmt.Errorf("%w: review history not configured", pkg.ErrService)
)

//go:generate mockgen -source=survey_review_usecase.go -destination=../adapter/http/handlers/mocks/survey_review_usecase_mock.go -package=mocks

// ISurveyReviewUseCase exposes the review commands of a work survey.
//
// Every operation receives the caller's principal explicitly. Commands never touch
// local state: they return the aggregate the repository reports after the change.
type ISurveyReviewUseCase interface {
	GetSurvey(ctx context.Context, p auth.Principal, surveyID string) (entities.Survey, error)
	ApproveBlock(ctx context.Context, p auth.Principal, surveyID string, block entities.Block) (entities.Survey, error)
	RejectBlock(ctx context.Context, p auth.Principal, surveyID string, block entities.Block, comments string) (entities.Survey, error)
	ApproveAll(ctx context.Context, p auth.Principal, surveyID string) (entities.Survey, error)
	Reopen(ctx context.Context, p auth.Principal, surveyID string, reason string) (entities.Survey, error)
	History(ctx context.Context, p auth.Principal, surveyID string) ([]entities.ReviewEvent, error)
}

type SurveyReviewUseCase struct {
	repo   interfaces.ISurveyRepository
	events interfaces.IReviewEventRepository
}

var _ ISurveyReviewUseCase = (*SurveyReviewUseCase)(nil)

// NewSurveyReviewUseCase wires the use case. events may be nil when the repository
// keeps its own audit trail (remote backend).
func NewSurveyReviewUseCase(repo interfaces.ISurveyRepository, events interfaces.IReviewEventRepository) *SurveyReviewUseCase {
	return &SurveyReviewUseCase{repo: repo, events: events}
}

func (u *SurveyReviewUseCase) GetSurvey(ctx context.Context, p auth.Principal, surveyID string) (entities.Survey, error) {
	if !p.CanView() {
		return entities.Survey{}, ErrNotAllowed
	}
	surveyID = strings.TrimSpace(surveyID)
	if surveyID == "" {
		return entities.Survey{}, ErrInvalidSurveyID
	}
	return u.fetch(ctx, surveyID)
}

func (u *SurveyReviewUseCase) ApproveBlock(ctx context.Context, p auth.Principal, surveyID string, block entities.Block) (entities.Survey, error) {
	if !p.CanReview() {
		return entities.Survey{}, ErrNotAllowed
	}
	surveyID = strings.TrimSpace(surveyID)
	if surveyID == "" {
		return entities.Survey{}, ErrInvalidSurveyID
	}
	if !block.Valid() {
		return entities.Survey{}, ErrInvalidBlock
	}

	updated, err := u.repo.ReviewBlock(ctx, surveyID, block, entities.BlockStatusApproved, nil)
	if err != nil {
		zap.L().Warn("[survey][usecase] approve block failed",
			zap.String("survey_id", surveyID), zap.String("block", string(block)), zap.Error(err))
		return entities.Survey{}, classify(err)
	}
	if updated.ID == "" {
		return entities.Survey{}, ErrSurveyNotFound
	}
	u.record(ctx, p, surveyID, entities.ReviewActionApproveBlock, block, nil)
	return updated, nil
}

func (u *SurveyReviewUseCase) RejectBlock(ctx context.Context, p auth.Principal, surveyID string, block entities.Block, comments string) (entities.Survey, error) {
	if !p.CanReview() {
		return entities.Survey{}, ErrNotAllowed
	}
	surveyID = strings.TrimSpace(surveyID)
	if surveyID == "" {
		return entities.Survey{}, ErrInvalidSurveyID
	}
	if !block.Valid() {
		return entities.Survey{}, ErrInvalidBlock
	}
	if strings.TrimSpace(comments) == "" {
		return entities.Survey{}, ErrRejectionCommentRequired
	}

	updated, err := u.repo.ReviewBlock(ctx, surveyID, block, entities.BlockStatusRejected, &comments)
	if err != nil {
		zap.L().Warn("[survey][usecase] reject block failed",
			zap.String("survey_id", surveyID), zap.String("block", string(block)), zap.Error(err))
		return entities.Survey{}, classify(err)
	}
	if updated.ID == "" {
		return entities.Survey{}, ErrSurveyNotFound
	}
	u.record(ctx, p, surveyID, entities.ReviewActionRejectBlock, block, &comments)
	return updated, nil
}

// ApproveAll approves every pending block. With nothing pending it returns the
// current aggregate without issuing a command.
func (u *SurveyReviewUseCase) ApproveAll(ctx context.Context, p auth.Principal, surveyID string) (entities.Survey, error) {
	if !p.CanReview() {
		return entities.Survey{}, ErrNotAllowed
	}
	surveyID = strings.TrimSpace(surveyID)
	if surveyID == "" {
		return entities.Survey{}, ErrInvalidSurveyID
	}

	current, err := u.fetch(ctx, surveyID)
	if err != nil {
		return entities.Survey{}, err
	}
	if !current.AnyBlockPending() {
		zap.L().Info("[survey][usecase] approve all skipped, no pending blocks", zap.String("survey_id", surveyID))
		return current, nil
	}

	updated, err := u.repo.ApproveAllBlocks(ctx, surveyID)
	if err != nil {
		zap.L().Warn("[survey][usecase] approve all failed", zap.String("survey_id", surveyID), zap.Error(err))
		return entities.Survey{}, classify(err)
	}
	if updated.ID == "" {
		return entities.Survey{}, ErrSurveyNotFound
	}
	u.record(ctx, p, surveyID, entities.ReviewActionApproveAll, "", nil)
	return updated, nil
}

// Reopen returns all four blocks to pending. It is refused when no block has been
// reviewed yet.
func (u *SurveyReviewUseCase) Reopen(ctx context.Context, p auth.Principal, surveyID string, reason string) (entities.Survey, error) {
	if !p.CanReopen() {
		return entities.Survey{}, ErrNotAllowed
	}
	surveyID = strings.TrimSpace(surveyID)
	if surveyID == "" {
		return entities.Survey{}, ErrInvalidSurveyID
	}

	current, err := u.fetch(ctx, surveyID)
	if err != nil {
		return entities.Survey{}, err
	}
	if !current.HasReviewedBlocks() {
		return entities.Survey{}, ErrNothingToReopen
	}

	var reasonPtr *string
	if r := strings.TrimSpace(reason); r != "" {
		reasonPtr = &r
	}
	updated, err := u.repo.ReopenForEditing(ctx, surveyID, reasonPtr)
	if err != nil {
		zap.L().Warn("[survey][usecase] reopen failed", zap.String("survey_id", surveyID), zap.Error(err))
		return entities.Survey{}, classify(err)
	}
	if updated.ID == "" {
		return entities.Survey{}, ErrSurveyNotFound
	}
	u.record(ctx, p, surveyID, entities.ReviewActionReopen, "", reasonPtr)
	return updated, nil
}

func (u *SurveyReviewUseCase) History(ctx context.Context, p auth.Principal, surveyID string) ([]entities.ReviewEvent, error) {
	if !p.CanView() {
		return nil, ErrNotAllowed
	}
	surveyID = strings.TrimSpace(surveyID)
	if surveyID == "" {
		return nil, ErrInvalidSurveyID
	}
	if u.events == nil {
		return nil, ErrHistoryUnavailable
	}
	events, err := u.events.ListBySurveyID(ctx, surveyID)
	if err != nil {
		return nil, classify(err)
	}
	return events, nil
}

func (u *SurveyReviewUseCase) fetch(ctx context.Context, surveyID string) (entities.Survey, error) {
	s, err := u.repo.FetchSurvey(ctx, surveyID)
	if err != nil {
		zap.L().Warn("[survey][usecase] fetch failed", zap.String("survey_id", surveyID), zap.Error(err))
		return entities.Survey{}, classify(err)
	}
	if s.ID == "" {
		return entities.Survey{}, ErrSurveyNotFound
	}
	return s, nil
}

// record appends the audit event. The command already succeeded, so a storage
// failure here is only logged.
func (u *SurveyReviewUseCase) record(ctx context.Context, p auth.Principal, surveyID string, action entities.ReviewAction, block entities.Block, comments *string) {
	if u.events == nil {
		return
	}
	e := entities.ReviewEvent{
		ID:        uuid.NewString(),
		SurveyID:  surveyID,
		Action:    action,
		Block:     block,
		Comments:  comments,
		ActorID:   p.UserID,
		ActorRole: string(p.Role),
		Date:      time.Now().UTC(),
	}
	if _, err := u.events.Create(ctx, e); err != nil {
		zap.L().Error("[survey][usecase] review event not recorded",
			zap.String("survey_id", surveyID), zap.String("action", string(action)), zap.Error(err))
	}
}

// classify keeps categorised errors as they are and files everything else under
// pkg.ErrService.
func classify(err error) error {
	switch {
	case errors.Is(err, pkg.ErrValidation), errors.Is(err, pkg.ErrNotFound),
		errors.Is(err, pkg.ErrForbidden), errors.Is(err, pkg.ErrService):
		return err
	default:
		return fmt.Errorf("%w: %w", pkg.ErrService, err)
	}
}
