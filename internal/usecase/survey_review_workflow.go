package usecase

import (
	"context"
	"fmt"
	"sync"

	"levantamiento_service/internal/domain/auth"
	"levantamiento_service/internal/domain/budget"
	"levantamiento_service/internal/domain/entities"
	"levantamiento_service/pkg"
)

var (
	ErrCommandInFlight   = fmt.Errorf("%w: a request for this block is already in flight", pkg.ErrValidation)
	ErrWorkflowNotLoaded = fmt.Errorf("%w: survey not loaded", pkg.ErrValidation)
)

// surveyWide is the in-flight key of commands that touch every block.
const surveyWide entities.Block = "*"

// SurveyReviewWorkflow drives the review of one survey on behalf of one principal.
//
// It keeps the last aggregate confirmed by the repository. Commands never flip a
// status locally: on success the returned aggregate replaces the held one, on
// failure the held one stays. At most one request per block is outstanding; the
// survey-wide commands (approve all, reopen) conflict with any outstanding request.
type SurveyReviewWorkflow struct {
	uc        ISurveyReviewUseCase
	principal auth.Principal
	surveyID  string

	mu       sync.Mutex
	current  entities.Survey
	loaded   bool
	inFlight map[entities.Block]bool
}

func NewSurveyReviewWorkflow(uc ISurveyReviewUseCase, p auth.Principal, surveyID string) *SurveyReviewWorkflow {
	return &SurveyReviewWorkflow{
		uc:        uc,
		principal: p,
		surveyID:  surveyID,
		inFlight:  make(map[entities.Block]bool),
	}
}

// Load fetches the aggregate and replaces the held one.
func (w *SurveyReviewWorkflow) Load(ctx context.Context) (entities.Survey, error) {
	s, err := w.uc.GetSurvey(ctx, w.principal, w.surveyID)
	if err != nil {
		return w.Survey(), err
	}
	w.mu.Lock()
	w.current = s
	w.loaded = true
	w.mu.Unlock()
	return s, nil
}

// Survey returns the last confirmed aggregate.
func (w *SurveyReviewWorkflow) Survey() entities.Survey {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.current
}

// Budget returns the review adjustment computed from the held aggregate.
func (w *SurveyReviewWorkflow) Budget() budget.Adjustment {
	return budget.ReviewAdjustmentFor(w.Survey())
}

// InFlight reports whether a request for block is outstanding.
func (w *SurveyReviewWorkflow) InFlight(block entities.Block) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.inFlight[block] || w.inFlight[surveyWide]
}

// Busy reports whether any request is outstanding.
func (w *SurveyReviewWorkflow) Busy() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.inFlight) > 0
}

// CanReview reports whether approve and reject are offered for block.
func (w *SurveyReviewWorkflow) CanReview(block entities.Block) bool {
	s := w.Survey()
	return w.principal.CanReview() && s.Status(block) == entities.BlockStatusPending && !w.InFlight(block)
}

// CanApproveAll mirrors when the "approve all" action is offered.
func (w *SurveyReviewWorkflow) CanApproveAll() bool {
	s := w.Survey()
	return w.principal.CanReview() && s.AnyBlockPending() && !w.Busy()
}

// CanReopen mirrors when the "reopen for editing" action is offered.
func (w *SurveyReviewWorkflow) CanReopen() bool {
	s := w.Survey()
	return w.principal.CanReopen() && s.HasReviewedBlocks() && !w.Busy()
}

func (w *SurveyReviewWorkflow) ApproveBlock(ctx context.Context, block entities.Block) (entities.Survey, error) {
	return w.run(ctx, block, func(ctx context.Context) (entities.Survey, error) {
		return w.uc.ApproveBlock(ctx, w.principal, w.surveyID, block)
	})
}

func (w *SurveyReviewWorkflow) RejectBlock(ctx context.Context, block entities.Block, comments string) (entities.Survey, error) {
	return w.run(ctx, block, func(ctx context.Context) (entities.Survey, error) {
		return w.uc.RejectBlock(ctx, w.principal, w.surveyID, block, comments)
	})
}

func (w *SurveyReviewWorkflow) ApproveAll(ctx context.Context) (entities.Survey, error) {
	return w.run(ctx, surveyWide, func(ctx context.Context) (entities.Survey, error) {
		return w.uc.ApproveAll(ctx, w.principal, w.surveyID)
	})
}

func (w *SurveyReviewWorkflow) Reopen(ctx context.Context, reason string) (entities.Survey, error) {
	return w.run(ctx, surveyWide, func(ctx context.Context) (entities.Survey, error) {
		return w.uc.Reopen(ctx, w.principal, w.surveyID, reason)
	})
}

func (w *SurveyReviewWorkflow) run(ctx context.Context, key entities.Block, cmd func(context.Context) (entities.Survey, error)) (entities.Survey, error) {
	w.mu.Lock()
	if !w.loaded {
		w.mu.Unlock()
		return entities.Survey{}, ErrWorkflowNotLoaded
	}
	if w.inFlight[key] || w.inFlight[surveyWide] || (key == surveyWide && len(w.inFlight) > 0) {
		current := w.current
		w.mu.Unlock()
		return current, ErrCommandInFlight
	}
	w.inFlight[key] = true
	w.mu.Unlock()

	updated, err := cmd(ctx)

	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.inFlight, key)
	if err != nil {
		return w.current, err
	}
	w.current = updated
	return updated, nil
}
