package usecase

import (
	"context"
	"errors"
	"testing"

	"levantamiento_service/internal/domain/entities"
	mock_interfaces "levantamiento_service/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func loadedWorkflow(t *testing.T, repo *mock_interfaces.MockISurveyRepository, s entities.Survey) *SurveyReviewWorkflow {
	t.Helper()
	repo.EXPECT().FetchSurvey(gomock.Any(), s.ID).Return(s, nil)
	w := NewSurveyReviewWorkflow(NewSurveyReviewUseCase(repo, nil), reviewer, s.ID)
	_, err := w.Load(context.Background())
	require.NoError(t, err)
	return w
}

func TestSurveyReviewWorkflow_NotLoaded(t *testing.T) {
	w := NewSurveyReviewWorkflow(NewSurveyReviewUseCase(nil, nil), reviewer, "lev-1")
	_, err := w.ApproveBlock(context.Background(), entities.BlockBudget)
	assert.ErrorIs(t, err, ErrWorkflowNotLoaded)
}

func TestSurveyReviewWorkflow_LoadFailureKeepsHeldSurvey(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockISurveyRepository(ctrl)
	w := loadedWorkflow(t, repo, newSurvey("lev-1"))

	repo.EXPECT().FetchSurvey(gomock.Any(), "lev-1").Return(entities.Survey{}, errors.New("offline"))
	held, err := w.Load(context.Background())
	require.Error(t, err)
	assert.Equal(t, "lev-1", held.ID)
	assert.Equal(t, "lev-1", w.Survey().ID)
}

func TestSurveyReviewWorkflow_SuccessReplacesAggregate(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockISurveyRepository(ctrl)
	w := loadedWorkflow(t, repo, newSurvey("lev-1"))

	// the server also reports a change made by someone else
	fromServer := newSurvey("lev-1", entities.BlockStatusApproved, entities.BlockStatusApproved)
	fromServer.Description = "actualizado"
	repo.EXPECT().ReviewBlock(gomock.Any(), "lev-1", entities.BlockBudget, entities.BlockStatusApproved, nil).Return(fromServer, nil)

	res, err := w.ApproveBlock(context.Background(), entities.BlockBudget)
	require.NoError(t, err)
	assert.Equal(t, fromServer, res)
	assert.Equal(t, fromServer, w.Survey())
	assert.Equal(t, entities.BlockStatusApproved, w.Survey().Status(entities.BlockInvestment))
	assert.False(t, w.Busy())
}

func TestSurveyReviewWorkflow_FailureKeepsLastKnownGood(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockISurveyRepository(ctrl)
	start := newSurvey("lev-1")
	w := loadedWorkflow(t, repo, start)

	repo.EXPECT().ReviewBlock(gomock.Any(), "lev-1", entities.BlockMaterials, entities.BlockStatusRejected, gomock.Any()).
		Return(entities.Survey{}, errors.New("502"))

	res, err := w.RejectBlock(context.Background(), entities.BlockMaterials, "Faltan especificaciones")
	require.Error(t, err)
	assert.Equal(t, start, res)
	assert.Equal(t, entities.BlockStatusPending, w.Survey().Status(entities.BlockMaterials))
	assert.False(t, w.InFlight(entities.BlockMaterials))
}

func TestSurveyReviewWorkflow_EmptyRejectionNeverSent(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockISurveyRepository(ctrl)
	w := loadedWorkflow(t, repo, newSurvey("lev-1"))

	_, err := w.RejectBlock(context.Background(), entities.BlockTravelExpenses, "  ")
	assert.ErrorIs(t, err, ErrRejectionCommentRequired)
}

func TestSurveyReviewWorkflow_InFlight(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockISurveyRepository(ctrl)
	w := loadedWorkflow(t, repo, newSurvey("lev-1"))

	started := make(chan struct{})
	release := make(chan struct{})
	repo.EXPECT().ReviewBlock(gomock.Any(), "lev-1", entities.BlockBudget, entities.BlockStatusApproved, nil).DoAndReturn(
		func(context.Context, string, entities.Block, entities.BlockStatus, *string) (entities.Survey, error) {
			close(started)
			<-release
			return newSurvey("lev-1", entities.BlockStatusApproved), nil
		},
	)
	repo.EXPECT().ReviewBlock(gomock.Any(), "lev-1", entities.BlockInvestment, entities.BlockStatusApproved, nil).
		Return(newSurvey("lev-1", entities.BlockStatusPending, entities.BlockStatusApproved), nil)

	done := make(chan error, 1)
	go func() {
		_, err := w.ApproveBlock(context.Background(), entities.BlockBudget)
		done <- err
	}()
	<-started

	assert.True(t, w.InFlight(entities.BlockBudget))
	assert.False(t, w.InFlight(entities.BlockInvestment))
	assert.True(t, w.Busy())
	assert.False(t, w.CanApproveAll())
	assert.False(t, w.CanReopen())

	_, err := w.ApproveBlock(context.Background(), entities.BlockBudget)
	assert.ErrorIs(t, err, ErrCommandInFlight)
	_, err = w.RejectBlock(context.Background(), entities.BlockBudget, "x")
	assert.ErrorIs(t, err, ErrCommandInFlight)
	_, err = w.ApproveAll(context.Background())
	assert.ErrorIs(t, err, ErrCommandInFlight)
	_, err = w.Reopen(context.Background(), "")
	assert.ErrorIs(t, err, ErrCommandInFlight)

	// other blocks stay independent
	_, err = w.ApproveBlock(context.Background(), entities.BlockInvestment)
	require.NoError(t, err)

	close(release)
	require.NoError(t, <-done)
	assert.False(t, w.Busy())
	assert.Equal(t, entities.BlockStatusApproved, w.Survey().Status(entities.BlockBudget))
}

func TestSurveyReviewWorkflow_ActionsOffered(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockISurveyRepository(ctrl)
	s := newSurvey("lev-1", entities.BlockStatusApproved, entities.BlockStatusApproved, entities.BlockStatusApproved, entities.BlockStatusApproved)
	s.PreviousMonthIPP = decimal.NewNullDecimal(decimal.NewFromInt(110))
	s.BudgetItems = []entities.BudgetItem{{UnitValue: decimal.NewFromInt(1000), Quantity: decimal.NewFromInt(1000)}}
	w := loadedWorkflow(t, repo, s)

	assert.False(t, w.CanApproveAll())
	assert.True(t, w.CanReopen())
	assert.True(t, w.Budget().AdjustedTotal.Equal(decimal.NewFromInt(1100000)))
}

func TestSurveyReviewWorkflow_CanReview(t *testing.T) {
	s := newSurvey("lev-1", entities.BlockStatusApproved, entities.BlockStatusPending, entities.BlockStatusPending, entities.BlockStatusPending)

	t.Run("reviewer on pending block", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		w := loadedWorkflow(t, mock_interfaces.NewMockISurveyRepository(ctrl), s)
		assert.True(t, w.CanReview(entities.BlockInvestment))
		assert.False(t, w.CanReview(entities.BlockBudget))
	})

	t.Run("requester is never offered a decision", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockISurveyRepository(ctrl)
		repo.EXPECT().FetchSurvey(gomock.Any(), "lev-1").Return(s, nil)
		w := NewSurveyReviewWorkflow(NewSurveyReviewUseCase(repo, nil), requester, "lev-1")
		_, err := w.Load(context.Background())
		require.NoError(t, err)

		for _, b := range entities.AllBlocks {
			assert.False(t, w.CanReview(b), "block %s", b)
		}
		assert.False(t, w.CanApproveAll())
	})
}
