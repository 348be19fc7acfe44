package usecase

import (
	"context"
	"errors"
	"testing"

	"levantamiento_service/internal/domain/auth"
	"levantamiento_service/internal/domain/entities"
	"levantamiento_service/internal/usecase/interfaces"
	mock_interfaces "levantamiento_service/internal/usecase/interfaces/mocks"
	"levantamiento_service/pkg"

	"go.uber.org/mock/gomock"
)

var (
	reviewer  = auth.Principal{UserID: "u-rev", Role: auth.RoleReviewer}
	requester = auth.Principal{UserID: "u-req", Role: auth.RoleRequester}
)

func newSurvey(id string, statuses ...entities.BlockStatus) entities.Survey {
	s := entities.Survey{ID: id, Reviews: entities.NewBlockReviews()}
	for i, st := range statuses {
		s.Reviews = s.Reviews.With(entities.AllBlocks[i], entities.BlockReview{Status: st})
	}
	return s
}

func TestSurveyReviewUseCase_GetSurvey(t *testing.T) {
	t.Run("forbidden principal", func(t *testing.T) {
		uc := NewSurveyReviewUseCase(nil, nil)
		_, err := uc.GetSurvey(context.Background(), auth.Principal{}, "lev-1")
		if !errors.Is(err, ErrNotAllowed) || !errors.Is(err, pkg.ErrForbidden) {
			t.Fatalf("expected ErrNotAllowed, got %v", err)
		}
	})

	t.Run("invalid id", func(t *testing.T) {
		uc := NewSurveyReviewUseCase(nil, nil)
		_, err := uc.GetSurvey(context.Background(), requester, "   ")
		if !errors.Is(err, ErrInvalidSurveyID) {
			t.Fatalf("expected ErrInvalidSurveyID, got %v", err)
		}
	})

	t.Run("repo error becomes service error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISurveyRepository(ctrl)
		uc := NewSurveyReviewUseCase(repo, nil)
		repo.EXPECT().FetchSurvey(gomock.Any(), "lev-1").Return(entities.Survey{}, errors.New("db"))

		_, err := uc.GetSurvey(context.Background(), requester, "lev-1")
		if !errors.Is(err, pkg.ErrService) {
			t.Fatalf("expected service error, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISurveyRepository(ctrl)
		uc := NewSurveyReviewUseCase(repo, nil)
		repo.EXPECT().FetchSurvey(gomock.Any(), "lev-1").Return(entities.Survey{}, nil)

		_, err := uc.GetSurvey(context.Background(), requester, "lev-1")
		if !errors.Is(err, ErrSurveyNotFound) || !errors.Is(err, pkg.ErrNotFound) {
			t.Fatalf("expected ErrSurveyNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISurveyRepository(ctrl)
		uc := NewSurveyReviewUseCase(repo, nil)
		repo.EXPECT().FetchSurvey(gomock.Any(), "lev-1").Return(newSurvey("lev-1"), nil)

		res, err := uc.GetSurvey(context.Background(), requester, " lev-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "lev-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestSurveyReviewUseCase_ApproveBlock(t *testing.T) {
	t.Run("requester cannot review", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISurveyRepository(ctrl)
		uc := NewSurveyReviewUseCase(repo, nil)

		_, err := uc.ApproveBlock(context.Background(), requester, "lev-1", entities.BlockBudget)
		if !errors.Is(err, ErrNotAllowed) {
			t.Fatalf("expected ErrNotAllowed, got %v", err)
		}
	})

	t.Run("invalid block", func(t *testing.T) {
		uc := NewSurveyReviewUseCase(nil, nil)
		_, err := uc.ApproveBlock(context.Background(), reviewer, "lev-1", entities.Block("roof"))
		if !errors.Is(err, ErrInvalidBlock) {
			t.Fatalf("expected ErrInvalidBlock, got %v", err)
		}
	})

	t.Run("transition refused", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISurveyRepository(ctrl)
		uc := NewSurveyReviewUseCase(repo, nil)
		repo.EXPECT().ReviewBlock(gomock.Any(), "lev-1", entities.BlockBudget, entities.BlockStatusApproved, nil).
			Return(entities.Survey{}, interfaces.ErrInvalidTransition)

		_, err := uc.ApproveBlock(context.Background(), reviewer, "lev-1", entities.BlockBudget)
		if !errors.Is(err, interfaces.ErrInvalidTransition) || !errors.Is(err, pkg.ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("success records event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISurveyRepository(ctrl)
		events := mock_interfaces.NewMockIReviewEventRepository(ctrl)
		uc := NewSurveyReviewUseCase(repo, events)

		approved := newSurvey("lev-1", entities.BlockStatusApproved)
		repo.EXPECT().ReviewBlock(gomock.Any(), "lev-1", entities.BlockBudget, entities.BlockStatusApproved, nil).Return(approved, nil)
		events.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.ReviewEvent{})).DoAndReturn(
			func(_ context.Context, e entities.ReviewEvent) (entities.ReviewEvent, error) {
				if e.ID == "" || e.SurveyID != "lev-1" || e.Action != entities.ReviewActionApproveBlock || e.Block != entities.BlockBudget {
					t.Fatalf("unexpected event: %+v", e)
				}
				if e.ActorID != "u-rev" || e.ActorRole != "reviewer" || e.Date.IsZero() {
					t.Fatalf("unexpected actor: %+v", e)
				}
				return e, nil
			},
		)

		res, err := uc.ApproveBlock(context.Background(), reviewer, " lev-1 ", entities.BlockBudget)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status(entities.BlockBudget) != entities.BlockStatusApproved {
			t.Fatalf("expected approved, got %s", res.Status(entities.BlockBudget))
		}
	})

	t.Run("event failure does not fail command", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISurveyRepository(ctrl)
		events := mock_interfaces.NewMockIReviewEventRepository(ctrl)
		uc := NewSurveyReviewUseCase(repo, events)

		repo.EXPECT().ReviewBlock(gomock.Any(), "lev-1", entities.BlockInvestment, entities.BlockStatusApproved, nil).
			Return(newSurvey("lev-1", entities.BlockStatusPending, entities.BlockStatusApproved), nil)
		events.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.ReviewEvent{}, errors.New("ddb"))

		if _, err := uc.ApproveBlock(context.Background(), reviewer, "lev-1", entities.BlockInvestment); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISurveyRepository(ctrl)
		uc := NewSurveyReviewUseCase(repo, nil)
		repo.EXPECT().ReviewBlock(gomock.Any(), "lev-1", entities.BlockBudget, entities.BlockStatusApproved, nil).Return(entities.Survey{}, nil)

		_, err := uc.ApproveBlock(context.Background(), reviewer, "lev-1", entities.BlockBudget)
		if !errors.Is(err, ErrSurveyNotFound) {
			t.Fatalf("expected ErrSurveyNotFound, got %v", err)
		}
	})
}

func TestSurveyReviewUseCase_RejectBlock(t *testing.T) {
	for _, comments := range []string{"", "   ", "\n\t"} {
		t.Run("empty comment never reaches repository "+comments, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockISurveyRepository(ctrl)
			uc := NewSurveyReviewUseCase(repo, nil)

			_, err := uc.RejectBlock(context.Background(), reviewer, "lev-1", entities.BlockMaterials, comments)
			if !errors.Is(err, ErrRejectionCommentRequired) {
				t.Fatalf("expected ErrRejectionCommentRequired, got %v", err)
			}
		})
	}

	t.Run("comment passed verbatim", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISurveyRepository(ctrl)
		uc := NewSurveyReviewUseCase(repo, nil)

		comment := "Faltan especificaciones"
		rejected := newSurvey("lev-1", entities.BlockStatusApproved, entities.BlockStatusApproved)
		rejected.Reviews = rejected.Reviews.With(entities.BlockMaterials, entities.BlockReview{Status: entities.BlockStatusRejected, Comments: &comment})

		repo.EXPECT().ReviewBlock(gomock.Any(), "lev-1", entities.BlockMaterials, entities.BlockStatusRejected, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, _ entities.Block, _ entities.BlockStatus, c *string) (entities.Survey, error) {
				if c == nil || *c != comment {
					t.Fatalf("unexpected comment %v", c)
				}
				return rejected, nil
			},
		)

		res, err := uc.RejectBlock(context.Background(), reviewer, "lev-1", entities.BlockMaterials, comment)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.AllBlocksApproved() {
			t.Fatalf("expected AllBlocksApproved false")
		}
		rb := res.RejectedBlocks()
		if len(rb) != 1 || rb[0].Title != entities.BlockMaterials.Title() || *rb[0].Comments != comment {
			t.Fatalf("unexpected rejected blocks: %+v", rb)
		}
	})
}

func TestSurveyReviewUseCase_ApproveAll(t *testing.T) {
	t.Run("no pending blocks is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISurveyRepository(ctrl)
		events := mock_interfaces.NewMockIReviewEventRepository(ctrl)
		uc := NewSurveyReviewUseCase(repo, events)

		current := newSurvey("lev-1", entities.BlockStatusApproved, entities.BlockStatusRejected, entities.BlockStatusApproved, entities.BlockStatusApproved)
		repo.EXPECT().FetchSurvey(gomock.Any(), "lev-1").Return(current, nil)

		res, err := uc.ApproveAll(context.Background(), reviewer, "lev-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Reviews != current.Reviews {
			t.Fatalf("statuses must not change: %+v", res.Reviews)
		}
	})

	t.Run("pending blocks are approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISurveyRepository(ctrl)
		uc := NewSurveyReviewUseCase(repo, nil)

		current := newSurvey("lev-1", entities.BlockStatusPending, entities.BlockStatusRejected)
		repo.EXPECT().FetchSurvey(gomock.Any(), "lev-1").Return(current, nil)
		repo.EXPECT().ApproveAllBlocks(gomock.Any(), "lev-1").Return(current.ApproveAll(), nil)

		res, err := uc.ApproveAll(context.Background(), reviewer, "lev-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status(entities.BlockBudget) != entities.BlockStatusApproved || res.Status(entities.BlockInvestment) != entities.BlockStatusRejected {
			t.Fatalf("unexpected statuses: %+v", res.Reviews)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISurveyRepository(ctrl)
		uc := NewSurveyReviewUseCase(repo, nil)

		repo.EXPECT().FetchSurvey(gomock.Any(), "lev-1").Return(newSurvey("lev-1"), nil)
		repo.EXPECT().ApproveAllBlocks(gomock.Any(), "lev-1").Return(entities.Survey{}, errors.New("timeout"))

		_, err := uc.ApproveAll(context.Background(), reviewer, "lev-1")
		if !errors.Is(err, pkg.ErrService) {
			t.Fatalf("expected service error, got %v", err)
		}
	})
}

func TestSurveyReviewUseCase_Reopen(t *testing.T) {
	t.Run("nothing to reopen", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISurveyRepository(ctrl)
		uc := NewSurveyReviewUseCase(repo, nil)
		repo.EXPECT().FetchSurvey(gomock.Any(), "lev-1").Return(newSurvey("lev-1"), nil)

		_, err := uc.Reopen(context.Background(), reviewer, "lev-1", "")
		if !errors.Is(err, ErrNothingToReopen) {
			t.Fatalf("expected ErrNothingToReopen, got %v", err)
		}
	})

	t.Run("reason is trimmed and optional", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISurveyRepository(ctrl)
		uc := NewSurveyReviewUseCase(repo, nil)

		current := newSurvey("lev-1", entities.BlockStatusApproved, entities.BlockStatusRejected)
		repo.EXPECT().FetchSurvey(gomock.Any(), "lev-1").Return(current, nil).Times(2)
		repo.EXPECT().ReopenForEditing(gomock.Any(), "lev-1", nil).Return(current.Reopen(), nil)
		repo.EXPECT().ReopenForEditing(gomock.Any(), "lev-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, reason *string) (entities.Survey, error) {
				if reason == nil || *reason != "corregir cantidades" {
					t.Fatalf("unexpected reason %v", reason)
				}
				return current.Reopen(), nil
			},
		)

		res, err := uc.Reopen(context.Background(), reviewer, "lev-1", "  ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, b := range entities.AllBlocks {
			if res.Status(b) != entities.BlockStatusPending {
				t.Fatalf("expected %s pending", b)
			}
		}
		if _, err := uc.Reopen(context.Background(), reviewer, "lev-1", " corregir cantidades "); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("requester cannot reopen", func(t *testing.T) {
		uc := NewSurveyReviewUseCase(nil, nil)
		_, err := uc.Reopen(context.Background(), requester, "lev-1", "")
		if !errors.Is(err, ErrNotAllowed) {
			t.Fatalf("expected ErrNotAllowed, got %v", err)
		}
	})
}

func TestSurveyReviewUseCase_History(t *testing.T) {
	t.Run("not configured", func(t *testing.T) {
		uc := NewSurveyReviewUseCase(nil, nil)
		_, err := uc.History(context.Background(), requester, "lev-1")
		if !errors.Is(err, ErrHistoryUnavailable) {
			t.Fatalf("expected ErrHistoryUnavailable, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		events := mock_interfaces.NewMockIReviewEventRepository(ctrl)
		uc := NewSurveyReviewUseCase(nil, events)
		events.EXPECT().ListBySurveyID(gomock.Any(), "lev-1").Return([]entities.ReviewEvent{{ID: "ev-1"}}, nil)

		res, err := uc.History(context.Background(), requester, "lev-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 1 || res[0].ID != "ev-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}
