package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"levantamiento_service/internal/adapter/http/handlers/mocks"
	"levantamiento_service/internal/adapter/http/middleware"
	"levantamiento_service/internal/domain/auth"
	"levantamiento_service/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestNewRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("ping", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		r := NewRouter(mocks.NewMockISurveyReviewUseCase(ctrl), auth.Principal{})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Header().Get(middleware.HeaderRequestID) == "" {
			t.Fatal("expected a request id header")
		}
	})

	t.Run("survey route receives header principal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockISurveyReviewUseCase(ctrl)
		r := NewRouter(uc, auth.Principal{})

		want := auth.Principal{UserID: "u-9", Role: auth.RoleAdmin}
		uc.EXPECT().ApproveAll(gomock.Any(), want, "lev-1").
			Return(entities.Survey{ID: "lev-1", Reviews: entities.NewBlockReviews()}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/surveys/lev-1/approve-all", nil)
		req.Header.Set(middleware.HeaderUserID, "u-9")
		req.Header.Set(middleware.HeaderUserRole, "admin")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("fallback principal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockISurveyReviewUseCase(ctrl)
		fallback := auth.Principal{UserID: "local", Role: auth.RoleReviewer}
		r := NewRouter(uc, fallback)

		uc.EXPECT().GetSurvey(gomock.Any(), fallback, "lev-1").
			Return(entities.Survey{ID: "lev-1", Reviews: entities.NewBlockReviews()}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/surveys/lev-1", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
