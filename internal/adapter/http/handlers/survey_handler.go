package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	request "levantamiento_service/internal/adapter/http/dto/request"
	response "levantamiento_service/internal/adapter/http/dto/response"
	"levantamiento_service/internal/adapter/http/middleware"
	"levantamiento_service/internal/domain/entities"
	"levantamiento_service/internal/infrastructure/export"
	"levantamiento_service/internal/usecase"
	"levantamiento_service/internal/usecase/interfaces"
	"levantamiento_service/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var (
	errInvalidBlock         = pkg.NewDomainErrorSimple("INVALID_BLOCK", "Unknown survey block", http.StatusBadRequest)
	errInvalidRejectPayload = pkg.NewDomainErrorSimple("INVALID_REJECT_INPUT", "Invalid rejection payload", http.StatusBadRequest)
	errInvalidReopenPayload = pkg.NewDomainErrorSimple("INVALID_REOPEN_INPUT", "Invalid reopen payload", http.StatusBadRequest)
)

// SurveyHandler serves the block-by-block review of work surveys.
type SurveyHandler struct {
	usecase usecase.ISurveyReviewUseCase
}

func NewSurveyHandler(uc usecase.ISurveyReviewUseCase) *SurveyHandler {
	return &SurveyHandler{usecase: uc}
}

// GetSurvey godoc
// @Summary      Get a survey
// @Description  Returns the survey with its block reviews, derived predicates and budget summary
// @Tags         surveys
// @Produce      json
// @Param        id   path      string  true  "Survey ID"
// @Success      200  {object}  response.SurveyResponse
// @Failure      403  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /surveys/{id} [get]
func (h *SurveyHandler) GetSurvey(c *gin.Context) {
	s, err := h.usecase.GetSurvey(c.Request.Context(), middleware.PrincipalFrom(c), c.Param("id"))
	h.respond(c, s, err)
}

// ApproveBlock godoc
// @Summary      Approve a block
// @Tags         surveys
// @Produce      json
// @Param        id     path      string  true  "Survey ID"
// @Param        block  path      string  true  "Block (budget, investment, materials, travel_expenses)"
// @Success      200    {object}  response.SurveyResponse
// @Failure      400    {object}  pkg.HTTPError
// @Failure      409    {object}  pkg.HTTPError
// @Router       /surveys/{id}/blocks/{block}/approve [patch]
func (h *SurveyHandler) ApproveBlock(c *gin.Context) {
	block, ok := entities.ParseBlock(c.Param("block"))
	if !ok {
		c.JSON(errInvalidBlock.HTTPStatus, errInvalidBlock.ToHTTPError())
		return
	}
	s, err := h.usecase.ApproveBlock(c.Request.Context(), middleware.PrincipalFrom(c), c.Param("id"), block)
	h.respond(c, s, err)
}

// RejectBlock godoc
// @Summary      Reject a block
// @Description  Rejects a pending block; comments are required
// @Tags         surveys
// @Accept       json
// @Produce      json
// @Param        id       path      string                      true  "Survey ID"
// @Param        block    path      string                      true  "Block"
// @Param        request  body      request.RejectBlockRequest  true  "Rejection comments"
// @Success      200      {object}  response.SurveyResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Router       /surveys/{id}/blocks/{block}/reject [patch]
func (h *SurveyHandler) RejectBlock(c *gin.Context) {
	block, ok := entities.ParseBlock(c.Param("block"))
	if !ok {
		c.JSON(errInvalidBlock.HTTPStatus, errInvalidBlock.ToHTTPError())
		return
	}
	var payload request.RejectBlockRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRejectPayload.HTTPStatus, errInvalidRejectPayload.ToHTTPError())
		return
	}
	s, err := h.usecase.RejectBlock(c.Request.Context(), middleware.PrincipalFrom(c), c.Param("id"), block, payload.Comments)
	h.respond(c, s, err)
}

// ApproveAll godoc
// @Summary      Approve every pending block
// @Tags         surveys
// @Produce      json
// @Param        id   path      string  true  "Survey ID"
// @Success      200  {object}  response.SurveyResponse
// @Router       /surveys/{id}/approve-all [post]
func (h *SurveyHandler) ApproveAll(c *gin.Context) {
	s, err := h.usecase.ApproveAll(c.Request.Context(), middleware.PrincipalFrom(c), c.Param("id"))
	h.respond(c, s, err)
}

// Reopen godoc
// @Summary      Reopen a survey for editing
// @Description  Returns every block to pending; comments are kept
// @Tags         surveys
// @Accept       json
// @Produce      json
// @Param        id       path      string                       true   "Survey ID"
// @Param        request  body      request.ReopenSurveyRequest  false  "Optional reason"
// @Success      200      {object}  response.SurveyResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /surveys/{id}/reopen [post]
func (h *SurveyHandler) Reopen(c *gin.Context) {
	var payload request.ReopenSurveyRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidReopenPayload.HTTPStatus, errInvalidReopenPayload.ToHTTPError())
			return
		}
	}
	s, err := h.usecase.Reopen(c.Request.Context(), middleware.PrincipalFrom(c), c.Param("id"), payload.ResolveReason())
	h.respond(c, s, err)
}

// History godoc
// @Summary      Review history of a survey
// @Tags         surveys
// @Produce      json
// @Param        id   path      string  true  "Survey ID"
// @Success      200  {array}   response.ReviewEventResponse
// @Router       /surveys/{id}/history [get]
func (h *SurveyHandler) History(c *gin.Context) {
	events, err := h.usecase.History(c.Request.Context(), middleware.PrincipalFrom(c), c.Param("id"))
	if err != nil {
		appErr := mapSurveyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromReviewEvents(events))
}

// Export godoc
// @Summary      Export the survey review as a spreadsheet
// @Tags         surveys
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        id   path  string  true  "Survey ID"
// @Success      200  {file}  binary
// @Router       /surveys/{id}/export [get]
func (h *SurveyHandler) Export(c *gin.Context) {
	s, err := h.usecase.GetSurvey(c.Request.Context(), middleware.PrincipalFrom(c), c.Param("id"))
	if err != nil {
		appErr := mapSurveyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	raw, err := export.GenerateSurveyWorkbook(s)
	if err != nil {
		zap.L().Error("[survey][handler] export failed", zap.String("survey_id", s.ID), zap.Error(err))
		appErr := mapSurveyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="levantamiento-%s.xlsx"`, s.ID))
	c.Data(http.StatusOK, xlsxContentType, raw)
}

func (h *SurveyHandler) respond(c *gin.Context, s entities.Survey, err error) {
	if err != nil {
		appErr := mapSurveyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSurvey(s))
}

func mapSurveyError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, interfaces.ErrInvalidTransition):
		return pkg.NewDomainError("INVALID_TRANSITION", "Block is no longer pending", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrCommandInFlight):
		return pkg.NewDomainError("COMMAND_IN_FLIGHT", "A request for this block is already in flight", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrRejectionCommentRequired):
		return pkg.NewDomainErrorSimple("REJECTION_COMMENT_REQUIRED", "Rejection comments are required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNothingToReopen):
		return pkg.NewDomainErrorSimple("NOTHING_TO_REOPEN", "No reviewed blocks to reopen", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSurveyNotFound), errors.Is(err, pkg.ErrNotFound):
		return pkg.NewDomainErrorSimple("SURVEY_NOT_FOUND", "Survey not found", http.StatusNotFound)
	case errors.Is(err, pkg.ErrForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Operation not allowed for this user", http.StatusForbidden)
	case errors.Is(err, pkg.ErrValidation):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, context.DeadlineExceeded):
		return pkg.NewDomainError("TIMEOUT", "The request timed out", err, http.StatusGatewayTimeout)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
