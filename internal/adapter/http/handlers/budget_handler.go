package handlers

import (
	"errors"
	"net/http"

	request "levantamiento_service/internal/adapter/http/dto/request"
	response "levantamiento_service/internal/adapter/http/dto/response"
	"levantamiento_service/internal/domain/budget"
	"levantamiento_service/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidBudgetPayload = pkg.NewDomainErrorSimple("INVALID_BUDGET_INPUT", "Invalid budget payload", http.StatusBadRequest)

// BudgetHandler exposes the budget-entry IPP calculator.
type BudgetHandler struct{}

func NewBudgetHandler() *BudgetHandler {
	return &BudgetHandler{}
}

// Adjust godoc
// @Summary      Budget-entry IPP adjustment
// @Description  (target month IPP ÷ average initial IPP of the items) × subtotal
// @Tags         budget
// @Accept       json
// @Produce      json
// @Param        request  body      request.BudgetAdjustmentRequest  true  "Budget items and target IPP"
// @Success      200      {object}  response.BudgetAdjustmentResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /budget/adjustment [post]
func (h *BudgetHandler) Adjust(c *gin.Context) {
	var payload request.BudgetAdjustmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBudgetPayload.HTTPStatus, errInvalidBudgetPayload.ToHTTPError())
		return
	}

	items, err := payload.ResolveItems()
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	target, err := payload.ResolveTargetIPP()
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	adj, err := budget.EntryAdjustment(items, target)
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	avg, _ := budget.AverageInitialIPP(items)

	c.JSON(http.StatusOK, response.FromEntryAdjustment(adj, avg, target))
}

func mapBudgetError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, request.ErrNoBudgetItems), errors.Is(err, request.ErrInvalidBudgetItem),
		errors.Is(err, request.ErrMissingTargetIPP), errors.Is(err, request.ErrInvalidInitialIPPSet):
		return pkg.NewDomainErrorSimple("INVALID_BUDGET_INPUT", err.Error(), http.StatusBadRequest)
	case errors.Is(err, budget.ErrNoInitialIPP), errors.Is(err, budget.ErrZeroAverageIPP), errors.Is(err, budget.ErrInvalidTargetIPP):
		return pkg.NewDomainErrorSimple("INVALID_IPP", err.Error(), http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
