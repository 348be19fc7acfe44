package request

import (
	"errors"
	"strings"

	"levantamiento_service/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var (
	ErrNoBudgetItems        = errors.New("at least one budget item is required")
	ErrInvalidBudgetItem    = errors.New("budget item unit value and quantity must not be negative")
	ErrMissingTargetIPP     = errors.New("target_month_ipp is required")
	ErrInvalidInitialIPPSet = errors.New("initial_ipp must be positive when present")
)

// RejectBlockRequest is the body of PATCH /surveys/{id}/blocks/{block}/reject.
// Comments are required; emptiness is checked by the use case after trimming.
type RejectBlockRequest struct {
	Comments string `json:"comments"`
}

// ReopenSurveyRequest is the optional body of POST /surveys/{id}/reopen.
type ReopenSurveyRequest struct {
	Reason string `json:"reason"`
}

func (r ReopenSurveyRequest) ResolveReason() string {
	return strings.TrimSpace(r.Reason)
}

type BudgetAdjustmentItemRequest struct {
	UCAPCode   string           `json:"ucap_code"`
	InitialIPP *decimal.Decimal `json:"initial_ipp"`
	UnitValue  decimal.Decimal  `json:"unit_value"`
	Quantity   decimal.Decimal  `json:"quantity"`
}

// BudgetAdjustmentRequest feeds the budget-entry calculator.
type BudgetAdjustmentRequest struct {
	Items          []BudgetAdjustmentItemRequest `json:"items"`
	TargetMonthIPP *decimal.Decimal              `json:"target_month_ipp"`
}

func (r BudgetAdjustmentRequest) ResolveItems() ([]entities.BudgetItem, error) {
	if len(r.Items) == 0 {
		return nil, ErrNoBudgetItems
	}
	items := make([]entities.BudgetItem, 0, len(r.Items))
	for _, it := range r.Items {
		if it.UnitValue.IsNegative() || it.Quantity.IsNegative() {
			return nil, ErrInvalidBudgetItem
		}
		item := entities.BudgetItem{
			UCAP:      entities.UCAP{Code: strings.TrimSpace(it.UCAPCode)},
			UnitValue: it.UnitValue,
			Quantity:  it.Quantity,
		}
		if it.InitialIPP != nil {
			if !it.InitialIPP.IsPositive() {
				return nil, ErrInvalidInitialIPPSet
			}
			item.UCAP.InitialIPP = decimal.NewNullDecimal(*it.InitialIPP)
		}
		items = append(items, item)
	}
	return items, nil
}

func (r BudgetAdjustmentRequest) ResolveTargetIPP() (decimal.Decimal, error) {
	if r.TargetMonthIPP == nil {
		return decimal.Zero, ErrMissingTargetIPP
	}
	return *r.TargetMonthIPP, nil
}
