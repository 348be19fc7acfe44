package response

import (
	"levantamiento_service/internal/domain/budget"

	"github.com/shopspring/decimal"
)

type BudgetAdjustmentResponse struct {
	Subtotal          decimal.Decimal `json:"subtotal"`
	AverageInitialIPP decimal.Decimal `json:"average_initial_ipp"`
	TargetMonthIPP    decimal.Decimal `json:"target_month_ipp"`
	Factor            decimal.Decimal `json:"factor"`
	AdjustedTotal     decimal.Decimal `json:"adjusted_total"`
}

func FromEntryAdjustment(adj budget.Adjustment, averageIPP, targetIPP decimal.Decimal) BudgetAdjustmentResponse {
	return BudgetAdjustmentResponse{
		Subtotal:          adj.Subtotal,
		AverageInitialIPP: averageIPP,
		TargetMonthIPP:    targetIPP,
		Factor:            adj.Factor,
		AdjustedTotal:     adj.AdjustedTotal,
	}
}
