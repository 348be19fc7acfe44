// Package budget computes survey budget totals and their IPP (producer price index)
// adjustments.
//
// Two adjustment formulas coexist: the review screen scales by a fixed base index of
// 100, while budget entry scales by the average initial IPP of the selected catalog
// items. They are kept as separate functions until product decides whether they are
// two stages of the same adjustment.
package budget

import (
	"errors"

	"levantamiento_service/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// BaseIPP is the reference index used by the review adjustment.
var BaseIPP = decimal.NewFromInt(100)

var (
	ErrNoInitialIPP     = errors.New("no budget item carries an initial ipp")
	ErrZeroAverageIPP   = errors.New("average initial ipp is zero")
	ErrInvalidTargetIPP = errors.New("invalid target month ipp")
)

// Adjustment is the result of applying an IPP factor to a subtotal.
type Adjustment struct {
	Subtotal      decimal.Decimal
	Factor        decimal.Decimal
	AdjustedTotal decimal.Decimal
	Applied       bool
}

// Subtotal is the sum of unit value × quantity over all items.
func Subtotal(items []entities.BudgetItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.LineTotal())
	}
	return total
}

// ReviewAdjustment scales subtotal by previousMonthIPP / BaseIPP. Without an index the
// subtotal is returned unchanged.
func ReviewAdjustment(subtotal decimal.Decimal, previousMonthIPP decimal.NullDecimal) Adjustment {
	if !previousMonthIPP.Valid {
		return Adjustment{Subtotal: subtotal, Factor: decimal.NewFromInt(1), AdjustedTotal: subtotal}
	}
	factor := previousMonthIPP.Decimal.Div(BaseIPP)
	return Adjustment{
		Subtotal:      subtotal,
		Factor:        factor,
		AdjustedTotal: subtotal.Mul(factor),
		Applied:       true,
	}
}

// ReviewAdjustmentFor applies ReviewAdjustment to a survey's budget lines.
func ReviewAdjustmentFor(s entities.Survey) Adjustment {
	return ReviewAdjustment(Subtotal(s.BudgetItems), s.PreviousMonthIPP)
}

// AverageInitialIPP averages the initial IPP of the items that carry one.
func AverageInitialIPP(items []entities.BudgetItem) (decimal.Decimal, error) {
	sum := decimal.Zero
	n := 0
	for _, it := range items {
		if !it.UCAP.InitialIPP.Valid {
			continue
		}
		sum = sum.Add(it.UCAP.InitialIPP.Decimal)
		n++
	}
	if n == 0 {
		return decimal.Zero, ErrNoInitialIPP
	}
	return sum.Div(decimal.NewFromInt(int64(n))), nil
}

// EntryAdjustment is the budget-entry formula:
// (targetMonthIPP ÷ average initial IPP of the items) × subtotal.
func EntryAdjustment(items []entities.BudgetItem, targetMonthIPP decimal.Decimal) (Adjustment, error) {
	if !targetMonthIPP.IsPositive() {
		return Adjustment{}, ErrInvalidTargetIPP
	}
	avg, err := AverageInitialIPP(items)
	if err != nil {
		return Adjustment{}, err
	}
	if avg.IsZero() {
		return Adjustment{}, ErrZeroAverageIPP
	}
	subtotal := Subtotal(items)
	factor := targetMonthIPP.Div(avg)
	return Adjustment{
		Subtotal:      subtotal,
		Factor:        factor,
		AdjustedTotal: subtotal.Mul(factor),
		Applied:       true,
	}, nil
}
