package entities

import "github.com/shopspring/decimal"

// UCAP is a unit-cost catalog entry referenced by budget lines.
type UCAP struct {
	Code        string              `json:"code"`
	Description string              `json:"description"`
	InitialIPP  decimal.NullDecimal `json:"initial_ipp"`
}

type BudgetItem struct {
	UCAP      UCAP            `json:"ucap"`
	UnitValue decimal.Decimal `json:"unit_value"`
	Quantity  decimal.Decimal `json:"quantity"`
}

// LineTotal is derived, never stored.
func (i BudgetItem) LineTotal() decimal.Decimal {
	return i.UnitValue.Mul(i.Quantity)
}

type InvestmentItem struct {
	OrderNumber                int    `json:"order_number"`
	Point                      string `json:"point"`
	Description                string `json:"description"`
	LuminaireQuantity          int    `json:"luminaire_quantity"`
	RelocatedLuminaireQuantity int    `json:"relocated_luminaire_quantity"`
	PoleQuantity               int    `json:"pole_quantity"`
	BraidedNetwork             string `json:"braided_network"`
	Latitude                   string `json:"latitude"`
	Longitude                  string `json:"longitude"`
}

type Material struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type MaterialItem struct {
	Material      Material        `json:"material"`
	UnitOfMeasure string          `json:"unit_of_measure"`
	Quantity      decimal.Decimal `json:"quantity"`
	Observations  string          `json:"observations"`
}

type TravelExpenseItem struct {
	ExpenseType  string          `json:"expense_type"`
	Quantity     decimal.Decimal `json:"quantity"`
	Observations string          `json:"observations"`
}

// Label returns the display label of the expense type.
func (i TravelExpenseItem) Label() string {
	return TravelExpenseLabel(i.ExpenseType)
}
