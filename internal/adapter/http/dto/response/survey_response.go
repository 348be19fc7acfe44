package response

import (
	"time"

	"levantamiento_service/internal/domain/budget"
	"levantamiento_service/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type BlockReviewResponse struct {
	Block    string  `json:"block"`
	Title    string  `json:"title"`
	Status   string  `json:"status"`
	Comments *string `json:"comments"`
}

type RejectedBlockResponse struct {
	Block    string  `json:"block"`
	Title    string  `json:"title"`
	Comments *string `json:"comments"`
}

type BudgetItemResponse struct {
	UCAPCode        string           `json:"ucap_code"`
	UCAPDescription string           `json:"ucap_description"`
	InitialIPP      *decimal.Decimal `json:"initial_ipp"`
	UnitValue       decimal.Decimal  `json:"unit_value"`
	Quantity        decimal.Decimal  `json:"quantity"`
	LineTotal       decimal.Decimal  `json:"line_total"`
}

type InvestmentItemResponse struct {
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

type MaterialItemResponse struct {
	MaterialCode        string          `json:"material_code"`
	MaterialDescription string          `json:"material_description"`
	UnitOfMeasure       string          `json:"unit_of_measure"`
	Quantity            decimal.Decimal `json:"quantity"`
	Observations        string          `json:"observations"`
}

type TravelExpenseItemResponse struct {
	ExpenseType  string          `json:"expense_type"`
	Label        string          `json:"label"`
	Quantity     decimal.Decimal `json:"quantity"`
	Observations string          `json:"observations"`
}

// BudgetSummaryResponse is the review adjustment shown next to the budget block.
type BudgetSummaryResponse struct {
	Subtotal      decimal.Decimal `json:"subtotal"`
	Factor        decimal.Decimal `json:"factor"`
	AdjustedTotal decimal.Decimal `json:"adjusted_total"`
	Applied       bool            `json:"applied"`
}

// SurveyResponse carries the aggregate plus everything derived from it, so clients
// never recompute predicates or totals.
type SurveyResponse struct {
	ID                 string                      `json:"id"`
	WorkID             string                      `json:"work_id"`
	Number             string                      `json:"number"`
	SurveyDate         time.Time                   `json:"survey_date"`
	RequestDate        time.Time                   `json:"request_date"`
	Description        string                      `json:"description"`
	Blocks             []BlockReviewResponse       `json:"blocks"`
	AllBlocksApproved  bool                        `json:"all_blocks_approved"`
	AnyBlockPending    bool                        `json:"any_block_pending"`
	HasReviewedBlocks  bool                        `json:"has_reviewed_blocks"`
	RejectedBlocks     []RejectedBlockResponse     `json:"rejected_blocks"`
	PreviousMonthIPP   *decimal.Decimal            `json:"previous_month_ipp"`
	Budget             BudgetSummaryResponse       `json:"budget"`
	BudgetItems        []BudgetItemResponse        `json:"budget_items"`
	InvestmentItems    []InvestmentItemResponse    `json:"investment_items"`
	MaterialItems      []MaterialItemResponse      `json:"material_items"`
	TravelExpenseItems []TravelExpenseItemResponse `json:"travel_expense_items"`
	CreatedAt          time.Time                   `json:"created_at"`
	UpdatedAt          time.Time                   `json:"updated_at"`
}

func FromSurvey(s entities.Survey) SurveyResponse {
	adj := budget.ReviewAdjustmentFor(s)
	res := SurveyResponse{
		ID:                 s.ID,
		WorkID:             s.WorkID,
		Number:             s.Number,
		SurveyDate:         s.SurveyDate,
		RequestDate:        s.RequestDate,
		Description:        s.Description,
		Blocks:             make([]BlockReviewResponse, 0, len(entities.AllBlocks)),
		AllBlocksApproved:  s.AllBlocksApproved(),
		AnyBlockPending:    s.AnyBlockPending(),
		HasReviewedBlocks:  s.HasReviewedBlocks(),
		RejectedBlocks:     make([]RejectedBlockResponse, 0),
		PreviousMonthIPP:   nullable(s.PreviousMonthIPP),
		BudgetItems:        make([]BudgetItemResponse, 0, len(s.BudgetItems)),
		InvestmentItems:    make([]InvestmentItemResponse, 0, len(s.InvestmentItems)),
		MaterialItems:      make([]MaterialItemResponse, 0, len(s.MaterialItems)),
		TravelExpenseItems: make([]TravelExpenseItemResponse, 0, len(s.TravelExpenseItems)),
		Budget: BudgetSummaryResponse{
			Subtotal:      adj.Subtotal,
			Factor:        adj.Factor,
			AdjustedTotal: adj.AdjustedTotal,
			Applied:       adj.Applied,
		},
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}

	for _, b := range entities.AllBlocks {
		rev := s.Reviews.Get(b)
		res.Blocks = append(res.Blocks, BlockReviewResponse{
			Block:    string(b),
			Title:    b.Title(),
			Status:   string(rev.Status),
			Comments: rev.Comments,
		})
	}
	for _, rb := range s.RejectedBlocks() {
		res.RejectedBlocks = append(res.RejectedBlocks, RejectedBlockResponse{
			Block:    string(rb.Block),
			Title:    rb.Title,
			Comments: rb.Comments,
		})
	}
	for _, it := range s.BudgetItems {
		res.BudgetItems = append(res.BudgetItems, BudgetItemResponse{
			UCAPCode:        it.UCAP.Code,
			UCAPDescription: it.UCAP.Description,
			InitialIPP:      nullable(it.UCAP.InitialIPP),
			UnitValue:       it.UnitValue,
			Quantity:        it.Quantity,
			LineTotal:       it.LineTotal(),
		})
	}
	for _, it := range s.InvestmentItems {
		res.InvestmentItems = append(res.InvestmentItems, InvestmentItemResponse(it))
	}
	for _, it := range s.MaterialItems {
		res.MaterialItems = append(res.MaterialItems, MaterialItemResponse{
			MaterialCode:        it.Material.Code,
			MaterialDescription: it.Material.Description,
			UnitOfMeasure:       it.UnitOfMeasure,
			Quantity:            it.Quantity,
			Observations:        it.Observations,
		})
	}
	for _, it := range s.TravelExpenseItems {
		res.TravelExpenseItems = append(res.TravelExpenseItems, TravelExpenseItemResponse{
			ExpenseType:  it.ExpenseType,
			Label:        it.Label(),
			Quantity:     it.Quantity,
			Observations: it.Observations,
		})
	}
	return res
}

// ToSurvey rebuilds the aggregate from its wire form. Derived fields are ignored.
func (r SurveyResponse) ToSurvey() entities.Survey {
	s := entities.Survey{
		ID:               r.ID,
		WorkID:           r.WorkID,
		Number:           r.Number,
		SurveyDate:       r.SurveyDate,
		RequestDate:      r.RequestDate,
		Description:      r.Description,
		Reviews:          entities.NewBlockReviews(),
		PreviousMonthIPP: nullDecimal(r.PreviousMonthIPP),
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
	for _, b := range r.Blocks {
		block, ok := entities.ParseBlock(b.Block)
		if !ok {
			continue
		}
		s.Reviews = s.Reviews.With(block, entities.BlockReview{
			Status:   entities.ParseBlockStatus(b.Status),
			Comments: b.Comments,
		})
	}
	for _, it := range r.BudgetItems {
		s.BudgetItems = append(s.BudgetItems, entities.BudgetItem{
			UCAP: entities.UCAP{
				Code:        it.UCAPCode,
				Description: it.UCAPDescription,
				InitialIPP:  nullDecimal(it.InitialIPP),
			},
			UnitValue: it.UnitValue,
			Quantity:  it.Quantity,
		})
	}
	for _, it := range r.InvestmentItems {
		s.InvestmentItems = append(s.InvestmentItems, entities.InvestmentItem(it))
	}
	for _, it := range r.MaterialItems {
		s.MaterialItems = append(s.MaterialItems, entities.MaterialItem{
			Material:      entities.Material{Code: it.MaterialCode, Description: it.MaterialDescription},
			UnitOfMeasure: it.UnitOfMeasure,
			Quantity:      it.Quantity,
			Observations:  it.Observations,
		})
	}
	for _, it := range r.TravelExpenseItems {
		s.TravelExpenseItems = append(s.TravelExpenseItems, entities.TravelExpenseItem{
			ExpenseType:  it.ExpenseType,
			Quantity:     it.Quantity,
			Observations: it.Observations,
		})
	}
	return s
}

func nullable(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	v := d.Decimal
	return &v
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(*d)
}
