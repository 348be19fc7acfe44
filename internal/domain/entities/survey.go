package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// BlockReview is the review state of one block: its status and the reviewer comment.
//
// Comments stay attached after a reopen so earlier rejections remain auditable.
type BlockReview struct {
	Status   BlockStatus `json:"status"`
	Comments *string     `json:"comments"`
}

// BlockReviews holds exactly one review per block. It is a value type: every
// transition returns a new copy.
type BlockReviews struct {
	Budget         BlockReview `json:"budget"`
	Investment     BlockReview `json:"investment"`
	Materials      BlockReview `json:"materials"`
	TravelExpenses BlockReview `json:"travel_expenses"`
}

// NewBlockReviews returns the initial state: every block pending, no comments.
func NewBlockReviews() BlockReviews {
	pending := BlockReview{Status: BlockStatusPending}
	return BlockReviews{Budget: pending, Investment: pending, Materials: pending, TravelExpenses: pending}
}

// Get returns the review of a block. Unknown blocks yield a pending review.
func (r BlockReviews) Get(b Block) BlockReview {
	switch b {
	case BlockBudget:
		return r.Budget
	case BlockInvestment:
		return r.Investment
	case BlockMaterials:
		return r.Materials
	case BlockTravelExpenses:
		return r.TravelExpenses
	}
	return BlockReview{Status: BlockStatusPending}
}

// With returns a copy of r with the review of b replaced.
func (r BlockReviews) With(b Block, review BlockReview) BlockReviews {
	switch b {
	case BlockBudget:
		r.Budget = review
	case BlockInvestment:
		r.Investment = review
	case BlockMaterials:
		r.Materials = review
	case BlockTravelExpenses:
		r.TravelExpenses = review
	}
	return r
}

// Survey is the "levantamiento" aggregate: a work survey reviewed block by block.
//
// There is no survey-level status; everything is derived from the four block reviews.
type Survey struct {
	ID               string              `json:"id"`
	WorkID           string              `json:"work_id"`
	Number           string              `json:"number"`
	SurveyDate       time.Time           `json:"survey_date"`
	RequestDate      time.Time           `json:"request_date"`
	Description      string              `json:"description"`
	Reviews          BlockReviews        `json:"reviews"`
	PreviousMonthIPP decimal.NullDecimal `json:"previous_month_ipp"`

	BudgetItems        []BudgetItem        `json:"budget_items"`
	InvestmentItems    []InvestmentItem    `json:"investment_items"`
	MaterialItems      []MaterialItem      `json:"material_items"`
	TravelExpenseItems []TravelExpenseItem `json:"travel_expense_items"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RejectedBlock pairs a rejected block with its comment for the rejection summary.
type RejectedBlock struct {
	Block    Block   `json:"block"`
	Title    string  `json:"title"`
	Comments *string `json:"comments"`
}

func (s Survey) Status(b Block) BlockStatus {
	return s.Reviews.Get(b).Status
}

func (s Survey) AllBlocksApproved() bool {
	for _, b := range AllBlocks {
		if s.Status(b) != BlockStatusApproved {
			return false
		}
	}
	return true
}

func (s Survey) AnyBlockPending() bool {
	for _, b := range AllBlocks {
		if s.Status(b) == BlockStatusPending {
			return true
		}
	}
	return false
}

// HasReviewedBlocks reports whether reopening would change anything.
func (s Survey) HasReviewedBlocks() bool {
	for _, b := range AllBlocks {
		if s.Status(b) != BlockStatusPending {
			return true
		}
	}
	return false
}

func (s Survey) RejectedBlocks() []RejectedBlock {
	var out []RejectedBlock
	for _, b := range AllBlocks {
		r := s.Reviews.Get(b)
		if r.Status == BlockStatusRejected {
			out = append(out, RejectedBlock{Block: b, Title: b.Title(), Comments: r.Comments})
		}
	}
	return out
}

// ApplyDecision applies a single-block decision. Only pending blocks move.
func (s Survey) ApplyDecision(b Block, decision BlockStatus, comments *string) (Survey, bool) {
	if !b.Valid() || s.Status(b) != BlockStatusPending {
		return s, false
	}
	switch decision {
	case BlockStatusApproved:
		s.Reviews = s.Reviews.With(b, BlockReview{Status: BlockStatusApproved})
	case BlockStatusRejected:
		s.Reviews = s.Reviews.With(b, BlockReview{Status: BlockStatusRejected, Comments: comments})
	default:
		return s, false
	}
	return s, true
}

// ApproveAll approves every pending block and leaves decided blocks untouched.
func (s Survey) ApproveAll() Survey {
	for _, b := range AllBlocks {
		if s.Status(b) == BlockStatusPending {
			s.Reviews = s.Reviews.With(b, BlockReview{Status: BlockStatusApproved})
		}
	}
	return s
}

// Reopen moves every block back to pending, keeping comments.
func (s Survey) Reopen() Survey {
	for _, b := range AllBlocks {
		r := s.Reviews.Get(b)
		r.Status = BlockStatusPending
		s.Reviews = s.Reviews.With(b, r)
	}
	return s
}
