package entities

import "strings"

// Block identifies one of the four independently reviewed sections of a survey.
type Block string

const (
	BlockBudget         Block = "budget"
	BlockInvestment     Block = "investment"
	BlockMaterials      Block = "materials"
	BlockTravelExpenses Block = "travel_expenses"
)

// AllBlocks lists the blocks in display order.
var AllBlocks = []Block{BlockBudget, BlockInvestment, BlockMaterials, BlockTravelExpenses}

var blockTitles = map[Block]string{
	BlockBudget:         "Presupuesto",
	BlockInvestment:     "Descripción de la Inversión",
	BlockMaterials:      "Materiales",
	BlockTravelExpenses: "Gastos de Viaje",
}

var blockAliases = map[string]Block{
	"budget":          BlockBudget,
	"presupuesto":     BlockBudget,
	"investment":      BlockInvestment,
	"inversion":       BlockInvestment,
	"materials":       BlockMaterials,
	"materiales":      BlockMaterials,
	"travel_expenses": BlockTravelExpenses,
	"travel":          BlockTravelExpenses,
	"viaticos":        BlockTravelExpenses,
	"gastos_viaje":    BlockTravelExpenses,
}

// ParseBlock accepts the canonical identifiers and their Spanish aliases.
func ParseBlock(s string) (Block, bool) {
	b, ok := blockAliases[normalizeTag(s)]
	return b, ok
}

// Title returns the display title of the block.
func (b Block) Title() string {
	if t, ok := blockTitles[b]; ok {
		return t
	}
	return string(b)
}

func (b Block) Valid() bool {
	_, ok := blockTitles[b]
	return ok
}

// BlockStatus is the review state of a single block.
type BlockStatus string

const (
	BlockStatusPending  BlockStatus = "pending"
	BlockStatusApproved BlockStatus = "approved"
	BlockStatusRejected BlockStatus = "rejected"
)

// ParseBlockStatus maps stored or remote values onto a status. Unknown and empty
// values are treated as pending, which is the state every block starts in.
func ParseBlockStatus(s string) BlockStatus {
	switch normalizeTag(s) {
	case "approved", "aprobado":
		return BlockStatusApproved
	case "rejected", "rechazado":
		return BlockStatusRejected
	default:
		return BlockStatusPending
	}
}

// normalizeTag lowercases and folds spaces, hyphens and the Spanish accents used by
// the backend into a comparable key.
func normalizeTag(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer(" ", "_", "-", "_", "á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u").Replace(s)
	return s
}
