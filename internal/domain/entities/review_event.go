package entities

import "time"

// ReviewAction names a command recorded in the review trail.
type ReviewAction string

const (
	ReviewActionApproveBlock ReviewAction = "approve_block"
	ReviewActionRejectBlock  ReviewAction = "reject_block"
	ReviewActionApproveAll   ReviewAction = "approve_all"
	ReviewActionReopen       ReviewAction = "reopen"
)

// ReviewEvent is the audit record of a successful review command.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (survey_id-index): survey_id
type ReviewEvent struct {
	ID        string       `json:"id"`
	SurveyID  string       `json:"survey_id"`
	Action    ReviewAction `json:"action"`
	Block     Block        `json:"block,omitempty"`
	Comments  *string      `json:"comments,omitempty"`
	ActorID   string       `json:"actor_id"`
	ActorRole string       `json:"actor_role"`
	Date      time.Time    `json:"date"`
}
