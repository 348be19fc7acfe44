package response

import (
	"time"

	"levantamiento_service/internal/domain/entities"
)

type ReviewEventResponse struct {
	ID         string    `json:"id"`
	SurveyID   string    `json:"survey_id"`
	Action     string    `json:"action"`
	Block      string    `json:"block,omitempty"`
	BlockTitle string    `json:"block_title,omitempty"`
	Comments   *string   `json:"comments,omitempty"`
	ActorID    string    `json:"actor_id"`
	ActorRole  string    `json:"actor_role"`
	Date       time.Time `json:"date"`
}

func FromReviewEvent(e entities.ReviewEvent) ReviewEventResponse {
	res := ReviewEventResponse{
		ID:        e.ID,
		SurveyID:  e.SurveyID,
		Action:    string(e.Action),
		Block:     string(e.Block),
		Comments:  e.Comments,
		ActorID:   e.ActorID,
		ActorRole: e.ActorRole,
		Date:      e.Date,
	}
	if e.Block.Valid() {
		res.BlockTitle = e.Block.Title()
	}
	return res
}

func FromReviewEvents(events []entities.ReviewEvent) []ReviewEventResponse {
	out := make([]ReviewEventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, FromReviewEvent(e))
	}
	return out
}

func (r ReviewEventResponse) ToReviewEvent() entities.ReviewEvent {
	return entities.ReviewEvent{
		ID:        r.ID,
		SurveyID:  r.SurveyID,
		Action:    entities.ReviewAction(r.Action),
		Block:     entities.Block(r.Block),
		Comments:  r.Comments,
		ActorID:   r.ActorID,
		ActorRole: r.ActorRole,
		Date:      r.Date,
	}
}
