package sqlite

import (
	"context"
	"database/sql"

	"levantamiento_service/internal/domain/entities"
	"levantamiento_service/internal/usecase/interfaces"

	"github.com/rotisserie/eris"
)

// ReviewEventRepository stores the review trail next to the surveys.
type ReviewEventRepository struct {
	db *sql.DB
}

var _ interfaces.IReviewEventRepository = (*ReviewEventRepository)(nil)

func NewReviewEventRepository(db *sql.DB) *ReviewEventRepository {
	return &ReviewEventRepository{db: db}
}

func (r *ReviewEventRepository) Create(ctx context.Context, e entities.ReviewEvent) (entities.ReviewEvent, error) {
	_, err := r.db.ExecContext(ctx, `INSERT INTO review_events
		(id, survey_id, action, block, comments, actor_id, actor_role, date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.SurveyID, string(e.Action), string(e.Block), e.Comments, e.ActorID, e.ActorRole, formatTime(e.Date))
	if err != nil {
		return entities.ReviewEvent{}, eris.Wrap(err, "sqlite: insert review event")
	}
	return e, nil
}

// ListBySurveyID returns the events of a survey, oldest first.
func (r *ReviewEventRepository) ListBySurveyID(ctx context.Context, surveyID string) ([]entities.ReviewEvent, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, survey_id, action, block, comments, actor_id, actor_role, date
		FROM review_events WHERE survey_id = ? ORDER BY date, id`, surveyID)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list review events")
	}
	defer rows.Close()

	events := make([]entities.ReviewEvent, 0)
	for rows.Next() {
		var (
			e                   entities.ReviewEvent
			action, block, date string
			comments            sql.NullString
		)
		if err := rows.Scan(&e.ID, &e.SurveyID, &action, &block, &comments, &e.ActorID, &e.ActorRole, &date); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan review event")
		}
		e.Action = entities.ReviewAction(action)
		e.Block = entities.Block(block)
		if comments.Valid {
			c := comments.String
			e.Comments = &c
		}
		e.Date = parseTime(date)
		events = append(events, e)
	}
	return events, eris.Wrap(rows.Err(), "sqlite: iterate review events")
}
