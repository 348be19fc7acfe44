package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"levantamiento_service/internal/domain/entities"
	"levantamiento_service/internal/infrastructure/database"
	"levantamiento_service/internal/usecase/interfaces"

	"github.com/rotisserie/eris"
	"golang.org/x/sync/errgroup"
)

// SurveyRepository persists survey aggregates in SQLite.
//
// Block transitions run inside a transaction guarded by status = 'pending', so a
// decision on an already decided block is refused by the store itself.
type SurveyRepository struct {
	db *sql.DB
}

var _ interfaces.ISurveyStore = (*SurveyRepository)(nil)

func NewSurveyRepository(db *sql.DB) *SurveyRepository {
	return &SurveyRepository{db: db}
}

func (r *SurveyRepository) Create(ctx context.Context, s entities.Survey) (entities.Survey, error) {
	now := time.Now().UTC()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	s.UpdatedAt = now

	err := database.WithinTx(ctx, r.db, func(tx database.DBTX) error {
		_, err := tx.ExecContext(ctx, `INSERT INTO surveys
			(id, work_id, number, survey_date, request_date, description, previous_month_ipp, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			s.ID, s.WorkID, s.Number, formatTime(s.SurveyDate), formatTime(s.RequestDate), s.Description,
			s.PreviousMonthIPP, formatTime(s.CreatedAt), formatTime(s.UpdatedAt))
		if err != nil {
			return eris.Wrap(err, "sqlite: insert survey")
		}

		for _, b := range entities.AllBlocks {
			rev := s.Reviews.Get(b)
			if _, err := tx.ExecContext(ctx, `INSERT INTO survey_blocks (survey_id, block, status, comments) VALUES (?, ?, ?, ?)`,
				s.ID, string(b), string(rev.Status), rev.Comments); err != nil {
				return eris.Wrapf(err, "sqlite: insert block %s", b)
			}
		}

		for i, it := range s.BudgetItems {
			if _, err := tx.ExecContext(ctx, `INSERT INTO budget_items
				(survey_id, position, ucap_code, ucap_description, initial_ipp, unit_value, quantity)
				VALUES (?, ?, ?, ?, ?, ?, ?)`,
				s.ID, i, it.UCAP.Code, it.UCAP.Description, it.UCAP.InitialIPP, it.UnitValue, it.Quantity); err != nil {
				return eris.Wrap(err, "sqlite: insert budget item")
			}
		}
		for i, it := range s.InvestmentItems {
			if _, err := tx.ExecContext(ctx, `INSERT INTO investment_items
				(survey_id, position, order_number, point, description, luminaire_quantity,
				 relocated_luminaire_quantity, pole_quantity, braided_network, latitude, longitude)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				s.ID, i, it.OrderNumber, it.Point, it.Description, it.LuminaireQuantity,
				it.RelocatedLuminaireQuantity, it.PoleQuantity, it.BraidedNetwork, it.Latitude, it.Longitude); err != nil {
				return eris.Wrap(err, "sqlite: insert investment item")
			}
		}
		for i, it := range s.MaterialItems {
			if _, err := tx.ExecContext(ctx, `INSERT INTO material_items
				(survey_id, position, material_code, material_description, unit_of_measure, quantity, observations)
				VALUES (?, ?, ?, ?, ?, ?, ?)`,
				s.ID, i, it.Material.Code, it.Material.Description, it.UnitOfMeasure, it.Quantity, it.Observations); err != nil {
				return eris.Wrap(err, "sqlite: insert material item")
			}
		}
		for i, it := range s.TravelExpenseItems {
			if _, err := tx.ExecContext(ctx, `INSERT INTO travel_expense_items
				(survey_id, position, expense_type, quantity, observations)
				VALUES (?, ?, ?, ?, ?)`,
				s.ID, i, it.ExpenseType, it.Quantity, it.Observations); err != nil {
				return eris.Wrap(err, "sqlite: insert travel expense item")
			}
		}
		return nil
	})
	if err != nil {
		return entities.Survey{}, err
	}
	return r.FetchSurvey(ctx, s.ID)
}

func (r *SurveyRepository) FetchSurvey(ctx context.Context, id string) (entities.Survey, error) {
	var (
		s                       entities.Survey
		surveyDate, requestDate string
		createdAt, updatedAt    string
	)
	err := r.db.QueryRowContext(ctx, `SELECT id, work_id, number, survey_date, request_date, description,
		previous_month_ipp, created_at, updated_at FROM surveys WHERE id = ?`, id).
		Scan(&s.ID, &s.WorkID, &s.Number, &surveyDate, &requestDate, &s.Description,
			&s.PreviousMonthIPP, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Survey{}, nil
	}
	if err != nil {
		return entities.Survey{}, eris.Wrap(err, "sqlite: fetch survey")
	}
	s.SurveyDate = parseTime(surveyDate)
	s.RequestDate = parseTime(requestDate)
	s.CreatedAt = parseTime(createdAt)
	s.UpdatedAt = parseTime(updatedAt)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		reviews, err := r.loadReviews(gctx, id)
		s.Reviews = reviews
		return err
	})
	g.Go(func() (err error) {
		s.BudgetItems, err = r.loadBudgetItems(gctx, id)
		return err
	})
	g.Go(func() (err error) {
		s.InvestmentItems, err = r.loadInvestmentItems(gctx, id)
		return err
	})
	g.Go(func() (err error) {
		s.MaterialItems, err = r.loadMaterialItems(gctx, id)
		return err
	})
	g.Go(func() (err error) {
		s.TravelExpenseItems, err = r.loadTravelExpenseItems(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return entities.Survey{}, err
	}
	return s, nil
}

func (r *SurveyRepository) ReviewBlock(ctx context.Context, id string, block entities.Block, decision entities.BlockStatus, comments *string) (entities.Survey, error) {
	if decision != entities.BlockStatusApproved && decision != entities.BlockStatusRejected {
		return entities.Survey{}, interfaces.ErrInvalidTransition
	}
	if decision == entities.BlockStatusApproved {
		comments = nil
	}
	return r.transition(ctx, id, func(tx database.DBTX) error {
		res, err := tx.ExecContext(ctx, `UPDATE survey_blocks SET status = ?, comments = ?
			WHERE survey_id = ? AND block = ? AND status = 'pending'`,
			string(decision), comments, id, string(block))
		if err != nil {
			return eris.Wrap(err, "sqlite: update block")
		}
		n, err := res.RowsAffected()
		if err != nil {
			return eris.Wrap(err, "sqlite: update block")
		}
		if n == 0 {
			return interfaces.ErrInvalidTransition
		}
		return nil
	})
}

func (r *SurveyRepository) ApproveAllBlocks(ctx context.Context, id string) (entities.Survey, error) {
	return r.transition(ctx, id, func(tx database.DBTX) error {
		_, err := tx.ExecContext(ctx, `UPDATE survey_blocks SET status = 'approved', comments = NULL
			WHERE survey_id = ? AND status = 'pending'`, id)
		return eris.Wrap(err, "sqlite: approve all blocks")
	})
}

func (r *SurveyRepository) ReopenForEditing(ctx context.Context, id string, reason *string) (entities.Survey, error) {
	return r.transition(ctx, id, func(tx database.DBTX) error {
		if _, err := tx.ExecContext(ctx, `UPDATE survey_blocks SET status = 'pending' WHERE survey_id = ?`, id); err != nil {
			return eris.Wrap(err, "sqlite: reopen blocks")
		}
		_, err := tx.ExecContext(ctx, `UPDATE surveys SET reopen_reason = ? WHERE id = ?`, reason, id)
		return eris.Wrap(err, "sqlite: store reopen reason")
	})
}

// transition runs change in a transaction after checking the survey exists, bumps
// updated_at and returns the reloaded aggregate. A missing survey yields a zero Survey.
func (r *SurveyRepository) transition(ctx context.Context, id string, change func(tx database.DBTX) error) (entities.Survey, error) {
	found := true
	err := database.WithinTx(ctx, r.db, func(tx database.DBTX) error {
		var exists int
		err := tx.QueryRowContext(ctx, `SELECT 1 FROM surveys WHERE id = ?`, id).Scan(&exists)
		if errors.Is(err, sql.ErrNoRows) {
			found = false
			return nil
		}
		if err != nil {
			return eris.Wrap(err, "sqlite: lookup survey")
		}
		if err := change(tx); err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, `UPDATE surveys SET updated_at = ? WHERE id = ?`, formatTime(time.Now().UTC()), id)
		return eris.Wrap(err, "sqlite: touch survey")
	})
	if err != nil {
		return entities.Survey{}, err
	}
	if !found {
		return entities.Survey{}, nil
	}
	return r.FetchSurvey(ctx, id)
}

func (r *SurveyRepository) loadReviews(ctx context.Context, id string) (entities.BlockReviews, error) {
	reviews := entities.NewBlockReviews()
	rows, err := r.db.QueryContext(ctx, `SELECT block, status, comments FROM survey_blocks WHERE survey_id = ?`, id)
	if err != nil {
		return reviews, eris.Wrap(err, "sqlite: load blocks")
	}
	defer rows.Close()

	for rows.Next() {
		var (
			block, status string
			comments      sql.NullString
		)
		if err := rows.Scan(&block, &status, &comments); err != nil {
			return reviews, eris.Wrap(err, "sqlite: scan block")
		}
		b, ok := entities.ParseBlock(block)
		if !ok {
			continue
		}
		rev := entities.BlockReview{Status: entities.ParseBlockStatus(status)}
		if comments.Valid {
			c := comments.String
			rev.Comments = &c
		}
		reviews = reviews.With(b, rev)
	}
	return reviews, eris.Wrap(rows.Err(), "sqlite: iterate blocks")
}

func (r *SurveyRepository) loadBudgetItems(ctx context.Context, id string) ([]entities.BudgetItem, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT ucap_code, ucap_description, initial_ipp, unit_value, quantity
		FROM budget_items WHERE survey_id = ? ORDER BY position`, id)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: load budget items")
	}
	defer rows.Close()

	var items []entities.BudgetItem
	for rows.Next() {
		var it entities.BudgetItem
		if err := rows.Scan(&it.UCAP.Code, &it.UCAP.Description, &it.UCAP.InitialIPP, &it.UnitValue, &it.Quantity); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan budget item")
		}
		items = append(items, it)
	}
	return items, eris.Wrap(rows.Err(), "sqlite: iterate budget items")
}

func (r *SurveyRepository) loadInvestmentItems(ctx context.Context, id string) ([]entities.InvestmentItem, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT order_number, point, description, luminaire_quantity,
		relocated_luminaire_quantity, pole_quantity, braided_network, latitude, longitude
		FROM investment_items WHERE survey_id = ? ORDER BY position`, id)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: load investment items")
	}
	defer rows.Close()

	var items []entities.InvestmentItem
	for rows.Next() {
		var it entities.InvestmentItem
		if err := rows.Scan(&it.OrderNumber, &it.Point, &it.Description, &it.LuminaireQuantity,
			&it.RelocatedLuminaireQuantity, &it.PoleQuantity, &it.BraidedNetwork, &it.Latitude, &it.Longitude); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan investment item")
		}
		items = append(items, it)
	}
	return items, eris.Wrap(rows.Err(), "sqlite: iterate investment items")
}

func (r *SurveyRepository) loadMaterialItems(ctx context.Context, id string) ([]entities.MaterialItem, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT material_code, material_description, unit_of_measure, quantity, observations
		FROM material_items WHERE survey_id = ? ORDER BY position`, id)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: load material items")
	}
	defer rows.Close()

	var items []entities.MaterialItem
	for rows.Next() {
		var it entities.MaterialItem
		if err := rows.Scan(&it.Material.Code, &it.Material.Description, &it.UnitOfMeasure, &it.Quantity, &it.Observations); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan material item")
		}
		items = append(items, it)
	}
	return items, eris.Wrap(rows.Err(), "sqlite: iterate material items")
}

func (r *SurveyRepository) loadTravelExpenseItems(ctx context.Context, id string) ([]entities.TravelExpenseItem, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT expense_type, quantity, observations
		FROM travel_expense_items WHERE survey_id = ? ORDER BY position`, id)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: load travel expense items")
	}
	defer rows.Close()

	var items []entities.TravelExpenseItem
	for rows.Next() {
		var it entities.TravelExpenseItem
		if err := rows.Scan(&it.ExpenseType, &it.Quantity, &it.Observations); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan travel expense item")
		}
		items = append(items, it)
	}
	return items, eris.Wrap(rows.Err(), "sqlite: iterate travel expense items")
}

// timeLayout is fixed width so text order matches time order.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}
