package hris

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
)

const reviewColumns = `
    review_id, employee_id, review_date, score, comments, working_hours`

func scanReview(row pgx.Row) (PerformanceReview, error) {
	var review PerformanceReview
	var reviewDate time.Time
	if err := row.Scan(&review.ReviewID, &review.EmployeeID, &reviewDate, &review.Score, &review.Comments, &review.WorkingHours); err != nil {
		return PerformanceReview{}, err
	}
	review.ReviewDate = formatDate(reviewDate)
	return review, nil
}

func (s *Store) CreatePerformanceReview(ctx context.Context, input PerformanceReview) (PerformanceReview, error) {
	tx, err := s.DB.Begin(ctx)
	if err != nil {
		return PerformanceReview{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	row := tx.QueryRow(ctx, `
    INSERT INTO performance_review (employee_id, review_date, score, comments, working_hours)
    VALUES ($1, $2::date, $3, $4, $5)
    RETURNING`+reviewColumns+`
  `, input.EmployeeID, input.ReviewDate, input.Score, input.Comments, input.WorkingHours)
	out, err := scanReview(row)
	if err != nil {
		return PerformanceReview{}, mapError(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return PerformanceReview{}, err
	}
	return out, nil
}

func (s *Store) ListPerformanceReviews(ctx context.Context, offset, limit int) ([]PerformanceReview, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT`+reviewColumns+`
    FROM performance_review
    ORDER BY review_id
    OFFSET $1 LIMIT $2
  `, offset, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]PerformanceReview, 0, limit)
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, review)
	}
	return out, rows.Err()
}

func (s *Store) GetPerformanceReview(ctx context.Context, id int64) (PerformanceReview, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT`+reviewColumns+`
    FROM performance_review
    WHERE review_id = $1
  `, id)
	out, err := scanReview(row)
	if err != nil {
		return PerformanceReview{}, mapError(err)
	}
	return out, nil
}

func (s *Store) UpdatePerformanceReview(ctx context.Context, id int64, input PerformanceReview) (PerformanceReview, error) {
	tx, err := s.DB.Begin(ctx)
	if err != nil {
		return PerformanceReview{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	row := tx.QueryRow(ctx, `
    UPDATE performance_review
    SET employee_id = $1,
        review_date = $2::date,
        score = $3,
        comments = $4,
        working_hours = $5
    WHERE review_id = $6
    RETURNING`+reviewColumns+`
  `, input.EmployeeID, input.ReviewDate, input.Score, input.Comments, input.WorkingHours, id)
	out, err := scanReview(row)
	if err != nil {
		return PerformanceReview{}, mapError(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return PerformanceReview{}, err
	}
	return out, nil
}

func (s *Store) DeletePerformanceReview(ctx context.Context, id int64) error {
	tx, err := s.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	cmd, err := tx.Exec(ctx, "DELETE FROM performance_review WHERE review_id = $1", id)
	if err != nil {
		return mapError(err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return tx.Commit(ctx)
}
