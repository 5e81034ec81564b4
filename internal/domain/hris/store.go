package hris

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const dateLayout = "2006-01-02"

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

// Counts feeds the service banner. Errors bubble up so the banner can
// report a degraded database.
func (s *Store) Counts(ctx context.Context) (Stats, error) {
	var stats Stats
	err := s.DB.QueryRow(ctx, `
    SELECT (SELECT COUNT(1) FROM user_account),
           (SELECT COUNT(1) FROM admin),
           (SELECT COUNT(1) FROM employee)
  `).Scan(&stats.Users, &stats.Admins, &stats.Employees)
	if err != nil {
		return Stats{}, err
	}
	return stats, nil
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(dateLayout)
	return &formatted
}

func nullIfEmpty(value string) any {
	if value == "" {
		return nil
	}
	return value
}
