package db

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"hris/internal/domain/auth"
	"hris/internal/platform/config"
)

// Seed ensures a login-capable admin account exists so the API is usable
// on a fresh database.
func Seed(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) error {
	adminID, err := ensureAdmin(ctx, pool, cfg.SeedAdminName, cfg.SeedAdminEmail)
	if err != nil {
		return err
	}
	return ensureUserAccount(ctx, pool, adminID, cfg.SeedAdminUsername, cfg.SeedAdminPassword)
}

func ensureAdmin(ctx context.Context, pool *pgxpool.Pool, name, email string) (int64, error) {
	first, last := splitName(name)

	var id int64
	err := pool.QueryRow(ctx, "SELECT admin_id FROM admin WHERE email = $1", email).Scan(&id)
	if err == nil {
		return id, nil
	}

	err = pool.QueryRow(ctx, `
    INSERT INTO admin (first_name, last_name, email)
    VALUES ($1, $2, $3)
    RETURNING admin_id
  `, first, last, email).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func ensureUserAccount(ctx context.Context, pool *pgxpool.Pool, adminID int64, username, password string) error {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(password) == "" {
		return nil
	}

	var id int64
	err := pool.QueryRow(ctx, "SELECT user_id FROM user_account WHERE username = $1", username).Scan(&id)
	if err == nil {
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
    INSERT INTO user_account (admin_id, username, password_hash)
    VALUES ($1, $2, $3)
    ON CONFLICT (admin_id) DO NOTHING
  `, adminID, username, hash)
	return err
}

func splitName(name string) (string, string) {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return "", ""
	}
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}
