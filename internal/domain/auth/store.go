package auth

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Account struct {
	UserID       int64
	AdminID      int64
	Username     string
	PasswordHash string
}

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) FindByUsername(ctx context.Context, username string) (Account, error) {
	var out Account
	err := s.DB.QueryRow(ctx, `
    SELECT user_id, admin_id, username, password_hash
    FROM user_account
    WHERE username = $1
  `, username).Scan(&out.UserID, &out.AdminID, &out.Username, &out.PasswordHash)
	return out, err
}

// Authenticate resolves the username and verifies the password against the
// stored bcrypt hash. The result is opaque: callers cannot tell an unknown
// username from a wrong password.
func (s *Store) Authenticate(ctx context.Context, username, password string) (Account, bool) {
	account, err := s.FindByUsername(ctx, username)
	if err != nil {
		return Account{}, false
	}
	if err := CheckPassword(account.PasswordHash, password); err != nil {
		return Account{}, false
	}
	return account, true
}
