package hris

import "context"

const userAccountColumns = `
    user_id, admin_id, username`

// User account rows never carry the password hash out of this package;
// responses echo the record with the password field blank.

func (s *Store) CreateUserAccount(ctx context.Context, input UserAccount, passwordHash string) (UserAccount, error) {
	tx, err := s.DB.Begin(ctx)
	if err != nil {
		return UserAccount{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var out UserAccount
	err = tx.QueryRow(ctx, `
    INSERT INTO user_account (admin_id, username, password_hash)
    VALUES ($1, $2, $3)
    RETURNING`+userAccountColumns+`
  `, input.AdminID, input.Username, passwordHash).Scan(&out.UserID, &out.AdminID, &out.Username)
	if err != nil {
		return UserAccount{}, mapError(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return UserAccount{}, err
	}
	return out, nil
}

func (s *Store) ListUserAccounts(ctx context.Context, offset, limit int) ([]UserAccount, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT`+userAccountColumns+`
    FROM user_account
    ORDER BY user_id
    OFFSET $1 LIMIT $2
  `, offset, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]UserAccount, 0, limit)
	for rows.Next() {
		var account UserAccount
		if err := rows.Scan(&account.UserID, &account.AdminID, &account.Username); err != nil {
			return nil, err
		}
		out = append(out, account)
	}
	return out, rows.Err()
}

func (s *Store) GetUserAccount(ctx context.Context, id int64) (UserAccount, error) {
	var out UserAccount
	err := s.DB.QueryRow(ctx, `
    SELECT`+userAccountColumns+`
    FROM user_account
    WHERE user_id = $1
  `, id).Scan(&out.UserID, &out.AdminID, &out.Username)
	if err != nil {
		return UserAccount{}, mapError(err)
	}
	return out, nil
}

func (s *Store) UpdateUserAccount(ctx context.Context, id int64, input UserAccount, passwordHash string) (UserAccount, error) {
	tx, err := s.DB.Begin(ctx)
	if err != nil {
		return UserAccount{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var out UserAccount
	err = tx.QueryRow(ctx, `
    UPDATE user_account
    SET admin_id = $1,
        username = $2,
        password_hash = $3
    WHERE user_id = $4
    RETURNING`+userAccountColumns+`
  `, input.AdminID, input.Username, passwordHash, id).Scan(&out.UserID, &out.AdminID, &out.Username)
	if err != nil {
		return UserAccount{}, mapError(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return UserAccount{}, err
	}
	return out, nil
}

func (s *Store) DeleteUserAccount(ctx context.Context, id int64) error {
	tx, err := s.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	cmd, err := tx.Exec(ctx, "DELETE FROM user_account WHERE user_id = $1", id)
	if err != nil {
		return mapError(err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return tx.Commit(ctx)
}
