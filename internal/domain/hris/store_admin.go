package hris

import "context"

const adminColumns = `
    admin_id, first_name, last_name, email`

func (s *Store) CreateAdmin(ctx context.Context, input Admin) (Admin, error) {
	tx, err := s.DB.Begin(ctx)
	if err != nil {
		return Admin{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var out Admin
	err = tx.QueryRow(ctx, `
    INSERT INTO admin (first_name, last_name, email)
    VALUES ($1, $2, $3)
    RETURNING`+adminColumns+`
  `, input.FirstName, input.LastName, input.Email).Scan(&out.AdminID, &out.FirstName, &out.LastName, &out.Email)
	if err != nil {
		return Admin{}, mapError(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return Admin{}, err
	}
	return out, nil
}

func (s *Store) ListAdmins(ctx context.Context, offset, limit int) ([]Admin, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT`+adminColumns+`
    FROM admin
    ORDER BY admin_id
    OFFSET $1 LIMIT $2
  `, offset, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Admin, 0, limit)
	for rows.Next() {
		var admin Admin
		if err := rows.Scan(&admin.AdminID, &admin.FirstName, &admin.LastName, &admin.Email); err != nil {
			return nil, err
		}
		out = append(out, admin)
	}
	return out, rows.Err()
}

func (s *Store) GetAdmin(ctx context.Context, id int64) (Admin, error) {
	var out Admin
	err := s.DB.QueryRow(ctx, `
    SELECT`+adminColumns+`
    FROM admin
    WHERE admin_id = $1
  `, id).Scan(&out.AdminID, &out.FirstName, &out.LastName, &out.Email)
	if err != nil {
		return Admin{}, mapError(err)
	}
	return out, nil
}

func (s *Store) UpdateAdmin(ctx context.Context, id int64, input Admin) (Admin, error) {
	tx, err := s.DB.Begin(ctx)
	if err != nil {
		return Admin{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var out Admin
	err = tx.QueryRow(ctx, `
    UPDATE admin
    SET first_name = $1,
        last_name = $2,
        email = $3
    WHERE admin_id = $4
    RETURNING`+adminColumns+`
  `, input.FirstName, input.LastName, input.Email, id).Scan(&out.AdminID, &out.FirstName, &out.LastName, &out.Email)
	if err != nil {
		return Admin{}, mapError(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return Admin{}, err
	}
	return out, nil
}

func (s *Store) DeleteAdmin(ctx context.Context, id int64) error {
	tx, err := s.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	cmd, err := tx.Exec(ctx, "DELETE FROM admin WHERE admin_id = $1", id)
	if err != nil {
		return mapError(err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return tx.Commit(ctx)
}
