package hris

import "context"

func (s *Store) CreateDepartment(ctx context.Context, input Department) (Department, error) {
	tx, err := s.DB.Begin(ctx)
	if err != nil {
		return Department{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var out Department
	err = tx.QueryRow(ctx, `
    INSERT INTO department (dept_name)
    VALUES ($1)
    RETURNING department_id, dept_name
  `, input.DeptName).Scan(&out.DepartmentID, &out.DeptName)
	if err != nil {
		return Department{}, mapError(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return Department{}, err
	}
	return out, nil
}

func (s *Store) ListDepartments(ctx context.Context, offset, limit int) ([]Department, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT department_id, dept_name
    FROM department
    ORDER BY department_id
    OFFSET $1 LIMIT $2
  `, offset, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Department, 0, limit)
	for rows.Next() {
		var dept Department
		if err := rows.Scan(&dept.DepartmentID, &dept.DeptName); err != nil {
			return nil, err
		}
		out = append(out, dept)
	}
	return out, rows.Err()
}

func (s *Store) GetDepartment(ctx context.Context, id int64) (Department, error) {
	var out Department
	err := s.DB.QueryRow(ctx, `
    SELECT department_id, dept_name
    FROM department
    WHERE department_id = $1
  `, id).Scan(&out.DepartmentID, &out.DeptName)
	if err != nil {
		return Department{}, mapError(err)
	}
	return out, nil
}

func (s *Store) UpdateDepartment(ctx context.Context, id int64, input Department) (Department, error) {
	tx, err := s.DB.Begin(ctx)
	if err != nil {
		return Department{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var out Department
	err = tx.QueryRow(ctx, `
    UPDATE department
    SET dept_name = $1
    WHERE department_id = $2
    RETURNING department_id, dept_name
  `, input.DeptName, id).Scan(&out.DepartmentID, &out.DeptName)
	if err != nil {
		return Department{}, mapError(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return Department{}, err
	}
	return out, nil
}

func (s *Store) DeleteDepartment(ctx context.Context, id int64) error {
	tx, err := s.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	cmd, err := tx.Exec(ctx, "DELETE FROM department WHERE department_id = $1", id)
	if err != nil {
		return mapError(err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return tx.Commit(ctx)
}
