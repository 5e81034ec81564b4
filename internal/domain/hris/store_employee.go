package hris

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
)

const employeeColumns = `
    employee_id, first_name, last_name, dob, phone, email, gender, department_id`

func scanEmployee(row pgx.Row) (Employee, error) {
	var emp Employee
	var dob *time.Time
	var gender *string
	if err := row.Scan(&emp.EmployeeID, &emp.FirstName, &emp.LastName, &dob, &emp.Phone, &emp.Email, &gender, &emp.DepartmentID); err != nil {
		return Employee{}, err
	}
	emp.DOB = formatDatePtr(dob)
	if gender != nil {
		emp.Gender = Gender(*gender)
	}
	return emp, nil
}

func (s *Store) CreateEmployee(ctx context.Context, input Employee) (Employee, error) {
	tx, err := s.DB.Begin(ctx)
	if err != nil {
		return Employee{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	row := tx.QueryRow(ctx, `
    INSERT INTO employee (first_name, last_name, dob, phone, email, gender, department_id)
    VALUES ($1, $2, $3::date, $4, $5, $6, $7)
    RETURNING`+employeeColumns+`
  `, input.FirstName, input.LastName, input.DOB, input.Phone, input.Email,
		nullIfEmpty(string(input.Gender)), input.DepartmentID)
	out, err := scanEmployee(row)
	if err != nil {
		return Employee{}, mapError(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return Employee{}, err
	}
	return out, nil
}

func (s *Store) ListEmployees(ctx context.Context, offset, limit int) ([]Employee, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT`+employeeColumns+`
    FROM employee
    ORDER BY employee_id
    OFFSET $1 LIMIT $2
  `, offset, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Employee, 0, limit)
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, emp)
	}
	return out, rows.Err()
}

func (s *Store) GetEmployee(ctx context.Context, id int64) (Employee, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT`+employeeColumns+`
    FROM employee
    WHERE employee_id = $1
  `, id)
	out, err := scanEmployee(row)
	if err != nil {
		return Employee{}, mapError(err)
	}
	return out, nil
}

func (s *Store) UpdateEmployee(ctx context.Context, id int64, input Employee) (Employee, error) {
	tx, err := s.DB.Begin(ctx)
	if err != nil {
		return Employee{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	row := tx.QueryRow(ctx, `
    UPDATE employee
    SET first_name = $1,
        last_name = $2,
        dob = $3::date,
        phone = $4,
        email = $5,
        gender = $6,
        department_id = $7
    WHERE employee_id = $8
    RETURNING`+employeeColumns+`
  `, input.FirstName, input.LastName, input.DOB, input.Phone, input.Email,
		nullIfEmpty(string(input.Gender)), input.DepartmentID, id)
	out, err := scanEmployee(row)
	if err != nil {
		return Employee{}, mapError(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return Employee{}, err
	}
	return out, nil
}

func (s *Store) DeleteEmployee(ctx context.Context, id int64) error {
	tx, err := s.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	cmd, err := tx.Exec(ctx, "DELETE FROM employee WHERE employee_id = $1", id)
	if err != nil {
		return mapError(err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return tx.Commit(ctx)
}
