package hris

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
)

const payrollColumns = `
    payroll_id, employee_id, salary, bonus, deduction, pay_date`

func scanPayroll(row pgx.Row) (Payroll, error) {
	var pay Payroll
	var payDate time.Time
	if err := row.Scan(&pay.PayrollID, &pay.EmployeeID, &pay.Salary, &pay.Bonus, &pay.Deduction, &payDate); err != nil {
		return Payroll{}, err
	}
	pay.PayDate = formatDate(payDate)
	return pay, nil
}

func (s *Store) CreatePayroll(ctx context.Context, input Payroll) (Payroll, error) {
	tx, err := s.DB.Begin(ctx)
	if err != nil {
		return Payroll{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	row := tx.QueryRow(ctx, `
    INSERT INTO payroll (employee_id, salary, bonus, deduction, pay_date)
    VALUES ($1, $2, $3, $4, $5::date)
    RETURNING`+payrollColumns+`
  `, input.EmployeeID, input.Salary, input.Bonus, input.Deduction, input.PayDate)
	out, err := scanPayroll(row)
	if err != nil {
		return Payroll{}, mapError(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return Payroll{}, err
	}
	return out, nil
}

func (s *Store) ListPayrolls(ctx context.Context, offset, limit int) ([]Payroll, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT`+payrollColumns+`
    FROM payroll
    ORDER BY payroll_id
    OFFSET $1 LIMIT $2
  `, offset, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Payroll, 0, limit)
	for rows.Next() {
		pay, err := scanPayroll(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, pay)
	}
	return out, rows.Err()
}

func (s *Store) GetPayroll(ctx context.Context, id int64) (Payroll, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT`+payrollColumns+`
    FROM payroll
    WHERE payroll_id = $1
  `, id)
	out, err := scanPayroll(row)
	if err != nil {
		return Payroll{}, mapError(err)
	}
	return out, nil
}

func (s *Store) UpdatePayroll(ctx context.Context, id int64, input Payroll) (Payroll, error) {
	tx, err := s.DB.Begin(ctx)
	if err != nil {
		return Payroll{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	row := tx.QueryRow(ctx, `
    UPDATE payroll
    SET employee_id = $1,
        salary = $2,
        bonus = $3,
        deduction = $4,
        pay_date = $5::date
    WHERE payroll_id = $6
    RETURNING`+payrollColumns+`
  `, input.EmployeeID, input.Salary, input.Bonus, input.Deduction, input.PayDate, id)
	out, err := scanPayroll(row)
	if err != nil {
		return Payroll{}, mapError(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return Payroll{}, err
	}
	return out, nil
}

func (s *Store) DeletePayroll(ctx context.Context, id int64) error {
	tx, err := s.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	cmd, err := tx.Exec(ctx, "DELETE FROM payroll WHERE payroll_id = $1", id)
	if err != nil {
		return mapError(err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return tx.Commit(ctx)
}

type PayslipData struct {
	FirstName string
	LastName  string
	Email     *string
	Salary    float64
	Bonus     float64
	Deduction float64
	PayDate   string
}

// PayslipData joins a payroll row with its employee for PDF rendering.
func (s *Store) PayslipData(ctx context.Context, payrollID int64) (PayslipData, error) {
	var data PayslipData
	var payDate time.Time
	err := s.DB.QueryRow(ctx, `
    SELECT e.first_name, e.last_name, e.email,
           p.salary, p.bonus, p.deduction, p.pay_date
    FROM payroll p
    JOIN employee e ON p.employee_id = e.employee_id
    WHERE p.payroll_id = $1
  `, payrollID).Scan(&data.FirstName, &data.LastName, &data.Email, &data.Salary, &data.Bonus, &data.Deduction, &payDate)
	if err != nil {
		return PayslipData{}, mapError(err)
	}
	data.PayDate = formatDate(payDate)
	return data, nil
}
