package hris

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
)

const attendanceColumns = `
    attendance_id, employee_id, work_date,
    to_char(time_in, 'HH24:MI:SS'), to_char(time_out, 'HH24:MI:SS')`

func scanAttendance(row pgx.Row) (Attendance, error) {
	var att Attendance
	var workDate time.Time
	if err := row.Scan(&att.AttendanceID, &att.EmployeeID, &workDate, &att.TimeIn, &att.TimeOut); err != nil {
		return Attendance{}, err
	}
	att.Date = formatDate(workDate)
	return att, nil
}

func (s *Store) CreateAttendance(ctx context.Context, input Attendance) (Attendance, error) {
	tx, err := s.DB.Begin(ctx)
	if err != nil {
		return Attendance{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	row := tx.QueryRow(ctx, `
    INSERT INTO attendance (employee_id, work_date, time_in, time_out)
    VALUES ($1, $2::date, $3::time, $4::time)
    RETURNING`+attendanceColumns+`
  `, input.EmployeeID, input.Date, input.TimeIn, input.TimeOut)
	out, err := scanAttendance(row)
	if err != nil {
		return Attendance{}, mapError(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return Attendance{}, err
	}
	return out, nil
}

func (s *Store) ListAttendances(ctx context.Context, offset, limit int) ([]Attendance, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT`+attendanceColumns+`
    FROM attendance
    ORDER BY attendance_id
    OFFSET $1 LIMIT $2
  `, offset, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Attendance, 0, limit)
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, att)
	}
	return out, rows.Err()
}

func (s *Store) GetAttendance(ctx context.Context, id int64) (Attendance, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT`+attendanceColumns+`
    FROM attendance
    WHERE attendance_id = $1
  `, id)
	out, err := scanAttendance(row)
	if err != nil {
		return Attendance{}, mapError(err)
	}
	return out, nil
}

func (s *Store) UpdateAttendance(ctx context.Context, id int64, input Attendance) (Attendance, error) {
	tx, err := s.DB.Begin(ctx)
	if err != nil {
		return Attendance{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	row := tx.QueryRow(ctx, `
    UPDATE attendance
    SET employee_id = $1,
        work_date = $2::date,
        time_in = $3::time,
        time_out = $4::time
    WHERE attendance_id = $5
    RETURNING`+attendanceColumns+`
  `, input.EmployeeID, input.Date, input.TimeIn, input.TimeOut, id)
	out, err := scanAttendance(row)
	if err != nil {
		return Attendance{}, mapError(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return Attendance{}, err
	}
	return out, nil
}

func (s *Store) DeleteAttendance(ctx context.Context, id int64) error {
	tx, err := s.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	cmd, err := tx.Exec(ctx, "DELETE FROM attendance WHERE attendance_id = $1", id)
	if err != nil {
		return mapError(err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return tx.Commit(ctx)
}
