package repository

import (
	"context"
	"database/sql"

	"github.com/nehawork/smart-attendence/internal/model"
)

// AttendanceRepo provides append and read access to the 'attendance'
// table. Marking is append-only: a record never changes status after
// insertion and there is no delete path. The class/division columns
// hold the section as it was at marking time, deliberately decoupled
// from the student's current roster row.
type AttendanceRepo struct{ DB *sql.DB }

func NewAttendanceRepo(db *sql.DB) *AttendanceRepo { return &AttendanceRepo{DB: db} }

// Insert appends one attendance row.
func (r *AttendanceRepo) Insert(ctx context.Context, studentID int64, class, division, date, status string) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO attendance (student_id, class, division, date, status) VALUES (?,?,?,?,?)",
		studentID, class, division, date, status)
	return err
}

// InsertBatch appends one row per student id inside a single
// transaction, so a partial failure leaves no rows behind. The
// statement is prepared once and reused across the loop.
func (r *AttendanceRepo) InsertBatch(ctx context.Context, studentIDs []int64, class, division, date, status string) error {
	if len(studentIDs) == 0 {
		return nil
	}
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO attendance (student_id, class, division, date, status) VALUES (?,?,?,?,?)")
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, id := range studentIDs {
		if _, err := stmt.ExecContext(ctx, id, class, division, date, status); err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

// Summary aggregates the full history into one row per (date, section)
// group with Present and Absent counts. Rows join back to students to
// recover the grouping section; groups order most-recent-first, which
// the YYYY-MM-DD date form supports lexicographically.
func (r *AttendanceRepo) Summary(ctx context.Context) ([]model.SummaryRow, error) {
	const q = `
		SELECT a.date, s.class, s.division,
		       SUM(CASE WHEN a.status = 'Present' THEN 1 ELSE 0 END),
		       SUM(CASE WHEN a.status = 'Absent'  THEN 1 ELSE 0 END)
		FROM attendance a
		JOIN students s ON a.student_id = s.id
		GROUP BY a.date, s.class, s.division
		ORDER BY a.date DESC, s.class, s.division`
	rows, err := r.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summary []model.SummaryRow
	for rows.Next() {
		var row model.SummaryRow
		if err := rows.Scan(&row.Date, &row.Section.Class, &row.Section.Division, &row.Present, &row.Absent); err != nil {
			return nil, err
		}
		row.Label = row.Section.Label()
		summary = append(summary, row)
	}
	return summary, rows.Err()
}

// Detail returns the (name, status) lines behind one summary row,
// ordered by student name. The section arrives as a structured pair;
// no display label is ever parsed apart.
func (r *AttendanceRepo) Detail(ctx context.Context, date string, section model.Section) ([]model.DetailRow, error) {
	const q = `
		SELECT s.name, a.status
		FROM attendance a
		JOIN students s ON a.student_id = s.id
		WHERE a.date = ? AND a.class = ? AND a.division = ?
		ORDER BY s.name`
	rows, err := r.DB.QueryContext(ctx, q, date, section.Class, section.Division)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var detail []model.DetailRow
	for rows.Next() {
		var d model.DetailRow
		if err := rows.Scan(&d.StudentName, &d.Status); err != nil {
			return nil, err
		}
		detail = append(detail, d)
	}
	return detail, rows.Err()
}

// Filter returns raw attendance rows newest-first, optionally narrowed
// by class and/or date. An empty or "All" value skips that filter.
func (r *AttendanceRepo) Filter(ctx context.Context, class, date string) ([]model.Attendance, error) {
	q := "SELECT id, student_id, class, division, date, status FROM attendance"
	var (
		conds []string
		args  []any
	)
	if class != "" && class != "All" {
		conds = append(conds, "class = ?")
		args = append(args, class)
	}
	if date != "" && date != "All" {
		conds = append(conds, "date = ?")
		args = append(args, date)
	}
	for i, c := range conds {
		if i == 0 {
			q += " WHERE " + c
		} else {
			q += " AND " + c
		}
	}
	q += " ORDER BY date DESC, id"

	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []model.Attendance
	for rows.Next() {
		var a model.Attendance
		if err := rows.Scan(&a.ID, &a.StudentID, &a.Class, &a.Division, &a.Date, &a.Status); err != nil {
			return nil, err
		}
		records = append(records, a)
	}
	return records, rows.Err()
}
