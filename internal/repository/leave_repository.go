package repository

import (
	"context"
	"database/sql"

	"github.com/nehawork/smart-attendence/internal/model"
)

// LeaveRepo provides append and read access to the 'leave_records'
// table. Leave rows reference students by name only, so the derived
// lookups below are views over leave history, not over the roster: a
// student who never filed leave does not appear in them.
type LeaveRepo struct{ DB *sql.DB }

func NewLeaveRepo(db *sql.DB) *LeaveRepo { return &LeaveRepo{DB: db} }

// Insert appends one leave row. Interval validation happens in the
// service before this call; overlapping windows for the same student
// are permitted and never merged.
func (r *LeaveRepo) Insert(ctx context.Context, studentName, class, division, leaveFrom, leaveTo string) (int64, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO leave_records (student_name, class, division, leave_from, leave_to) VALUES (?,?,?,?,?)",
		studentName, class, division, leaveFrom, leaveTo)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListAll returns the full leave history in storage order.
func (r *LeaveRepo) ListAll(ctx context.Context) ([]model.Leave, error) {
	return r.Filter(ctx, "", "", "")
}

// Filter returns leave rows narrowed by any combination of class,
// division and student name. Each dimension is an independent equality
// filter; an empty or "All" value skips it.
func (r *LeaveRepo) Filter(ctx context.Context, class, division, studentName string) ([]model.Leave, error) {
	q := "SELECT id, student_name, class, division, leave_from, leave_to FROM leave_records"
	var (
		conds []string
		args  []any
	)
	if class != "" && class != "All" {
		conds = append(conds, "class = ?")
		args = append(args, class)
	}
	if division != "" && division != "All" {
		conds = append(conds, "division = ?")
		args = append(args, division)
	}
	if studentName != "" && studentName != "All" {
		conds = append(conds, "student_name = ?")
		args = append(args, studentName)
	}
	for i, c := range conds {
		if i == 0 {
			q += " WHERE " + c
		} else {
			q += " AND " + c
		}
	}

	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leaves []model.Leave
	for rows.Next() {
		var l model.Leave
		if err := rows.Scan(&l.ID, &l.StudentName, &l.Class, &l.Division, &l.LeaveFrom, &l.LeaveTo); err != nil {
			return nil, err
		}
		leaves = append(leaves, l)
	}
	return leaves, rows.Err()
}

// DistinctClasses returns the sorted classes that have at least one
// leave record.
func (r *LeaveRepo) DistinctClasses(ctx context.Context) ([]string, error) {
	return r.distinctColumn(ctx,
		"SELECT DISTINCT class FROM leave_records ORDER BY class")
}

// DistinctDivisions returns the sorted divisions of one class that have
// leave records.
func (r *LeaveRepo) DistinctDivisions(ctx context.Context, class string) ([]string, error) {
	return r.distinctColumn(ctx,
		"SELECT DISTINCT division FROM leave_records WHERE class=? ORDER BY division", class)
}

// DistinctStudents returns the sorted student names of one section that
// have leave records.
func (r *LeaveRepo) DistinctStudents(ctx context.Context, class, division string) ([]string, error) {
	return r.distinctColumn(ctx,
		"SELECT DISTINCT student_name FROM leave_records WHERE class=? AND division=? ORDER BY student_name",
		class, division)
}

func (r *LeaveRepo) distinctColumn(ctx context.Context, query string, args ...any) ([]string, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, rows.Err()
}
