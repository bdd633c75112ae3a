package repository

import (
	"context"
	"database/sql"

	"github.com/nehawork/smart-attendence/internal/model"
)

// StudentRepo provides create and read access to the 'students' table.
// Students are create-only; there is no update or delete statement in
// this repository on purpose.
type StudentRepo struct{ DB *sql.DB }

func NewStudentRepo(db *sql.DB) *StudentRepo { return &StudentRepo{DB: db} }

// Create inserts a student and returns its ID. Duplicate names are
// allowed; the table has no uniqueness constraint.
func (r *StudentRepo) Create(ctx context.Context, name, class, division, imagePath string) (int64, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO students (name, class, division, image_path) VALUES (?,?,?,?)",
		name, class, division, imagePath)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListAll returns every student ordered by name.
func (r *StudentRepo) ListAll(ctx context.Context) ([]model.Student, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id, name, class, division, image_path FROM students ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []model.Student
	for rows.Next() {
		var s model.Student
		if err := rows.Scan(&s.ID, &s.Name, &s.Class, &s.Division, &s.ImagePath); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

// ListBySection returns the (id, name) roster of one section ordered by
// name. Exact match on both labels.
func (r *StudentRepo) ListBySection(ctx context.Context, class, division string) ([]model.StudentRef, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id, name FROM students WHERE class=? AND division=? ORDER BY name",
		class, division)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var refs []model.StudentRef
	for rows.Next() {
		var ref model.StudentRef
		if err := rows.Scan(&ref.ID, &ref.Name); err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, rows.Err()
}

// DistinctSections returns the (class, division) pairs actually present
// among students, ordered by class then division. This is the
// authoritative list of sections the rest of the system offers for
// selection; there is no separately configured list.
func (r *StudentRepo) DistinctSections(ctx context.Context) ([]model.Section, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT DISTINCT class, division FROM students ORDER BY class, division")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sections []model.Section
	for rows.Next() {
		var sec model.Section
		if err := rows.Scan(&sec.Class, &sec.Division); err != nil {
			return nil, err
		}
		sections = append(sections, sec)
	}
	return sections, rows.Err()
}

// DistinctClasses returns the sorted set of class labels present among
// students.
func (r *StudentRepo) DistinctClasses(ctx context.Context) ([]string, error) {
	return r.distinctColumn(ctx, "SELECT DISTINCT class FROM students ORDER BY class")
}

// DistinctDivisions returns the sorted set of division labels for one
// class.
func (r *StudentRepo) DistinctDivisions(ctx context.Context, class string) ([]string, error) {
	return r.distinctColumn(ctx,
		"SELECT DISTINCT division FROM students WHERE class=? ORDER BY division", class)
}

func (r *StudentRepo) distinctColumn(ctx context.Context, query string, args ...any) ([]string, error) {
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
