package service

import (
	"context"
	"time"

	"github.com/nehawork/smart-attendence/internal/model"
	"github.com/nehawork/smart-attendence/internal/repository"
)

// Attendance implements marking and the reporting projections. Marking
// is purely an append: no prior record is ever updated, and a record
// keeps the status it was created with for its lifetime.
type Attendance struct {
	Repo *repository.AttendanceRepo

	now func() time.Time // injectable for tests
}

func NewAttendance(repo *repository.AttendanceRepo) *Attendance {
	return &Attendance{Repo: repo, now: time.Now}
}

// MarkClassPresent appends one Present row per supplied student, dated
// today in the process's local timezone. The batch runs in a single
// transaction, so a failure partway leaves no rows behind. Returns the
// number of students marked.
func (s *Attendance) MarkClassPresent(ctx context.Context, students []model.StudentRef, class, division string) (int, error) {
	today := s.now().Format(model.DateLayout)
	ids := make([]int64, len(students))
	for i, st := range students {
		ids[i] = st.ID
	}
	if err := s.Repo.InsertBatch(ctx, ids, class, division, today, model.StatusPresent); err != nil {
		return 0, err
	}
	return len(students), nil
}

// MarkOne appends a single attendance row for today. An empty status
// defaults to Present; anything other than Present/Absent is rejected.
func (s *Attendance) MarkOne(ctx context.Context, studentID int64, class, division, status string) error {
	if status == "" {
		status = model.StatusPresent
	}
	if status != model.StatusPresent && status != model.StatusAbsent {
		return &ValidationError{Reason: "status must be Present or Absent"}
	}
	today := s.now().Format(model.DateLayout)
	return s.Repo.Insert(ctx, studentID, class, division, today, status)
}

// Summarize returns one row per (date, section) group seen in the full
// history, with Present and Absent counts, most recent date first.
func (s *Attendance) Summarize(ctx context.Context) ([]model.SummaryRow, error) {
	return s.Repo.Summary(ctx)
}

// DetailFor returns the per-student drill-down behind one summary row,
// ordered by name.
func (s *Attendance) DetailFor(ctx context.Context, date string, section model.Section) ([]model.DetailRow, error) {
	return s.Repo.Detail(ctx, date, section)
}

// Filter returns raw attendance rows, optionally narrowed by class
// and/or date ("All" or empty skips a dimension). Filtering is an
// idempotent projection: applying the same filter twice changes nothing.
func (s *Attendance) Filter(ctx context.Context, class, date string) ([]model.Attendance, error) {
	return s.Repo.Filter(ctx, class, date)
}
