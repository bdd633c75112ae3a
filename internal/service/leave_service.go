package service

import (
	"context"
	"time"

	"github.com/nehawork/smart-attendence/internal/model"
	"github.com/nehawork/smart-attendence/internal/repository"
)

// Leave implements leave submission, filtering and the derived lookup
// views. Lookups are computed over leave history only: a student who
// never filed leave does not appear in them even though they are on
// the roster.
type Leave struct {
	Repo *repository.LeaveRepo
}

func NewLeave(repo *repository.LeaveRepo) *Leave {
	return &Leave{Repo: repo}
}

// Submit validates and stores one leave window. The end must be
// strictly after the start: equal timestamps fail. Overlapping or
// duplicate windows for the same student are permitted and not merged.
func (s *Leave) Submit(ctx context.Context, studentName, class, division string, from, to time.Time) (int64, error) {
	if studentName == "" {
		return 0, &ValidationError{Reason: "Please select a student"}
	}
	if !to.After(from) {
		return 0, &ValidationError{Reason: "End date/time must be after start date/time"}
	}
	return s.Repo.Insert(ctx, studentName, class, division,
		from.Format(time.RFC3339), to.Format(time.RFC3339))
}

// ListAll returns the full leave history.
func (s *Leave) ListAll(ctx context.Context) ([]model.Leave, error) {
	return s.Repo.ListAll(ctx)
}

// Filter narrows the history by any combination of class, division and
// student name; each dimension applies independently.
func (s *Leave) Filter(ctx context.Context, class, division, studentName string) ([]model.Leave, error) {
	return s.Repo.Filter(ctx, class, division, studentName)
}

// ClassesWithLeaves returns the sorted classes with leave records.
func (s *Leave) ClassesWithLeaves(ctx context.Context) ([]string, error) {
	return s.Repo.DistinctClasses(ctx)
}

// DivisionsForClass returns the sorted divisions of one class with
// leave records.
func (s *Leave) DivisionsForClass(ctx context.Context, class string) ([]string, error) {
	return s.Repo.DistinctDivisions(ctx, class)
}

// StudentsForSection returns the sorted student names of one section
// with leave records.
func (s *Leave) StudentsForSection(ctx context.Context, class, division string) ([]string, error) {
	return s.Repo.DistinctStudents(ctx, class, division)
}
