package service

import (
	"context"

	"github.com/nehawork/smart-attendence/internal/model"
	"github.com/nehawork/smart-attendence/internal/repository"
)

// Roster implements student and section management. The section lists
// are derived from the students actually on the roster; there is no
// separately configured list of valid classes or divisions.
type Roster struct {
	Students *repository.StudentRepo
}

func NewRoster(students *repository.StudentRepo) *Roster {
	return &Roster{Students: students}
}

// AddStudent creates a roster entry. Name and image reference are
// required; the image reference is an opaque value owned by the
// external file-storage collaborator. Duplicate names are allowed.
func (s *Roster) AddStudent(ctx context.Context, name, class, division, imagePath string) (int64, error) {
	if name == "" || imagePath == "" {
		return 0, &ValidationError{Reason: "Please fill all fields and upload image"}
	}
	return s.Students.Create(ctx, name, class, division, imagePath)
}

// ListStudents returns every student ordered by name.
func (s *Roster) ListStudents(ctx context.Context) ([]model.Student, error) {
	return s.Students.ListAll(ctx)
}

// ListStudentsBySection returns the (id, name) roster of one section.
func (s *Roster) ListStudentsBySection(ctx context.Context, class, division string) ([]model.StudentRef, error) {
	return s.Students.ListBySection(ctx, class, division)
}

// ListSections returns the distinct (class, division) pairs present on
// the roster, ordered by class then division.
func (s *Roster) ListSections(ctx context.Context) ([]model.Section, error) {
	return s.Students.DistinctSections(ctx)
}

// ListClasses returns the sorted distinct class labels.
func (s *Roster) ListClasses(ctx context.Context) ([]string, error) {
	return s.Students.DistinctClasses(ctx)
}

// ListDivisionsForClass returns the sorted distinct divisions of one class.
func (s *Roster) ListDivisionsForClass(ctx context.Context, class string) ([]string, error) {
	return s.Students.DistinctDivisions(ctx, class)
}
