package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nehawork/smart-attendence/internal/model"
)

func TestAddStudentValidation(t *testing.T) {
	db := newTestDB(t)
	svc := newRoster(t, db)
	ctx := context.Background()

	_, err := svc.AddStudent(ctx, "", "10", "A", "images/asha.png")
	assert.True(t, IsValidation(err))
	assert.EqualError(t, err, "Please fill all fields and upload image")

	_, err = svc.AddStudent(ctx, "Asha", "10", "A", "")
	assert.True(t, IsValidation(err))

	students, err := svc.ListStudents(ctx)
	assert.NoError(t, err)
	assert.Empty(t, students)
}

func TestAddStudentAllowsDuplicateNames(t *testing.T) {
	db := newTestDB(t)
	svc := newRoster(t, db)
	ctx := context.Background()

	id1, err := svc.AddStudent(ctx, "Asha", "10", "A", "images/asha1.png")
	assert.NoError(t, err)
	id2, err := svc.AddStudent(ctx, "Asha", "9", "B", "images/asha2.png")
	assert.NoError(t, err)
	assert.NotEqual(t, id1, id2)

	students, err := svc.ListStudents(ctx)
	assert.NoError(t, err)
	assert.Len(t, students, 2)
}

func TestListStudentsOrderedByName(t *testing.T) {
	db := newTestDB(t)
	svc := newRoster(t, db)
	ctx := context.Background()

	for _, name := range []string{"Zoya", "Asha", "Meera"} {
		_, err := svc.AddStudent(ctx, name, "10", "A", "images/"+name+".png")
		assert.NoError(t, err)
	}

	students, err := svc.ListStudents(ctx)
	assert.NoError(t, err)
	names := make([]string, len(students))
	for i, s := range students {
		names[i] = s.Name
	}
	assert.Equal(t, []string{"Asha", "Meera", "Zoya"}, names)

	refs, err := svc.ListStudentsBySection(ctx, "10", "A")
	assert.NoError(t, err)
	assert.Len(t, refs, 3)
	assert.Equal(t, "Asha", refs[0].Name)
}

func TestSectionProjections(t *testing.T) {
	db := newTestDB(t)
	svc := newRoster(t, db)
	ctx := context.Background()

	seed := []struct{ name, class, division string }{
		{"Asha", "10", "A"},
		{"Meera", "10", "B"},
		{"Ravi", "9", "B"},
		{"Zoya", "10", "A"}, // same section as Asha
	}
	for _, s := range seed {
		_, err := svc.AddStudent(ctx, s.name, s.class, s.division, "images/x.png")
		assert.NoError(t, err)
	}

	sections, err := svc.ListSections(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []model.Section{
		{Class: "10", Division: "A"},
		{Class: "10", Division: "B"},
		{Class: "9", Division: "B"},
	}, sections)

	classes, err := svc.ListClasses(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []string{"10", "9"}, classes) // lexicographic on the label

	divisions, err := svc.ListDivisionsForClass(ctx, "10")
	assert.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, divisions)

	divisions, err = svc.ListDivisionsForClass(ctx, "12")
	assert.NoError(t, err)
	assert.Empty(t, divisions)
}
