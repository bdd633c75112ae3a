package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/nehawork/smart-attendence/internal/model"
)

func addStudent(t *testing.T, roster *Roster, name, class, division string) model.StudentRef {
	t.Helper()
	id, err := roster.AddStudent(context.Background(), name, class, division, "images/"+name+".png")
	if err != nil {
		t.Fatalf("add student %s: %v", name, err)
	}
	return model.StudentRef{ID: id, Name: name}
}

func TestMarkClassPresent(t *testing.T) {
	db := newTestDB(t)
	roster := newRoster(t, db)
	svc := newAttendanceSvc(t, db)
	ctx := context.Background()

	refs := []model.StudentRef{
		addStudent(t, roster, "Asha", "10", "A"),
		addStudent(t, roster, "Meera", "10", "A"),
		addStudent(t, roster, "Zoya", "10", "A"),
	}

	count, err := svc.MarkClassPresent(ctx, refs, "10", "A")
	assert.NoError(t, err)
	assert.Equal(t, 3, count)

	today := time.Now().Format(model.DateLayout)
	records, err := svc.Filter(ctx, "All", "All")
	assert.NoError(t, err)
	assert.Len(t, records, 3)

	seen := map[int64]bool{}
	for _, rec := range records {
		assert.Equal(t, today, rec.Date)
		assert.Equal(t, model.StatusPresent, rec.Status)
		assert.Equal(t, "10", rec.Class)
		assert.Equal(t, "A", rec.Division)
		seen[rec.StudentID] = true
	}
	for _, ref := range refs {
		assert.True(t, seen[ref.ID], "no row for student %d", ref.ID)
	}
}

func TestMarkOneStatus(t *testing.T) {
	db := newTestDB(t)
	roster := newRoster(t, db)
	svc := newAttendanceSvc(t, db)
	ctx := context.Background()

	asha := addStudent(t, roster, "Asha", "10", "A")

	// Empty status defaults to Present.
	assert.NoError(t, svc.MarkOne(ctx, asha.ID, "10", "A", ""))
	assert.NoError(t, svc.MarkOne(ctx, asha.ID, "10", "A", model.StatusAbsent))

	err := svc.MarkOne(ctx, asha.ID, "10", "A", "Late")
	assert.True(t, IsValidation(err))

	records, err := svc.Filter(ctx, "", "")
	assert.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestSummarizeCountsAndOrder(t *testing.T) {
	db := newTestDB(t)
	roster := newRoster(t, db)
	svc := newAttendanceSvc(t, db)
	ctx := context.Background()

	asha := addStudent(t, roster, "Asha", "10", "A")
	meera := addStudent(t, roster, "Meera", "10", "A")
	ravi := addStudent(t, roster, "Ravi", "9", "B")

	day1 := time.Date(2024, 3, 4, 9, 0, 0, 0, time.Local)
	day2 := time.Date(2024, 3, 5, 9, 0, 0, 0, time.Local)

	svc.now = func() time.Time { return day1 }
	assert.NoError(t, svc.MarkOne(ctx, asha.ID, "10", "A", model.StatusPresent))
	assert.NoError(t, svc.MarkOne(ctx, meera.ID, "10", "A", model.StatusAbsent))
	assert.NoError(t, svc.MarkOne(ctx, ravi.ID, "9", "B", model.StatusPresent))

	svc.now = func() time.Time { return day2 }
	_, err := svc.MarkClassPresent(ctx, []model.StudentRef{asha, meera}, "10", "A")
	assert.NoError(t, err)

	summary, err := svc.Summarize(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []model.SummaryRow{
		{Date: "2024-03-05", Section: model.Section{Class: "10", Division: "A"}, Label: "10 - A", Present: 2, Absent: 0},
		{Date: "2024-03-04", Section: model.Section{Class: "10", Division: "A"}, Label: "10 - A", Present: 1, Absent: 1},
		{Date: "2024-03-04", Section: model.Section{Class: "9", Division: "B"}, Label: "9 - B", Present: 1, Absent: 0},
	}, summary)
}

func TestDetailForOrderedByName(t *testing.T) {
	db := newTestDB(t)
	roster := newRoster(t, db)
	svc := newAttendanceSvc(t, db)
	ctx := context.Background()

	zoya := addStudent(t, roster, "Zoya", "10", "A")
	asha := addStudent(t, roster, "Asha", "10", "A")

	day := time.Date(2024, 3, 4, 9, 0, 0, 0, time.Local)
	svc.now = func() time.Time { return day }
	assert.NoError(t, svc.MarkOne(ctx, zoya.ID, "10", "A", model.StatusAbsent))
	assert.NoError(t, svc.MarkOne(ctx, asha.ID, "10", "A", model.StatusPresent))

	detail, err := svc.DetailFor(ctx, "2024-03-04", model.Section{Class: "10", Division: "A"})
	assert.NoError(t, err)
	assert.Equal(t, []model.DetailRow{
		{StudentName: "Asha", Status: model.StatusPresent},
		{StudentName: "Zoya", Status: model.StatusAbsent},
	}, detail)
}

func TestFilterIsIdempotentProjection(t *testing.T) {
	db := newTestDB(t)
	roster := newRoster(t, db)
	svc := newAttendanceSvc(t, db)
	ctx := context.Background()

	asha := addStudent(t, roster, "Asha", "10", "A")
	ravi := addStudent(t, roster, "Ravi", "9", "B")
	assert.NoError(t, svc.MarkOne(ctx, asha.ID, "10", "A", model.StatusPresent))
	assert.NoError(t, svc.MarkOne(ctx, ravi.ID, "9", "B", model.StatusPresent))

	once, err := svc.Filter(ctx, "10", "")
	assert.NoError(t, err)
	twice, err := svc.Filter(ctx, "10", "")
	assert.NoError(t, err)
	assert.Equal(t, once, twice)
	assert.Len(t, once, 1)
	assert.Equal(t, asha.ID, once[0].StudentID)
}

// Full round-trip of the marking flow: roster → sections → mark →
// summary → drill-down.
func TestMarkingRoundTrip(t *testing.T) {
	db := newTestDB(t)
	roster := newRoster(t, db)
	svc := newAttendanceSvc(t, db)
	ctx := context.Background()

	asha := addStudent(t, roster, "Asha", "10", "A")

	sections, err := roster.ListSections(ctx)
	assert.NoError(t, err)
	assert.Contains(t, sections, model.Section{Class: "10", Division: "A"})

	count, err := svc.MarkClassPresent(ctx, []model.StudentRef{asha}, "10", "A")
	assert.NoError(t, err)
	assert.Equal(t, 1, count)

	today := time.Now().Format(model.DateLayout)

	summary, err := svc.Summarize(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []model.SummaryRow{
		{Date: today, Section: model.Section{Class: "10", Division: "A"}, Label: "10 - A", Present: 1, Absent: 0},
	}, summary)

	detail, err := svc.DetailFor(ctx, today, model.Section{Class: "10", Division: "A"})
	assert.NoError(t, err)
	assert.Equal(t, []model.DetailRow{{StudentName: "Asha", Status: model.StatusPresent}}, detail)
}

// A batch that references a student id twice still appends one row per
// entry: marking never deduplicates.
func TestMarkClassPresentNoDeduplication(t *testing.T) {
	db := newTestDB(t)
	roster := newRoster(t, db)
	svc := newAttendanceSvc(t, db)
	ctx := context.Background()

	asha := addStudent(t, roster, "Asha", "10", "A")

	count, err := svc.MarkClassPresent(ctx, []model.StudentRef{asha, asha}, "10", "A")
	assert.NoError(t, err)
	assert.Equal(t, 2, count)

	records, err := svc.Filter(ctx, "", "")
	assert.NoError(t, err)
	assert.Len(t, records, 2)
}
