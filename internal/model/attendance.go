package model

// Attendance status values. A record keeps exactly one status for
// its lifetime; marking is append-only and never rewrites a prior
// row for the same day.
const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
)

// DateLayout is the calendar-day format used for attendance.date.
// The form sorts correctly as a plain string, which the summary and
// filter queries rely on.
const DateLayout = "2006-01-02"

// Attendance represents a row in the `attendance` table. Class and
// division are the denormalized copy captured at marking time, kept
// deliberately so the history reflects what section a student was
// in on that date.
//
// Fields:
//  ID        – primary key identifier.
//  StudentID – reference to students.id (not enforced as a FK).
//  Class     – class label at marking time.
//  Division  – division label at marking time.
//  Date      – calendar day in "YYYY-MM-DD" form.
//  Status    – "Present" or "Absent".
type Attendance struct {
	ID        int64  `json:"id"`         // attendance.id
	StudentID int64  `json:"student_id"` // attendance.student_id
	Class     string `json:"class"`      // attendance.class
	Division  string `json:"division"`   // attendance.division
	Date      string `json:"date"`       // attendance.date
	Status    string `json:"status"`     // attendance.status
}

// SummaryRow is one aggregate line of the attendance report: the
// Present/Absent counts for a (date, section) group. A group with
// no rows of one status reports a zero count, never a missing
// field. The display label travels with the structured section so
// drill-downs never re-parse it.
type SummaryRow struct {
	Date    string  `json:"date"`
	Section Section `json:"section"`
	Label   string  `json:"label"`
	Present int     `json:"present"`
	Absent  int     `json:"absent"`
}

// DetailRow is one line of the per-section drill-down behind a
// summary row.
type DetailRow struct {
	StudentName string `json:"student_name"`
	Status      string `json:"status"`
}
