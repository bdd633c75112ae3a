package model

// Leave represents a row in the `leave_records` table. The student
// is referenced by name only, not by id; leave history for two
// students sharing a name is therefore merged when filtering (a
// known limitation carried over from the original data model).
// Timestamps are stored as RFC3339 text.
//
// Fields:
//  ID          – primary key identifier.
//  StudentName – free-text student name.
//  Class       – class label at submission time.
//  Division    – division label at submission time.
//  LeaveFrom   – start of the leave window (RFC3339).
//  LeaveTo     – end of the leave window (RFC3339, strictly after LeaveFrom).
type Leave struct {
	ID          int64  `json:"id"`           // leave_records.id
	StudentName string `json:"student_name"` // leave_records.student_name
	Class       string `json:"class"`        // leave_records.class
	Division    string `json:"division"`     // leave_records.division
	LeaveFrom   string `json:"leave_from"`   // leave_records.leave_from
	LeaveTo     string `json:"leave_to"`     // leave_records.leave_to
}
