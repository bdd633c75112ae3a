package model

// Student represents a roster entry as stored in the `students`
// table. Rows are created by admin action and never updated or
// deleted. Names carry no uniqueness constraint: two different
// students may share a name and nothing in the system
// disambiguates them.
//
// Fields:
//  ID        – primary key identifier.
//  Name      – student name (free text, duplicates allowed).
//  Class     – class label, e.g. "9".."12".
//  Division  – division label, e.g. "A".."C".
//  ImagePath – opaque reference produced by the external image
//              storage collaborator; never interpreted here.
type Student struct {
	ID        int64  `json:"id"`         // students.id
	Name      string `json:"name"`       // students.name
	Class     string `json:"class"`      // students.class
	Division  string `json:"division"`   // students.division
	ImagePath string `json:"image_path"` // students.image_path
}

// StudentRef is the (id, name) projection used when marking a whole
// class: the caller supplies the roster slice it was shown.
type StudentRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
