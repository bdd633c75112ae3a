package model

// Section identifies one classroom group as a structured
// (class, division) pair. Display labels like "10 - A" are built
// from a Section and carried alongside it; a label is never parsed
// back into its parts.
type Section struct {
	Class    string `json:"class"`
	Division string `json:"division"`
}

// Label renders the human-facing form used in summary tables.
func (s Section) Label() string {
	return s.Class + " - " + s.Division
}
