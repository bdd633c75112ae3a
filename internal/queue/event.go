// Package queue defines message payloads exchanged over the message broker.
package queue

// AttendanceMarkedEvent is published when a class has been marked for
// the day. It contains enough information for downstream consumers to
// log or notify without querying the primary database.
type AttendanceMarkedEvent struct {
	Class    string `json:"class"`
	Division string `json:"division"`
	Date     string `json:"date"`
	Count    int    `json:"count"`
	MarkedAt string `json:"marked_at"`
}
