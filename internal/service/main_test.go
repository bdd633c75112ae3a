package service

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/nehawork/smart-attendence/internal/database"
	"github.com/nehawork/smart-attendence/internal/repository"
)

// testBcryptCost keeps the hashing cheap; correctness does not depend
// on the cost factor.
const testBcryptCost = 4

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newAuth(t *testing.T, db *sql.DB) *Auth {
	t.Helper()
	return NewAuth(repository.NewUserRepo(db), testBcryptCost)
}

func newRoster(t *testing.T, db *sql.DB) *Roster {
	t.Helper()
	return NewRoster(repository.NewStudentRepo(db))
}

func newAttendanceSvc(t *testing.T, db *sql.DB) *Attendance {
	t.Helper()
	return NewAttendance(repository.NewAttendanceRepo(db))
}

func newLeaveSvc(t *testing.T, db *sql.DB) *Leave {
	t.Helper()
	return NewLeave(repository.NewLeaveRepo(db))
}
