package handler

import (
	"database/sql"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/nehawork/smart-attendence/internal/config"
	"github.com/nehawork/smart-attendence/internal/database"
	"github.com/nehawork/smart-attendence/internal/repository"
	"github.com/nehawork/smart-attendence/internal/service"
)

func testConfig() config.Config {
	return config.Config{
		Env:            "test",
		Port:           "0",
		JWTSecret:      "test-secret",
		AccessTTLMin:   15,
		RefreshTTLDays: 7,
		BcryptCost:     4,
	}
}

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// testEnv wires a full handler stack over a throwaway database.
type testEnv struct {
	echo *echo.Echo
	db   *sql.DB

	auth       *AuthHandler
	roster     *RosterHandler
	attendance *AttendanceHandler
	leave      *LeaveHandler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := newTestDB(t)
	cfg := testConfig()

	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	students := repository.NewStudentRepo(db)
	attendance := repository.NewAttendanceRepo(db)
	leaves := repository.NewLeaveRepo(db)

	return &testEnv{
		echo:       echo.New(),
		db:         db,
		auth:       NewAuthHandler(cfg, service.NewAuth(users, cfg.BcryptCost), tokens),
		roster:     NewRosterHandler(service.NewRoster(students)),
		attendance: NewAttendanceHandler(service.NewAttendance(attendance)),
		leave:      NewLeaveHandler(service.NewLeave(leaves)),
	}
}

// request builds an echo context around a recorded request. The target
// may carry a query string; JSON bodies go in as-is.
func (env *testEnv) request(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return env.echo.NewContext(req, rec), rec
}

func (env *testEnv) addStudent(t *testing.T, name, class, division string) int64 {
	t.Helper()
	id, err := env.roster.Roster.AddStudent(t.Context(), name, class, division, "images/"+name+".png")
	if err != nil {
		t.Fatalf("add student %s: %v", name, err)
	}
	return id
}
