package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/mattn/go-sqlite3"

	"github.com/nehawork/smart-attendence/internal/model"
	"github.com/nehawork/smart-attendence/internal/utils"
)

// UserRepo mirrors the 'users' table.
type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// Create inserts a user with a bcrypt-hashed password and returns its ID.
// A unique-constraint violation on username maps to ErrUsernameExists;
// the extended error code is checked rather than the message text.
func (r *UserRepo) Create(ctx context.Context, username, password, role string, cost int) (int64, error) {
	username = strings.TrimSpace(username)
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (username, password_hash, role) VALUES (?,?,?)",
		username, hash, role)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return 0, ErrUsernameExists
		}
		return 0, err
	}
	return res.LastInsertId()
}

// GetByUsername fetches a user by exact username.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (model.User, error) {
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, username, password_hash, role FROM users WHERE username=? LIMIT 1",
		username).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role)
	if err == sql.ErrNoRows {
		return model.User{}, ErrNotFound
	}
	return u, err
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (model.User, error) {
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, username, password_hash, role FROM users WHERE id=? LIMIT 1",
		id).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role)
	if err == sql.ErrNoRows {
		return model.User{}, ErrNotFound
	}
	return u, err
}

// ListTeachers returns (id, username) for every teacher account. The
// set is small by assumption; there is no pagination.
func (r *UserRepo) ListTeachers(ctx context.Context) ([]model.Teacher, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id, username FROM users WHERE role=? ORDER BY id", model.RoleTeacher)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teachers []model.Teacher
	for rows.Next() {
		var t model.Teacher
		if err := rows.Scan(&t.ID, &t.Username); err != nil {
			return nil, err
		}
		teachers = append(teachers, t)
	}
	return teachers, rows.Err()
}

// EnsureDefaultAdmin creates the bootstrap admin account if no user
// named "admin" exists yet. The check-then-insert runs on every
// startup; if two processes race, the loser's insert fails on the
// unique constraint and is ignored.
func (r *UserRepo) EnsureDefaultAdmin(ctx context.Context, cost int) error {
	_, err := r.GetByUsername(ctx, "admin")
	if err == nil {
		return nil
	}
	if err != ErrNotFound {
		return err
	}
	_, err = r.Create(ctx, "admin", "admin123", model.RoleAdmin, cost)
	if err == ErrUsernameExists {
		return nil
	}
	return err
}
