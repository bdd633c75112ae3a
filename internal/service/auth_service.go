package service

import (
	"context"

	"github.com/nehawork/smart-attendence/internal/model"
	"github.com/nehawork/smart-attendence/internal/repository"
	"github.com/nehawork/smart-attendence/internal/utils"
)

// Auth implements the identity and role operations: credential checks,
// teacher registration and the teacher listing.
type Auth struct {
	Users      *repository.UserRepo
	BcryptCost int
}

func NewAuth(users *repository.UserRepo, bcryptCost int) *Auth {
	return &Auth{Users: users, BcryptCost: bcryptCost}
}

// Authenticate returns the stored role when username and password match
// exactly one user row. Empty input is rejected locally and reported as
// not-found before any lookup happens. There is no rate limiting or
// lockout; any number of attempts is permitted.
func (s *Auth) Authenticate(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", repository.ErrNotFound
	}
	u, err := s.Users.GetByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if !utils.VerifyPassword(u.PasswordHash, password) {
		return "", repository.ErrNotFound
	}
	return u.Role, nil
}

// GetUser loads one user by id. Used by the session endpoints.
func (s *Auth) GetUser(ctx context.Context, id int64) (model.User, error) {
	return s.Users.GetByID(ctx, id)
}

// GetUserByUsername loads one user by username. The login handler uses
// it to pick up the account id for token issuance after Authenticate
// has accepted the credentials.
func (s *Auth) GetUserByUsername(ctx context.Context, username string) (model.User, error) {
	return s.Users.GetByUsername(ctx, username)
}

// RegisterTeacher creates a new teacher account. Missing fields fail
// validation before the store is touched; a duplicate username surfaces
// as repository.ErrUsernameExists.
func (s *Auth) RegisterTeacher(ctx context.Context, username, password string) (int64, error) {
	if username == "" || password == "" {
		return 0, &ValidationError{Reason: "Please fill all fields"}
	}
	return s.Users.Create(ctx, username, password, model.RoleTeacher, s.BcryptCost)
}

// ListTeachers returns every teacher account, full set, no pagination.
func (s *Auth) ListTeachers(ctx context.Context) ([]model.Teacher, error) {
	return s.Users.ListTeachers(ctx)
}
