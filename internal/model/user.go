package model

import "time"

// Role values stored in users.role. The default admin account is
// created at startup; every account registered afterwards is a teacher.
const (
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
)

// User represents an application user record as stored in the
// `users` table. Accounts are create-only: there is no update or
// delete path anywhere in the system.
//
// Fields:
//  ID           – primary key identifier of the user.
//  Username     – unique login name.
//  PasswordHash – bcrypt hashed password.
//  Role         – either "admin" or "teacher".
type User struct {
	ID           int64  // users.id
	Username     string // users.username
	PasswordHash string // users.password_hash
	Role         string // users.role
}

// Teacher is the projection of a user row returned by the teacher
// listing: only the identifier and username are exposed.
type Teacher struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// RefreshToken models an entry in the `refresh_tokens` table. Each
// refresh token belongs to a user and contains metadata for expiry
// and revocation. The plain token is not stored; only its
// SHA-256 hash.
//
// Fields:
//  ID        – primary key identifier.
//  UserID    – owner of the token.
//  TokenHash – SHA-256 hex digest of the token value.
//  ExpiresAt – expiration timestamp of the token.
//  RevokedAt – when the token was revoked (null if still active).
type RefreshToken struct {
	ID        int64      // refresh_tokens.id
	UserID    int64      // refresh_tokens.user_id
	TokenHash string     // refresh_tokens.token_hash
	ExpiresAt time.Time  // refresh_tokens.expires_at
	RevokedAt *time.Time // refresh_tokens.revoked_at (nullable)
}
