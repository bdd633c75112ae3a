// Package repository implements the data access layer over the shared
// SQLite store. Sentinel errors defined here let higher layers
// distinguish failure scenarios without inspecting driver error text:
// the driver-specific detection (e.g. a unique-constraint violation)
// happens once, inside the repository that owns the statement.
package repository

import "errors"

// ErrUsernameExists is returned when registering a user whose username
// collides with an existing row of any role. Handlers translate it
// into an HTTP 409 response.
var ErrUsernameExists = errors.New("username already exists")

// ErrNotFound is returned by lookups that matched no row, including
// authentication attempts with credentials that match no user.
var ErrNotFound = errors.New("not found")
