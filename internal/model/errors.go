package model

import "errors"

var (
	// ErrNotFound is returned by stores when no matching row exists.
	ErrNotFound = errors.New("not found")
	// ErrEmailTaken is returned by the user store when an insert hits the
	// unique constraint on users.email.
	ErrEmailTaken = errors.New("email already taken")
)
