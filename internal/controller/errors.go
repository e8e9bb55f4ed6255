package controller

import "errors"

// Command failure reasons. A nil error from a command means the command
// succeeded and the session was mutated; any of these means the command was
// rejected and the session is unchanged.
var (
	ErrInvalidEmail     = errors.New("invalid email address")
	ErrWrongCredentials = errors.New("unknown email or wrong password")
	ErrEmailTaken       = errors.New("an account with this email already exists")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
	ErrNoAccount        = errors.New("no authenticated account")
	ErrEmptyProfileName = errors.New("profile name is required")
	ErrDuplicateProfile = errors.New("a profile with this name already exists")
	ErrEmptyLessonField = errors.New("lesson title and time are required")
)
