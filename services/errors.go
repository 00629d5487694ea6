package services

import "errors"

// Sentinel errors surfaced to the client. The credential error is shared by
// "no such account" and "wrong password" so callers cannot enumerate accounts.
var (
	ErrInvalidCredentials = errors.New("Login with correct credentials.")
	ErrEmailTaken         = errors.New("Sorry, a user with this email already exists")
	ErrPhoneTaken         = errors.New("Sorry, a user with this phone number already exists")
	ErrUserNotFound       = errors.New("User not found")
)
