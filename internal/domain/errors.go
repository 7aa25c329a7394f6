package domain

import "errors"

var (
	ErrUserNotFound = errors.New("user not found")
	ErrBlogNotFound = errors.New("blog not found")
	ErrEmailInUse   = errors.New("email already in use")

	// ErrPasswordTooLong is returned for passwords over MaxPasswordBytes.
	ErrPasswordTooLong = errors.New("password must be at most 72 bytes")

	// login failures
	ErrInvalidName       = errors.New("invalid name")
	ErrIncorrectPassword = errors.New("incorrect password")

	// ErrUnauthenticated is returned when no caller is given or the caller no longer exists.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrOwnerNotFound is returned when the configured fixed blog owner does not exist.
	ErrOwnerNotFound = errors.New("configured blog owner not found")
)
