package application

import "errors"

// Stable error kinds surfaced by the services. Messages match the public
// API contract verbatim; handlers map each to an HTTP status and a
// machine-readable kind.
var (
	ErrUnauthorized = errors.New("Unauthorized")

	ErrMissingEmail    = errors.New("Missing email")
	ErrMissingPassword = errors.New("Missing password")
	ErrAlreadyExist    = errors.New("Already exist")

	ErrMissingName      = errors.New("Missing name")
	ErrMissingType      = errors.New("Missing type")
	ErrMissingData      = errors.New("Missing data")
	ErrParentNotFound   = errors.New("Parent not found")
	ErrParentNotAFolder = errors.New("Parent is not a folder")

	ErrNotFound  = errors.New("Not found")
	ErrIsAFolder = errors.New("A folder doesn't have content")
)
