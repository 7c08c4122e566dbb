package common

import "errors"

// Business logic errors
var (
	// General errors
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")

	// Family data errors
	ErrMemberNotFound = errors.New("family member not found")
	ErrEventNotFound  = errors.New("event not found")
	ErrPhotoNotFound  = errors.New("photo not found")
	ErrMemoryNotFound = errors.New("memory not found")

	// Upload errors
	ErrStorageUpload   = errors.New("object storage upload failed")
	ErrMetadataWrite   = errors.New("metadata write failed")
	ErrFileTooLarge    = errors.New("file too large")
	ErrUnsupportedType = errors.New("unsupported file type")

	// Auth errors
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserAlreadyExists  = errors.New("user already exists")
)
