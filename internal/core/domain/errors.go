package domain

import "errors"

// Authentication and authorization.
var (
	ErrTokenMissing       = errors.New("missing access token")
	ErrTokenExpired       = errors.New("access token expired")
	ErrTokenMalformed     = errors.New("access token invalid")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrForbidden          = errors.New("access forbidden")
	ErrTooManyAttempts    = errors.New("too many login attempts")
)

// Validation.
var ErrInvalidRole = errors.New("invalid role")

// Persistence lookups.
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrUserExists       = errors.New("user already exists")
	ErrProductNotFound  = errors.New("product not found")
	ErrDrinkNotFound    = errors.New("drink not found")
	ErrCategoryNotFound = errors.New("category not found")
)
