package domain

import "errors"

// Authentication and authorization failures. Every one is terminal for the
// request that produced it.
var (
	ErrMissingCredentials    = errors.New("missing credentials")
	ErrUserNotFound          = errors.New("user not found")
	ErrInvalidPassword       = errors.New("invalid password")
	ErrInvalidOrMissingToken = errors.New("invalid or missing token")
	ErrExpiredToken          = errors.New("expired token")
	ErrForbidden             = errors.New("access forbidden")
)

// Catalog failures.
var (
	ErrInvalidID       = errors.New("invalid id")
	ErrGardenNotFound  = errors.New("garden not found")
	ErrSpeciesNotFound = errors.New("species not found")
	ErrVideoNotFound   = errors.New("video not found")
	ErrPointNotFound   = errors.New("point of interest not found")
)
