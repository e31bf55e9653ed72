// Package common defines shared sentinel errors used across the TraceSnap
// core. Callers should use errors.Is to match these values.
package common

import "errors"

var (

	// validation errors (missing/empty required field)
	ErrorValidation = errors.New("validation error")

	// auth-specific errors
	ErrorDuplicateUsername  = errors.New("username already exists")
	ErrorInvalidCredentials = errors.New("invalid credentials")

	// session-specific errors (mutation attempted with no active session)
	ErrorUnauthenticated = errors.New("not logged in")

	// ledger-specific errors
	ErrorNotFound = errors.New("not found")
)
