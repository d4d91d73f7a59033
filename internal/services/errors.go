package services

import "errors"

// Error taxonomy shared by the services and mapped onto HTTP statuses by
// the handlers. Storage implementations translate their driver errors into
// these sentinels so callers can match with errors.Is.
var (
	ErrNotFound     = errors.New("record not found")
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("concurrent update conflict")
	ErrUnavailable  = errors.New("storage unavailable")
)
