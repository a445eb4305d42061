package services

import "errors"

// Sentinel errors the HTTP layer maps onto status codes. Services wrap
// them with fmt.Errorf("%w: ...") so handlers can test with errors.Is
// while the message stays specific.
var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
)
