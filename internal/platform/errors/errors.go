package apperrors

import "errors"

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrInvalidRange    = errors.New("invalid range")
	ErrMalformedRecord = errors.New("malformed record")
)
