package apperr

import "errors"

var (
	ErrInvalidSelection = errors.New("invalid selection")
	ErrUnknownOption    = errors.New("unknown option")
	ErrCanceled         = errors.New("canceled")
)
