package lead

import "errors"

var (
	ErrLeadNotFound = errors.New("lead not found")
	ErrEmailExists  = errors.New("lead email must be unique")
	ErrInvalidData  = errors.New("invalid lead data")
)
