package usecase

import "errors"

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrInternal          = errors.New("internal error")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrCandidateNotFound = errors.New("candidate not found")
	ErrJobNotFound       = errors.New("job not found")
	ErrNoJobsFound       = errors.New("no jobs found")
	ErrUnknownPreset     = errors.New("unknown preset")
	ErrNotEnoughSignal   = errors.New("not enough feedback to derive patterns")
)
