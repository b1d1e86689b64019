package job

import "errors"

var (
	ErrJobNotFound       = errors.New("job not found")
	ErrInvalidTransition = errors.New("invalid job status transition")
	ErrJobNotOpen        = errors.New("job is already delivered or cancelled")
)
