package question

import "errors"

var (
	ErrNotFound       = errors.New("question not found")
	ErrPositionTaken  = errors.New("a question already occupies that position")
	ErrNoOptions      = errors.New("question needs at least two options")
	ErrUnknownBucket  = errors.New("option weight references a frequency outside the organization's framework")
)
