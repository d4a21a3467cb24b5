package submission

import "errors"

var (
	ErrLinkNotFound    = errors.New("test link not found")
	ErrLinkExhausted   = errors.New("test link has no remaining uses")
	ErrNotFound        = errors.New("submission not found")
	ErrCompleted       = errors.New("submission is already completed")
	ErrQuestionNotFound = errors.New("question not found in this organization")
	ErrOptionNotFound  = errors.New("option not found on this question")
	ErrDuplicateAnswer = errors.New("question already answered in this submission")
	ErrConflict        = errors.New("submission was modified concurrently, retry")
	ErrInvalidPhone    = errors.New("invalid phone number")
)
