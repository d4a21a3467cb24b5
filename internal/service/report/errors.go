package report

import "errors"

var (
	ErrOrgNotFound   = errors.New("organization not found")
	ErrTakerNotFound = errors.New("taker not found")
	ErrDraftNotFound = errors.New("report draft not found")
	ErrBadProfile    = errors.New("profile code not in organization framework")
)
