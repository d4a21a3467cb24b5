package organization

import "errors"

var (
	ErrNotFound      = errors.New("organization not found")
	ErrSlugTaken     = errors.New("organization slug already in use")
	ErrBadFramework  = errors.New("unknown scoring framework")
	ErrInvalidColor  = errors.New("brand color must be a #rrggbb hex value")
)
