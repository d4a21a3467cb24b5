package assessment

import "errors"

var (
	ErrTestNotFound  = errors.New("test not found")
	ErrLinkNotFound  = errors.New("test link not found")
	ErrLinkExhausted = errors.New("test link has no remaining uses")
	ErrTokenExhausted = errors.New("could not generate a unique link token")
)
