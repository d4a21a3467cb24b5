package taker

import "errors"

var (
	ErrNotFound = errors.New("taker not found")
)
