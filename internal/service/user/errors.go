package user

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrEmailTaken       = errors.New("email already registered")
	ErrMemberNotFound   = errors.New("membership not found")
	ErrAlreadyMember    = errors.New("user is already a member of this organization")
	ErrInvalidRole      = errors.New("invalid membership role")
	ErrLastOwner        = errors.New("organization must keep at least one owner")
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")
)
