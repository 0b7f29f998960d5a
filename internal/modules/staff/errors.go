package staff

import "errors"

var (
	ErrNotFound    = errors.New("staff user not found")
	ErrDuplicate   = errors.New("username already taken")
	ErrUnknownRole = errors.New("unknown staff role")
)
