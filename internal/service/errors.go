package service

import "errors"

// Sentinel errors matched with errors.Is in the controllers to pick the
// response status.
var (
	ErrToolNotFound      = errors.New("tool not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrSectionNotFound   = errors.New("cms section not found")
	ErrAlreadySubscribed = errors.New("already subscribed to this tool")
)
