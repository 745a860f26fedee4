package domain

import "errors"

// UnknownUserName is shown for posts whose author does not exist.
const UnknownUserName = "Unknown"

var (
	ErrPostNotFound = errors.New("post not found")
	ErrUserNotFound = errors.New("user not found")
	ErrInvalidPost  = errors.New("invalid post")
)
