package errors

import "fmt"

var (
	ErrRideNotFound       = fmt.Errorf("ride not found")
	ErrEmptyMessage       = fmt.Errorf("message body is empty")
	ErrUnauthenticated    = fmt.Errorf("no authenticated user")
	ErrUserAlreadyExists  = fmt.Errorf("user already exists")
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")
	ErrInvalidPassword    = fmt.Errorf("password does not meet requirements")
	ErrNoOpenChannel      = fmt.Errorf("no channel is open")
)
