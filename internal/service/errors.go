package service

import "errors"

var (
	ErrEmailExists        = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotAuthenticated   = errors.New("not authenticated")
)
