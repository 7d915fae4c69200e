package service

import "errors"

var (
	ErrUnknownField   = errors.New("unknown founder field")
	ErrFounderDeleted = errors.New("founder is flagged for deletion")

	ErrEmptyToken = errors.New("session token is empty")
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidToken        = errors.New("session token is not accepted")
)
