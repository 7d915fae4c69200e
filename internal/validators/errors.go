package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidID         = errors.New("invalid founder id")
	ErrInvalidEmail      = errors.New("invalid email address")
	ErrInvalidYearJoined = errors.New("invalid year joined")
	ErrInvalidFlag       = errors.New("invalid flag value")
	ErrValueTooLong      = errors.New("field value too long")
)
