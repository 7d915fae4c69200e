package adapter

import "errors"

// Sentinel errors returned by [ServerAdapter] implementations. HTTP status
// errors are produced by mapHTTPError; the others describe the body of a
// successful (2xx) response.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")

	// ErrRejected is returned when the server answers with its "0" failure
	// sentinel or reports an unsuccessful photo upload.
	ErrRejected = errors.New("server rejected the request")

	// ErrMalformedResponse is returned when a response body cannot be
	// decoded into the expected shape.
	ErrMalformedResponse = errors.New("malformed server response")

	// ErrNoPhoto is returned when the server has no photo for a key.
	ErrNoPhoto = errors.New("server has no photo")
)
