package weblog

import "errors"

var (
	// ErrHostCall is returned when the host could not be reached, so nothing was stored or read.
	ErrHostCall = errors.New("host call failed")

	// ErrHostResponseInvalid is returned when a host reply cannot be decoded or carries an unknown status code.
	ErrHostResponseInvalid = errors.New("host response is invalid or unexpected")

	// ErrHostError is returned when the host answered with a 400 or 500 status.
	ErrHostError = errors.New("host returned an error status")
)
