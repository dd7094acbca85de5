package errors

import "errors"

// Rejection categories. Every Code belongs to exactly one of these.
var (
	// ErrMissingField indicates a required manifest field is absent.
	ErrMissingField = errors.New("missing required field")

	// ErrInvalidLength indicates a string is shorter or longer than allowed.
	ErrInvalidLength = errors.New("invalid length")

	// ErrInvalidType indicates a manifest value has the wrong shape.
	ErrInvalidType = errors.New("invalid type")

	// ErrInvalidValue indicates a value outside its enumeration.
	ErrInvalidValue = errors.New("invalid value")

	// ErrCapacityExceeded indicates an array holds more entries than allowed.
	ErrCapacityExceeded = errors.New("capacity exceeded")

	// ErrPathTraversal indicates a name that would escape its directory.
	ErrPathTraversal = errors.New("path traversal rejected")

	// ErrAPIVersion indicates the declared API window does not fit the device.
	ErrAPIVersion = errors.New("api version incompatible")

	// ErrResourceNotFound indicates a file or resource index entry is missing.
	ErrResourceNotFound = errors.New("resource not found")

	// ErrInternal indicates an allocation or I/O failure unrelated to the manifest.
	ErrInternal = errors.New("internal error")

	// ErrValidation matches every category that rejects the manifest itself.
	ErrValidation = errors.New("validation error")
)
