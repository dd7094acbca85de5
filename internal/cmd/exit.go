// Package cmd provides command implementations for the bms CLI.
package cmd

// Exit codes.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitValidationError indicates a manifest or config was rejected.
	ExitValidationError = 2

	// ExitNotFound indicates a package, manifest, or resource is missing.
	ExitNotFound = 5

	// ExitAPIVersion indicates the package API window does not fit the device.
	ExitAPIVersion = 6

	// ExitInternal indicates an internal failure; retrying may succeed.
	ExitInternal = 7
)

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitValidationError:
		return "Validation Error"
	case ExitNotFound:
		return "Not Found"
	case ExitAPIVersion:
		return "API Version Mismatch"
	case ExitInternal:
		return "Internal Error"
	default:
		return "Unknown"
	}
}
