package directory

import (
	"errors"

	"github.com/RobsonGFerrarezi/cadastro-usuarios/store"
)

// UserMessage maps an engine error to its single human-readable message,
// ready for the presentation layer to display. Unknown errors get a
// generic message; details stay in the wrapped error for logs.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrorInvalidInput):
		return "Please provide a name and a valid email."
	case errors.Is(err, ErrorDuplicateEmail):
		return "Could not save. The email may already be in use."
	case errors.Is(err, ErrorPasswordMismatch):
		return "The passwords do not match."
	case errors.Is(err, ErrorWeakPassword):
		return "The password must be at least 5 characters long and contain an upper-case letter and a digit."
	case errors.Is(err, ErrorWrongOldPassword):
		return "The old password is incorrect."
	case errors.Is(err, store.ErrorNotFound):
		return "Record not found."
	default:
		return "Something went wrong. Please try again."
	}
}
