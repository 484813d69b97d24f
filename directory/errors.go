package directory

import "errors"

// Validation and protocol errors surfaced by the engine. Exactly one of
// them is returned per failed operation; match with errors.Is. Absent
// record ids surface as store.ErrorNotFound.
var (
	// ErrorInvalidInput: missing name, missing email, or a malformed email.
	ErrorInvalidInput = errors.New("invalid name or email")

	// ErrorDuplicateEmail: the email already belongs to another record.
	ErrorDuplicateEmail = errors.New("email already in use")

	// ErrorPasswordMismatch: the two password fields disagree.
	ErrorPasswordMismatch = errors.New("passwords do not match")

	// ErrorWeakPassword: the password fails the policy check.
	ErrorWeakPassword = errors.New("password does not meet the policy")

	// ErrorWrongOldPassword: old-password verification failed.
	ErrorWrongOldPassword = errors.New("old password is incorrect")
)
