package customerr

// AuthError is returned for a wrong PIN or a missing session.
type AuthError struct {
	Err string
}

func (e *AuthError) Error() string {
	return e.Err
}

type ValidationError struct {
	Err string
}

func (e *ValidationError) Error() string {
	return e.Err
}

type NotFoundError struct {
	Err string
}

func (e *NotFoundError) Error() string {
	return e.Err
}

// ConflictError means the change would break a reference, e.g. deleting a category in use.
type ConflictError struct {
	Err string
}

func (e *ConflictError) Error() string {
	return e.Err
}
