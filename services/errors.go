package services

import "errors"

// ValidationError is a missing or malformed client field. It never reaches
// the store.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string { return e.Msg }

func invalid(field, msg string) error {
	return &ValidationError{Field: field, Msg: msg}
}

// StorageError wraps any persistence failure. The message of the underlying
// error is passed through untouched.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return e.Err.Error() }
func (e *StorageError) Unwrap() error { return e.Err }

func storageErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}

var (
	ErrMenuNotFound       = errors.New("menu item not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
