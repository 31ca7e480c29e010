// Package errors provides custom errors for types implementing the URLStorage interface.
package errors

import "fmt"

type (
	StorageNotFoundError struct {
		ID string
	}
	StorageAlreadyExistsError struct {
		ID string
	}
	ContextTimeoutExceededError struct {
		Err error
	}
)

func (e StorageNotFoundError) Error() string {
	return fmt.Sprintf("%s not found in storage", e.ID)
}

func (e StorageAlreadyExistsError) Error() string {
	return fmt.Sprintf("%s already exists", e.ID)
}

func (e ContextTimeoutExceededError) Error() string {
	return fmt.Sprintf("storage call aborted: %v", e.Err)
}

func (e ContextTimeoutExceededError) Unwrap() error {
	return e.Err
}

// StorageFileWriteError is returned when a pair could not be appended to the file storage.
type StorageFileWriteError struct {
	Err error
}

func (e StorageFileWriteError) Error() string {
	return "add to file error: " + e.Err.Error()
}

func (e StorageFileWriteError) Unwrap() error {
	return e.Err
}
