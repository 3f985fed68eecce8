package models

import "fmt"

// DataValidationError reports a malformed payload field or an illegal state
// transition (e.g. updating a product that was never persisted). Handlers
// translate it to HTTP 400.
type DataValidationError struct {
	message string
}

// NewDataValidationError creates a DataValidationError with the given message.
func NewDataValidationError(message string) *DataValidationError {
	return &DataValidationError{message: message}
}

func (e *DataValidationError) Error() string {
	return e.message
}

// NotFoundError reports a reference to a product id that does not exist.
// Handlers translate it to HTTP 404.
type NotFoundError struct {
	ID uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Product with id '%d' was not found.", e.ID)
}
