package browser

import (
	"errors"
	"fmt"

	"github.com/harrison/rustcheat/internal/sheets"
)

// SheetNotFoundError is returned when a sheet index is out of range.
type SheetNotFoundError struct {
	Index int
}

// Error implements the error interface for SheetNotFoundError.
func (e *SheetNotFoundError) Error() string {
	return fmt.Sprintf("Could not find sheet at index %d", e.Index)
}

// Unwrap lets errors.Is match sheets.ErrSheetNotFound.
func (e *SheetNotFoundError) Unwrap() error {
	return sheets.ErrSheetNotFound
}

// Reasons a section number is rejected
const (
	ReasonNotInteger  = "Section number must be a positive integer"
	ReasonOutOfBounds = "Invalid section number"
)

// InvalidSectionNumberError is returned when a section argument is not a
// positive integer or is outside the sheet's sections.
type InvalidSectionNumberError struct {
	Value  string
	Reason string
}

// Error implements the error interface for InvalidSectionNumberError.
func (e *InvalidSectionNumberError) Error() string {
	return e.Reason
}

// ErrInvalidQuery is returned for an empty search query.
var ErrInvalidQuery = errors.New("search query must not be empty")
