package parser

import "fmt"

// ErrorKind identifies why a section could not be recovered.
type ErrorKind int

const (
	// KindMissingTitle means no line exists where the header was expected.
	KindMissingTitle ErrorKind = iota
	// KindInvalidTitleFormat means the header line has no ". " separator.
	KindInvalidTitleFormat
	// KindMissingBody means the section ends before the line following its header.
	KindMissingBody
)

// String returns the string representation of ErrorKind.
func (k ErrorKind) String() string {
	switch k {
	case KindMissingTitle:
		return "missing section title"
	case KindInvalidTitleFormat:
		return "invalid section title format"
	case KindMissingBody:
		return "missing section body"
	default:
		return "unknown"
	}
}

// ParseError reports a section that could not be built.
// Line is the zero-based index of the section's divider line.
type ParseError struct {
	Kind ErrorKind
	Line int
}

// Error implements the error interface for ParseError.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s (section starting at line %d)", e.Kind, e.Line+1)
}

// Is reports whether target is a ParseError of the same kind, so callers
// can match with errors.Is(err, &ParseError{Kind: KindMissingBody}).
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}
