package types

import "errors"

// Failure kinds. Every error returned by a fetch or an extractor matches
// exactly one of these with errors.Is.
const (
	ErrMissingInput = Error("missing input")
	ErrFetch        = Error("fetch failed")
	ErrExtraction   = Error("extraction failed")
)

// Error represents a trackfinder failure kind.
type Error string

// Error returns the error as a string.
func (e Error) Error() string { return string(e) }

// ExtractError carries a human readable message for callers plus the kind
// and underlying cause for tests and logs.
type ExtractError struct {
	Kind    Error
	Source  SourceKind
	Message string
	Err     error
}

func (e *ExtractError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Kind.Error()
}

func (e *ExtractError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// NewFetchError wraps a transport failure. The message is the cause's own text.
func NewFetchError(source SourceKind, err error) *ExtractError {
	return &ExtractError{Kind: ErrFetch, Source: source, Message: err.Error(), Err: err}
}

// NewMissingFieldError reports required content that is absent from a page.
func NewMissingFieldError(source SourceKind, message string) *ExtractError {
	return &ExtractError{Kind: ErrExtraction, Source: source, Message: message}
}

// KindOf returns the failure kind of err, or "" when err is not one of ours.
func KindOf(err error) Error {
	for _, kind := range []Error{ErrMissingInput, ErrFetch, ErrExtraction} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return ""
}
