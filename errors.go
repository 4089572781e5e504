package doctrans

import "fmt"

// TranslationError is the base error type for translation failures.
type TranslationError struct {
	Message string
	Cause   error
}

func (e *TranslationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *TranslationError) Unwrap() error {
	return e.Cause
}

// ServiceError indicates an external translation service failure (timeout,
// transport failure, non-success response). It is fatal to the current
// document translation: no partial output is surfaced.
type ServiceError struct {
	Message   string
	Cause     error
	Retryable bool // Whether the operation can be retried
}

func (e *ServiceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("service error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("service error: %s", e.Message)
}

func (e *ServiceError) Unwrap() error {
	return e.Cause
}

// AdapterError indicates a document adapter failure (malformed or unreadable
// document). It occurs before any batching begins.
type AdapterError struct {
	Message     string
	Cause       error
	ContentType string // The document format that failed to process
}

func (e *AdapterError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("adapter error (%s): %s: %v", e.ContentType, e.Message, e.Cause)
	}
	return fmt.Sprintf("adapter error (%s): %s", e.ContentType, e.Message)
}

func (e *AdapterError) Unwrap() error {
	return e.Cause
}

// CountMismatchError reports that the service returned a different number of
// lines than expected. Realignment repairs the mismatch; this error is only
// surfaced by StrictRealign for callers that prefer failing over silent loss.
type CountMismatchError struct {
	Expected int
	Got      int
}

func (e *CountMismatchError) Error() string {
	return fmt.Sprintf("translation count mismatch: expected %d, got %d", e.Expected, e.Got)
}
