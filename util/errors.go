package util

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is a client-presentable error with the HTTP status it
// should map to at the handler boundary.
type Error struct {
	Message string
	Status  int
}

func (err *Error) Error() string {
	return err.Message
}

var (
	ErrMissingURL         = &Error{Message: "url parameter is required", Status: http.StatusBadRequest}
	ErrInvalidFormat      = &Error{Message: "format must be either video or audio", Status: http.StatusBadRequest}
	ErrExtractionFailed   = &Error{Message: "extraction backend could not fetch this url", Status: http.StatusBadRequest}
	ErrOutputMissing      = &Error{Message: "downloaded file could not be located", Status: http.StatusInternalServerError}
	ErrUnprocessableMedia = &Error{Message: "downloaded file could not be decoded", Status: http.StatusInternalServerError}
	ErrTranscodeFailed    = &Error{Message: "video post-processing failed", Status: http.StatusInternalServerError}
)

// FallbackError reports that both the primary extraction and the
// platform fallback failed, naming both causes.
type FallbackError struct {
	Primary  error
	Fallback error
}

func (err *FallbackError) Error() string {
	return fmt.Sprintf(
		"extraction failed (%v) and fallback failed (%v)",
		err.Primary, err.Fallback,
	)
}

// StatusFor maps any pipeline error onto its HTTP status.
// Unclassified errors are server faults.
func StatusFor(err error) int {
	var typed *Error
	if errors.As(err, &typed) {
		return typed.Status
	}
	var fallback *FallbackError
	if errors.As(err, &fallback) {
		return http.StatusInternalServerError
	}
	return http.StatusInternalServerError
}
