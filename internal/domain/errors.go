package domain

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// HTTPError is implemented by errors that map onto a response status.
type HTTPError interface {
	error
	StatusCode() int
}

type (
	// ValidationError indicates a bad section selection or malformed request.
	ValidationError struct {
		Message string
	}

	// NotFoundError indicates a document that is missing or not owned by the caller.
	NotFoundError struct {
		Message string
	}

	// UnauthorizedError indicates the request carried no usable identity.
	UnauthorizedError struct {
		Message string
	}

	// RenderTargetMissingError indicates the client export found nothing to rasterize.
	RenderTargetMissingError struct {
		Target string
	}

	// RenderTimeoutError indicates the headless print did not finish in time.
	RenderTimeoutError struct {
		After time.Duration
	}

	// ExportFailure is any other fault in an export pipeline. Stage is safe to
	// show to callers; Err is kept for logs.
	ExportFailure struct {
		Stage string
		Err   error
	}
)

func (e *ValidationError) Error() string   { return e.Message }
func (e *NotFoundError) Error() string     { return e.Message }
func (e *UnauthorizedError) Error() string { return e.Message }

func (e *RenderTargetMissingError) Error() string {
	return fmt.Sprintf("render target %q not found", e.Target)
}

func (e *RenderTimeoutError) Error() string {
	return fmt.Sprintf("render timed out after %s", e.After)
}

func (e *ExportFailure) Error() string {
	if e.Err == nil {
		return "export failed: " + e.Stage
	}
	return fmt.Sprintf("export failed: %s: %v", e.Stage, e.Err)
}

func (e *ExportFailure) Unwrap() error { return e.Err }

func (e *ValidationError) StatusCode() int          { return http.StatusBadRequest }
func (e *NotFoundError) StatusCode() int            { return http.StatusNotFound }
func (e *UnauthorizedError) StatusCode() int        { return http.StatusUnauthorized }
func (e *RenderTargetMissingError) StatusCode() int { return http.StatusUnprocessableEntity }
func (e *RenderTimeoutError) StatusCode() int       { return http.StatusInternalServerError }
func (e *ExportFailure) StatusCode() int            { return http.StatusInternalServerError }

// PublicMessage is the text returned to callers for an error. Export faults
// never leak their cause.
func PublicMessage(err error) string {
	var ef *ExportFailure
	if errors.As(err, &ef) {
		return "export failed: " + ef.Stage
	}
	var he HTTPError
	if errors.As(err, &he) {
		return he.Error()
	}
	return "internal error"
}

// Sentinel errors for errors.Is checks.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
)

func (e *NotFoundError) Is(target error) bool   { return target == ErrNotFound }
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// Invalid builds a ValidationError with a formatted message.
func Invalid(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// DocumentNotFound is returned for both absent and foreign documents so the
// two cases are indistinguishable to callers.
func DocumentNotFound() error {
	return &NotFoundError{Message: "document not found"}
}
