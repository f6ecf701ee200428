package mcdm

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError reports structurally invalid input: empty or ragged
// matrices, criteria/matrix shape mismatches, or pairwise matrices that
// break the reciprocity preconditions. It is raised before any partial
// computation happens.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Reason
}

func validationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// UnsupportedMethodError reports a scoring method name the engine does not
// recognize.
type UnsupportedMethodError struct {
	Method    string
	Supported []string
}

func (e *UnsupportedMethodError) Error() string {
	return fmt.Sprintf("unsupported scoring method %q, supported methods: %s",
		e.Method, strings.Join(e.Supported, ", "))
}

// IsUnsupportedMethod reports whether err is (or wraps) an UnsupportedMethodError.
func IsUnsupportedMethod(err error) bool {
	var target *UnsupportedMethodError
	return errors.As(err, &target)
}
