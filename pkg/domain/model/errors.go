package model

import (
	"errors"
	"fmt"
	"strings"
)

// APIError is an HTTP failure returned by the forge
type APIError struct {
	Status  int
	Method  string
	URL     string
	Message string

	// RateLimited is set when the forge refused the request for exceeding a rate limit
	RateLimited bool
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.URL, e.Status, e.Message)
}

// HTTPStatus returns the HTTP status carried by err, or 0 if there is none
func HTTPStatus(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

// IsRateLimited reports whether err was caused by an exhausted rate limit
func IsRateLimited(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.RateLimited
}

// OperationError is a failure of one target in a bulk operation
type OperationError struct {
	TargetNumber int
	HTTPStatus   int
	Message      string
	Err          error
}

// NewOperationError wraps err as a failure for the target number
func NewOperationError(number int, message string, err error) *OperationError {
	return &OperationError{
		TargetNumber: number,
		HTTPStatus:   HTTPStatus(err),
		Message:      message,
		Err:          err,
	}
}

func (e *OperationError) Error() string {
	msg := fmt.Sprintf("#%d: %s", e.TargetNumber, e.Message)
	if e.HTTPStatus != 0 {
		msg += fmt.Sprintf(" (status %d)", e.HTTPStatus)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

// AggregateError bundles every failure collected from a fan-out batch
type AggregateError struct {
	Errors []*OperationError
}

func (e *AggregateError) Error() string {
	msgs := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("%d operation(s) failed: %s", len(e.Errors), strings.Join(msgs, "; "))
}

func (e *AggregateError) Unwrap() []error {
	errs := make([]error, len(e.Errors))
	for i, err := range e.Errors {
		errs[i] = err
	}
	return errs
}

// TargetNumbers returns the numbers of failed targets in collection order
func (e *AggregateError) TargetNumbers() []int {
	nums := make([]int, len(e.Errors))
	for i, err := range e.Errors {
		nums[i] = err.TargetNumber
	}
	return nums
}
