// Copyright (C) 2026 Ioannis Torakis <john.torakis@gmail.com>
// SPDX-License-Identifier: Elastic-2.0
//
// Licensed under the Elastic License 2.0.
// You may obtain a copy of the license at:
// https://www.elastic.co/licensing/elastic-license
//
// Use, modification, and redistribution permitted under the terms of the license,
// except for providing this software as a commercial service or product.

package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases - these can be checked with errors.Is()
var (
	ErrSessionExpired     = errors.New("session expired, please log in again")
	ErrPersonNotFound     = errors.New("person not found")
	ErrRequestNotFound    = errors.New("access request not found")
	ErrAssignmentNotFound = errors.New("assignment not found")
	ErrNoApprovedPeople   = errors.New("no approved people available to select")
	ErrValidation         = errors.New("validation failed")
	ErrConfigurationError = errors.New("configuration error")
)

// APIError provides structured error information for personnel API calls
type APIError struct {
	Operation string // The operation that failed (e.g., "create person", "delete assignment")
	Endpoint  string // The endpoint involved in the operation
	Err       error  // The underlying error
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Endpoint != "" {
		return fmt.Sprintf("failed to %s (%s): %v", e.Operation, e.Endpoint, e.Err)
	}
	return fmt.Sprintf("failed to %s: %v", e.Operation, e.Err)
}

// Unwrap returns the underlying error for error wrapping/unwrapping
func (e *APIError) Unwrap() error {
	return e.Err
}

// Is checks if the error matches a target error (for sentinel error checking)
func (e *APIError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// NewAPIError creates a new APIError with context
func NewAPIError(operation, endpoint string, err error) *APIError {
	return &APIError{
		Operation: operation,
		Endpoint:  endpoint,
		Err:       err,
	}
}

// WrapAPIError wraps an error with personnel API operation context
func WrapAPIError(operation, endpoint string, err error) error {
	if err == nil {
		return nil
	}

	// If it's already an APIError, don't double-wrap
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return err
	}

	return NewAPIError(operation, endpoint, err)
}
