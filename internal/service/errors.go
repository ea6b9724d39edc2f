package service

import (
	"errors"
	"fmt"

	"go-tenant-user-api/internal/validation"
)

// UnauthorizedMessage is part of the external contract and must not drift.
const UnauthorizedMessage = "This action is unauthorized."

type UnauthorizedError struct {
	Permission string
}

func (e *UnauthorizedError) Error() string { return UnauthorizedMessage }

type ValidationError struct {
	Violations validation.Violations
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %v", e.Violations.Fields())
}

type NotFoundError struct {
	Model string
	ID    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no query results for model [%s] %s", e.Model, e.ID)
}

func IsUnauthorized(err error) bool {
	var ue *UnauthorizedError
	return errors.As(err, &ue)
}

func IsNotFound(err error) bool {
	var ne *NotFoundError
	return errors.As(err, &ne)
}
