package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
	Key    string // natural key that failed to resolve, if any
}

func (e *NotFoundError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("%s %s not found", e.Entity, e.Key)
	}
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "for this employee and team"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationKind distinguishes a malformed field from an absent one
type ValidationKind string

const (
	InvalidField ValidationKind = "invalid_field"
	MissingField ValidationKind = "missing_field"
)

// ValidationError represents a validation error
type ValidationError struct {
	Kind    ValidationKind
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// LeaderConflictError is returned when a team would end up with two leaders.
// Leader is the display form of the employee currently holding the role; it
// is empty when the conflict was detected by the store's unique index.
type LeaderConflictError struct {
	Team   string
	Leader string
}

func (e *LeaderConflictError) Error() string {
	msg := "team already has a leader"
	if e.Team != "" {
		msg = fmt.Sprintf("team %s already has a leader", e.Team)
	}
	if e.Leader != "" {
		msg += " " + e.Leader
	}
	return msg
}

// HourCapExceededError is returned when an employee's weekly hours would
// exceed the configured cap. Overage is Total - Cap.
type HourCapExceededError struct {
	Employee string
	Cap      float64
	Total    float64
	Overage  float64
}

func (e *HourCapExceededError) Error() string {
	return fmt.Sprintf("employee %s cannot work more than %g hours/week, exceeding by %g", e.Employee, e.Cap, e.Overage)
}

// Entity Not Found Errors
var (
	ErrEmployeeNotFound   = &NotFoundError{Entity: "employee"}
	ErrTeamNotFound       = &NotFoundError{Entity: "team"}
	ErrAssignmentNotFound = &NotFoundError{Entity: "assignment"}
)

// Already Exists Errors
var (
	ErrEmployeeExists   = &AlreadyExistsError{Entity: "employee", Context: "with this employee_id"}
	ErrTeamExists       = &AlreadyExistsError{Entity: "team", Context: "with this name"}
	ErrAssignmentExists = &AlreadyExistsError{Entity: "assignment", Context: "for this employee and team"}
)

// Business Logic Errors
var (
	ErrInvalidAggregationMode = errors.New("invalid payroll aggregation mode")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsLeaderConflict checks if an error is a LeaderConflictError
func IsLeaderConflict(err error) bool {
	var leaderErr *LeaderConflictError
	return errors.As(err, &leaderErr)
}

// IsHourCapExceeded checks if an error is a HourCapExceededError
func IsHourCapExceeded(err error) bool {
	var capErr *HourCapExceededError
	return errors.As(err, &capErr)
}

// NewNotFoundError creates a NotFoundError for an entity and the key that
// failed to resolve
func NewNotFoundError(entity, key string) error {
	return &NotFoundError{Entity: entity, Key: key}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewInvalidFieldError creates a ValidationError for a field with the wrong
// type or an out-of-range value
func NewInvalidFieldError(field, message string) error {
	return &ValidationError{Kind: InvalidField, Field: field, Message: message}
}

// NewMissingFieldError creates a ValidationError for a required field that
// is absent from a write request
func NewMissingFieldError(field string) error {
	return &ValidationError{Kind: MissingField, Field: field, Message: "field is required"}
}

// NewLeaderConflictError creates a LeaderConflictError
func NewLeaderConflictError(team, leader string) error {
	return &LeaderConflictError{Team: team, Leader: leader}
}

// NewHourCapExceededError creates a HourCapExceededError from the would-be
// total and the cap
func NewHourCapExceededError(employee string, cap, total float64) error {
	return &HourCapExceededError{Employee: employee, Cap: cap, Total: total, Overage: total - cap}
}
