package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
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
	Context string // Additional context like "in team"
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

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// CapacityError represents a roster size violation
type CapacityError struct {
	Limit int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("cannot have more than %d players", e.Limit)
}

// Is enables errors.Is() comparison for CapacityError
func (e *CapacityError) Is(target error) bool {
	t, ok := target.(*CapacityError)
	if !ok {
		return false
	}
	return e.Limit == t.Limit
}

// BudgetError represents an insufficient budget for a roster change
type BudgetError struct {
	Budget float64
	Price  float64
}

func (e *BudgetError) Error() string {
	return fmt.Sprintf("insufficient budget: have %.1f, need %.1f", e.Budget, e.Price)
}

// InvalidStateError represents an illegal lifecycle transition
type InvalidStateError struct {
	Message string
}

func (e *InvalidStateError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrPlayerNotFound   = &NotFoundError{Entity: "player"}
	ErrTeamNotFound     = &NotFoundError{Entity: "team"}
	ErrGameWeekNotFound = &NotFoundError{Entity: "game week"}
	ErrPlayerNotInTeam  = &NotFoundError{Entity: "player in team"}
)

// Roster Rule Errors
var (
	ErrPlayerAlreadyInTeam = &AlreadyExistsError{Entity: "player", Context: "in team"}
)

// GameWeek State Errors
var (
	ErrGameWeekCompleted = &InvalidStateError{Message: "cannot activate a completed game week"}
	ErrGameWeekNotActive = &InvalidStateError{Message: "cannot complete an inactive game week"}
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

// IsCapacity checks if an error is a CapacityError
func IsCapacity(err error) bool {
	var capacityErr *CapacityError
	return errors.As(err, &capacityErr)
}

// IsBudget checks if an error is a BudgetError
func IsBudget(err error) bool {
	var budgetErr *BudgetError
	return errors.As(err, &budgetErr)
}

// IsInvalidState checks if an error is an InvalidStateError
func IsInvalidState(err error) bool {
	var stateErr *InvalidStateError
	return errors.As(err, &stateErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewCapacityError creates a new CapacityError with the roster limit
func NewCapacityError(limit int) error {
	return &CapacityError{Limit: limit}
}

// NewBudgetError creates a new BudgetError from the remaining budget and requested price
func NewBudgetError(budget, price float64) error {
	return &BudgetError{Budget: budget, Price: price}
}

// NewInvalidStateError creates a new InvalidStateError
func NewInvalidStateError(message string) error {
	return &InvalidStateError{Message: message}
}
