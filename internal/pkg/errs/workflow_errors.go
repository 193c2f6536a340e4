package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateNumber is the sentinel for delivery order number collisions.
	ErrDuplicateNumber = errors.New("number already exists")

	// ErrForbiddenDepartment is the sentinel for transitions the acting
	// department is not allowed to perform.
	ErrForbiddenDepartment = errors.New("department is not allowed to act")

	// ErrAlreadyTerminal is the sentinel for transitions requested on a
	// completed or rejected delivery order.
	ErrAlreadyTerminal = errors.New("delivery order is in a terminal state")

	// ErrStorageConflict is the sentinel for conditional writes rejected by
	// the store. Callers may retry after re-reading current state; the engine
	// itself never retries writes.
	ErrStorageConflict = errors.New("storage conflict")
)

// DuplicateNumberError indicates a create collided with an existing delivery order number.
type DuplicateNumberError struct {
	Number string
	Cause  error
}

// NewDuplicateNumberError creates a DuplicateNumberError for the colliding number.
func NewDuplicateNumberError(number string) *DuplicateNumberError {
	return &DuplicateNumberError{Number: number}
}

// NewDuplicateNumberErrorWithCause creates a DuplicateNumberError wrapping a cause.
func NewDuplicateNumberErrorWithCause(number string, cause error) *DuplicateNumberError {
	return &DuplicateNumberError{Number: number, Cause: cause}
}

func (e *DuplicateNumberError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrDuplicateNumber, sanitize(e.Number), sanitize(e.Cause.Error()))
	}
	return fmt.Sprintf("%s: %s", ErrDuplicateNumber, sanitize(e.Number))
}

func (e *DuplicateNumberError) Unwrap() error {
	return ErrDuplicateNumber
}

// ForbiddenDepartmentError indicates the acting department cannot perform the
// requested transition from the delivery order's current state or location.
type ForbiddenDepartmentError struct {
	Department string
	Cause      error
}

// NewForbiddenDepartmentError creates a ForbiddenDepartmentError for the acting department.
func NewForbiddenDepartmentError(department string) *ForbiddenDepartmentError {
	return &ForbiddenDepartmentError{Department: department}
}

// NewForbiddenDepartmentErrorWithCause creates a ForbiddenDepartmentError wrapping a cause.
func NewForbiddenDepartmentErrorWithCause(department string, cause error) *ForbiddenDepartmentError {
	return &ForbiddenDepartmentError{Department: department, Cause: cause}
}

func (e *ForbiddenDepartmentError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrForbiddenDepartment, sanitize(e.Department), sanitize(e.Cause.Error()))
	}
	return fmt.Sprintf("%s: %s", ErrForbiddenDepartment, sanitize(e.Department))
}

func (e *ForbiddenDepartmentError) Unwrap() error {
	return ErrForbiddenDepartment
}

// AlreadyTerminalError indicates a transition was requested on a delivery order
// that is already completed or rejected.
type AlreadyTerminalError struct {
	Stage string
	Cause error
}

// NewAlreadyTerminalError creates an AlreadyTerminalError for the terminal stage.
func NewAlreadyTerminalError(stage string) *AlreadyTerminalError {
	return &AlreadyTerminalError{Stage: stage}
}

// NewAlreadyTerminalErrorWithCause creates an AlreadyTerminalError wrapping a cause.
func NewAlreadyTerminalErrorWithCause(stage string, cause error) *AlreadyTerminalError {
	return &AlreadyTerminalError{Stage: stage, Cause: cause}
}

func (e *AlreadyTerminalError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrAlreadyTerminal, sanitize(e.Stage), sanitize(e.Cause.Error()))
	}
	return fmt.Sprintf("%s: %s", ErrAlreadyTerminal, sanitize(e.Stage))
}

func (e *AlreadyTerminalError) Unwrap() error {
	return ErrAlreadyTerminal
}

// StorageConflictError indicates the store rejected a conditional write, for
// example when the delivery order stage changed between read and update.
type StorageConflictError struct {
	ParamName string
	Cause     error
}

// NewStorageConflictError creates a StorageConflictError for the named object.
func NewStorageConflictError(paramName string) *StorageConflictError {
	return &StorageConflictError{ParamName: paramName}
}

// NewStorageConflictErrorWithCause creates a StorageConflictError wrapping a cause.
func NewStorageConflictErrorWithCause(paramName string, cause error) *StorageConflictError {
	return &StorageConflictError{ParamName: paramName, Cause: cause}
}

func (e *StorageConflictError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrStorageConflict, sanitize(e.ParamName), sanitize(e.Cause.Error()))
	}
	return fmt.Sprintf("%s: %s", ErrStorageConflict, sanitize(e.ParamName))
}

func (e *StorageConflictError) Unwrap() error {
	return ErrStorageConflict
}
