package errors

import (
	"errors"
	"fmt"
)

// Domain errors
var (
	ErrApplicationNotFound     = errors.New("application not found")
	ErrApplicationNotEvaluated = errors.New("application has no credit score yet")
	ErrInvalidApplication      = errors.New("invalid application")
	ErrInvalidLoanAmount       = errors.New("loan amount must be greater than zero")
	ErrMandateNotFound         = errors.New("mandate not found")
	ErrMandateNotPending       = errors.New("mandate is not pending")
	ErrNoCurrentApplication    = errors.New("no application is currently open")
)

// BusinessError represents a business logic error
type BusinessError struct {
	Code    string
	Message string
	Err     error
}

func (e *BusinessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

// NewBusinessError creates a new business error
func NewBusinessError(code, message string, err error) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Error codes
const (
	ErrCodeApplicationNotFound     = "APPLICATION_NOT_FOUND"
	ErrCodeApplicationNotEvaluated = "APPLICATION_NOT_EVALUATED"
	ErrCodeInvalidApplication      = "INVALID_APPLICATION"
	ErrCodeInvalidLoanAmount       = "INVALID_LOAN_AMOUNT"
	ErrCodeMandateNotFound         = "MANDATE_NOT_FOUND"
	ErrCodeMandateNotPending       = "MANDATE_NOT_PENDING"
	ErrCodeNoCurrentApplication    = "NO_CURRENT_APPLICATION"
	ErrCodeDatabaseError           = "DATABASE_ERROR"
	ErrCodeSnapshotError           = "SNAPSHOT_ERROR"
)

// Wrap common errors with business context

func WrapApplicationNotFound(applicationID string) *BusinessError {
	return NewBusinessError(
		ErrCodeApplicationNotFound,
		fmt.Sprintf("Application with ID %s not found", applicationID),
		ErrApplicationNotFound,
	)
}

func WrapApplicationNotEvaluated(applicationID string) *BusinessError {
	return NewBusinessError(
		ErrCodeApplicationNotEvaluated,
		fmt.Sprintf("Application %s must be evaluated before a decision", applicationID),
		ErrApplicationNotEvaluated,
	)
}

func WrapInvalidApplication(reason string) *BusinessError {
	return NewBusinessError(
		ErrCodeInvalidApplication,
		reason,
		ErrInvalidApplication,
	)
}

func WrapInvalidLoanAmount(amount string) *BusinessError {
	return NewBusinessError(
		ErrCodeInvalidLoanAmount,
		fmt.Sprintf("Invalid loan amount: %s", amount),
		ErrInvalidLoanAmount,
	)
}

func WrapMandateNotFound(mandateID string) *BusinessError {
	return NewBusinessError(
		ErrCodeMandateNotFound,
		fmt.Sprintf("Mandate with ID %s not found", mandateID),
		ErrMandateNotFound,
	)
}

func WrapMandateNotPending(mandateID, status string) *BusinessError {
	return NewBusinessError(
		ErrCodeMandateNotPending,
		fmt.Sprintf("Mandate %s is %s, only pending mandates accept decisions", mandateID, status),
		ErrMandateNotPending,
	)
}

func WrapDatabaseError(err error) *BusinessError {
	return NewBusinessError(
		ErrCodeDatabaseError,
		"database operation failed",
		err,
	)
}

func WrapSnapshotError(err error) *BusinessError {
	return NewBusinessError(
		ErrCodeSnapshotError,
		"snapshot persistence failed",
		err,
	)
}
