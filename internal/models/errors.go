package models

import "fmt"

// ErrorType represents different categories of errors
type ErrorType int

const (
	ErrQuery ErrorType = iota
	ErrParse
	ErrInspect
	ErrInvalidConfig
)

// String returns the string representation of ErrorType
func (e ErrorType) String() string {
	switch e {
	case ErrQuery:
		return "Query"
	case ErrParse:
		return "Parse"
	case ErrInspect:
		return "Inspect"
	case ErrInvalidConfig:
		return "InvalidConfig"
	default:
		return "Unknown"
	}
}

// RPMQError represents an error while querying or inspecting packages
type RPMQError struct {
	Type    ErrorType
	Package string
	Err     error
}

// Error implements the error interface
func (e *RPMQError) Error() string {
	if e.Package != "" {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Package, e.Err)
	}
	return fmt.Sprintf("[%s] %v", e.Type, e.Err)
}

// Unwrap returns the wrapped error
func (e *RPMQError) Unwrap() error {
	return e.Err
}
