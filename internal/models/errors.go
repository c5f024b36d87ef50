package models

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoHistory is returned by back navigation when nothing was visited before.
	ErrNoHistory = errors.New("no previous page available")

	// ErrNoCheckpoint means a resume was requested but nothing is saved.
	ErrNoCheckpoint = errors.New("no checkpoint saved")

	// ErrNoPlan is returned for selection events before a diet plan exists.
	ErrNoPlan = errors.New("no diet plan generated yet")
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError collects user input problems, one entry per offending field.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// Err returns nil when no field was added.
func (e *ValidationError) Err() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// FieldNames lists the offending fields in the order they were reported.
func (e *ValidationError) FieldNames() []string {
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, f.Field)
	}
	return names
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NewValidationError is a shortcut for a single-field failure.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}

// DataIntegrityError marks catalog data missing for a condition/status pair.
// It is a deployment defect; plan generation must stop.
type DataIntegrityError struct {
	ConditionType ConditionType
	Status        StatusTier
	Detail        string
}

func (e *DataIntegrityError) Error() string {
	return fmt.Sprintf("catalog data missing for %s/%s: %s", e.ConditionType, e.Status, e.Detail)
}
