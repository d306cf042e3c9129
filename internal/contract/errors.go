package contract

import (
	"fmt"
	"strings"
)

type Code string

const (
	CodeMissingField Code = "MISSING_FIELD"
	CodeInvalidType  Code = "INVALID_TYPE"
	CodeInvalidEnum  Code = "INVALID_ENUM"
	CodeOutOfRange   Code = "OUT_OF_RANGE"
)

type FieldError struct {
	Field   string   `json:"field"`
	Code    Code     `json:"code"`
	Message string   `json:"message"`
	Value   any      `json:"value"`
	Allowed []any    `json:"allowed,omitempty"`
	Min     *float64 `json:"min,omitempty"`
	Max     *float64 `json:"max,omitempty"`
}

func (e FieldError) Error() string {
	return e.Message
}

// ValidationError carries every field problem found in one input.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		msgs[i] = fe.Message
	}
	return fmt.Sprintf("invalid customer record: %s", strings.Join(msgs, "; "))
}

// Field returns the error reported for name, if any.
func (e *ValidationError) Field(name string) (FieldError, bool) {
	for _, fe := range e.Errors {
		if fe.Field == name {
			return fe, true
		}
	}
	return FieldError{}, false
}

func missingField(f Field) FieldError {
	return FieldError{
		Field:   f.Name,
		Code:    CodeMissingField,
		Message: fmt.Sprintf("%s is required", f.Name),
	}
}

func invalidType(f Field, value any) FieldError {
	return FieldError{
		Field:   f.Name,
		Code:    CodeInvalidType,
		Message: fmt.Sprintf("%s must be of type %s, got %T", f.Name, f.Kind, value),
		Value:   value,
	}
}

func invalidEnum(f Field, value any) FieldError {
	return FieldError{
		Field:   f.Name,
		Code:    CodeInvalidEnum,
		Message: fmt.Sprintf("%s must be one of %s, got %v", f.Name, formatEnum(f.Enum), formatValue(value)),
		Value:   value,
		Allowed: f.Enum,
	}
}

func outOfRange(f Field, value any) FieldError {
	return FieldError{
		Field:   f.Name,
		Code:    CodeOutOfRange,
		Message: fmt.Sprintf("%s must be between %g and %g, got %v", f.Name, *f.Min, *f.Max, value),
		Value:   value,
		Min:     f.Min,
		Max:     f.Max,
	}
}

func formatEnum(values []any) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = formatValue(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func formatValue(v any) string {
	if s, ok := v.(string); ok {
		return fmt.Sprintf("%q", s)
	}
	return fmt.Sprint(v)
}
