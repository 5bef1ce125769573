// Package validator checks the optional query parameters accepted by the API
// and collects every problem into one ValidationErrors value.
package validator

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const DateLayout = "2006-01-02"

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

// ToMap keys messages by field; the first message for a field is kept.
func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v))
	for _, err := range v {
		if _, exists := result[err.Field]; !exists {
			result[err.Field] = err.Message
		}
	}
	return result
}

func (v *ValidationErrors) Add(field, message string) {
	*v = append(*v, ValidationError{Field: field, Message: message})
}

// Err returns nil when nothing was collected, so callers can return it directly.
func (v ValidationErrors) Err() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsValidUUID accepts the canonical 36 character form only.
func IsValidUUID(id string) bool {
	id = strings.TrimSpace(id)
	if len(id) != 36 {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}

func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse(DateLayout, dateStr)
	return date, err == nil
}

// OptionalDate records an error when value is set but not a YYYY-MM-DD date.
func (v *ValidationErrors) OptionalDate(field, value string) {
	if IsEmpty(value) {
		return
	}
	if _, ok := IsValidDate(value); !ok {
		v.Add(field, field+" must be in YYYY-MM-DD format")
	}
}

// OptionalUUID records an error when value is set but not a UUID.
func (v *ValidationErrors) OptionalUUID(field, value, what string) {
	if !IsEmpty(value) && !IsValidUUID(value) {
		v.Add(field, field+" must be a valid "+what+" ID")
	}
}
