package domain

import (
	"sort"
	"strings"
)

// kindError is a sentinel error class. Expected kinds are caller mistakes
// rather than faults, and the logger reports them at warn.
type kindError struct {
	msg      string
	expected bool
}

func (e *kindError) Error() string  { return e.msg }
func (e *kindError) Expected() bool { return e.expected }

var (
	ErrNotFound    error = &kindError{msg: "not found", expected: true}
	ErrValidation  error = &kindError{msg: "validation failed", expected: true}
	ErrStorage     error = &kindError{msg: "image storage failed"}
	ErrPersistence error = &kindError{msg: "persistence failed"}
)

// ValidationError collects field-level messages. An empty field name is a
// form-level message.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

func (e *ValidationError) Add(field, msg string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	if _, ok := e.Fields[field]; !ok {
		e.Fields[field] = msg
	}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		if k == "" {
			parts = append(parts, e.Fields[k])
			continue
		}
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func (e *ValidationError) Expected() bool { return true }
