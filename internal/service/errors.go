package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrDuplicateCategory  = errors.New("category already exists")
	ErrNotFound           = errors.New("not found")
)

// ValidationError reports field-level constraint violations. Handlers map
// the fields back onto the originating form.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	sort.Strings(parts)
	return "validation failed: " + strings.Join(parts, "; ")
}

func invalidf(field, format string, args ...any) error {
	return &ValidationError{Fields: map[string]string{field: fmt.Sprintf(format, args...)}}
}
