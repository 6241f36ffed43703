package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidRequest indicates a malformed lookup request, such as
	// specifying both a text query and a container token.
	ErrInvalidRequest = errors.New("invalid lookup request")

	// ErrMissingCredentials indicates the lookup service credentials
	// are not configured.
	ErrMissingCredentials = errors.New("lookup credentials not configured")

	// ErrLookupFailed indicates the lookup service returned an error
	// response.
	ErrLookupFailed = errors.New("lookup request failed")
)

// ValidationError reports field-level rejections from the checkout
// session when applying an address.
type ValidationError struct {
	// Fields maps address field names to their rejection messages.
	Fields map[string]string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "address validation failed"
	}

	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, e.Fields[name]))
	}
	return "address validation failed: " + strings.Join(parts, "; ")
}
