package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/net/http/httpguts"
)

// ValidateHeaders checks that every name and value in set can appear on the wire, reporting
// all failures at once in name order.
func ValidateHeaders(set map[string]string) error {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)

	var errz []error
	for _, name := range names {
		if err := validateHeader(name, set[name]); err != nil {
			errz = append(errz, err)
		}
	}
	return errors.Join(errz...)
}

func validateHeader(name, value string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: header name cannot be empty", ErrInvalidHeader)
	}
	if !httpguts.ValidHeaderFieldName(name) {
		return fmt.Errorf("%w: bad name %q", ErrInvalidHeader, name)
	}
	if !httpguts.ValidHeaderFieldValue(value) {
		return fmt.Errorf("%w: bad value for %s", ErrInvalidHeader, name)
	}
	return nil
}
