package record

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrNotFound   = errors.New("record not found")
	ErrIDMismatch = errors.New("record id does not match path id")
)

// ValidationError carries one violation message per offending field,
// keyed by the field's JSON name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+e.Fields[name])
	}
	return "invalid record: " + strings.Join(parts, "; ")
}
