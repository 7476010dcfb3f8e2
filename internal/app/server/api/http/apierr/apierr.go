// Package apierr maps failures of the JSON API onto HTTP responses.
//
// Domain lookups that miss and id mismatches are answered with a bare status
// and no body. Invalid input is answered with 400 and a flat JSON object
// mapping each offending field to its message. Everything else becomes a
// generic 500.
package apierr

import (
	"errors"
	"net/http"
	"sort"
	"strings"
	"sync"

	"datakeeper/internal/domain/record"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

// FieldErrors is the 400 response body: field name -> message.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	names := make([]string, 0, len(e))
	for name := range e {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+e[name])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e FieldErrors) GetStatus() int {
	return http.StatusBadRequest
}

func (e FieldErrors) ContentType(string) string {
	return "application/json"
}

var (
	registerOnce sync.Once
	fallback     func(status int, msg string, errs ...error) huma.StatusError
)

// Register installs the error constructor used by huma for every API. It is
// safe to call more than once.
func Register() {
	registerOnce.Do(func() {
		fallback = huma.NewError
		huma.NewError = newError
	})
}

func newError(status int, msg string, errs ...error) huma.StatusError {
	if status == http.StatusBadRequest || status == http.StatusUnprocessableEntity {
		if fields := collectFields(errs); len(fields) > 0 {
			return fields
		}
	}
	return fallback(status, msg, errs...)
}

// collectFields flattens huma details and domain validation errors. The first
// message reported for a field wins. Domain errors are dropped once huma has
// rejected the body itself.
func collectFields(errs []error) FieldErrors {
	fields := FieldErrors{}
	add := func(name, msg string) {
		if _, ok := fields[name]; !ok {
			fields[name] = msg
		}
	}

	bodyRejected := false
	var domain []*record.ValidationError
	for _, err := range errs {
		var detail *huma.ErrorDetail
		if errors.As(err, &detail) {
			if isBodyLocation(detail.Location) {
				bodyRejected = true
			}
			add(fieldName(detail.Location), detail.Message)
			continue
		}

		var verr *record.ValidationError
		if errors.As(err, &verr) {
			domain = append(domain, verr)
		}
	}

	if bodyRejected {
		return fields
	}
	for _, verr := range domain {
		for name, msg := range verr.Fields {
			add(name, msg)
		}
	}
	return fields
}

func isBodyLocation(location string) bool {
	return location == "body" || strings.HasPrefix(location, "body.")
}

// fieldName turns a huma location such as "body.name" into "name".
func fieldName(location string) string {
	if i := strings.LastIndex(location, "."); i >= 0 {
		return location[i+1:]
	}
	return location
}

// Classify decides how err is reported. A non-zero status means the caller
// should answer with that status and an empty body; otherwise the returned
// error is handed to huma as is.
func Classify(err error, log *slog.Logger) (int, error) {
	var verr *record.ValidationError
	switch {
	case errors.Is(err, record.ErrNotFound):
		return http.StatusNotFound, nil
	case errors.Is(err, record.ErrIDMismatch):
		return http.StatusBadRequest, nil
	case errors.As(err, &verr):
		return 0, huma.NewError(http.StatusBadRequest, "validation failed", verr)
	}

	if log != nil {
		log.Error("request failed", "error", err)
	}
	return 0, huma.Error500InternalServerError("internal server error")
}
