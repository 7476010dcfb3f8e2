package client

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrNotFound - сервер не нашел запись (404)
	ErrNotFound = errors.New("запись не найдена")
	// ErrIDMismatch - ID в пути и теле запроса различаются (400 без тела)
	ErrIDMismatch = errors.New("ID записи не совпадает")
)

// APIError - ответ сервера со статусом >= 400. Fields заполняется, когда
// сервер вернул ошибки валидации по полям.
type APIError struct {
	Status int
	Fields map[string]string
}

func (e *APIError) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("ошибка сервера: статус %d", e.Status)
	}

	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+e.Fields[name])
	}
	return fmt.Sprintf("ошибка валидации (%d): %s", e.Status, strings.Join(parts, "; "))
}
