package record

import (
	"net/http"
	"reflect"
	"strconv"

	"datakeeper/internal/domain/record"

	"github.com/danielgtaylor/huma/v2"
)

const basePath = "/api/test-data"

// recordResponse documents a record body for status. The output Body is
// untyped, so huma cannot infer this schema on its own.
func recordResponse(schemas huma.Registry, status int) map[string]*huma.Response {
	return map[string]*huma.Response{
		strconv.Itoa(status): {
			Description: http.StatusText(status),
			Content: map[string]*huma.MediaType{
				"application/json": {
					Schema: schemas.Schema(reflect.TypeOf(record.Record{}), true, "Record"),
				},
			},
		},
	}
}

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "test-data-list",
		Method:      http.MethodGet,
		Path:        basePath,
		Summary:     "Список всех записей",
		Tags:        []string{"test-data"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) findOp(schemas huma.Registry) huma.Operation {
	return huma.Operation{
		OperationID: "test-data-find",
		Method:      http.MethodGet,
		Path:        basePath + "/{id}",
		Summary:     "Получить запись",
		Tags:        []string{"test-data"},
		Errors:      []int{http.StatusNotFound},
		Responses:   recordResponse(schemas, http.StatusOK),
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp(schemas huma.Registry) huma.Operation {
	return huma.Operation{
		OperationID:   "test-data-create",
		Method:        http.MethodPost,
		Path:          basePath,
		Summary:       "Создать запись",
		Description:   "Создает новую запись. ID в теле запроса игнорируется.",
		Tags:          []string{"test-data"},
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusBadRequest},
		Responses:     recordResponse(schemas, http.StatusCreated),
		Middlewares:   h.middleware,
	}
}

func (h *Handler) updateOp(schemas huma.Registry) huma.Operation {
	return huma.Operation{
		OperationID: "test-data-update",
		Method:      http.MethodPut,
		Path:        basePath + "/{id}",
		Summary:     "Обновить запись",
		Description: "ID в теле запроса должен совпадать с ID в пути.",
		Tags:        []string{"test-data"},
		Errors:      []int{http.StatusBadRequest, http.StatusNotFound},
		Responses:   recordResponse(schemas, http.StatusOK),
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID:   "test-data-delete",
		Method:        http.MethodDelete,
		Path:          basePath + "/{id}",
		Summary:       "Удалить запись",
		Tags:          []string{"test-data"},
		DefaultStatus: http.StatusNoContent,
		Errors:        []int{http.StatusNotFound},
		Middlewares:   h.middleware,
	}
}
