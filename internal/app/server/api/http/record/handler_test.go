package record

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"testing"

	"datakeeper/internal/app/server/api/http/apierr"
	"datakeeper/internal/domain/record"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Save(ctx context.Context, r record.Record) (record.Record, error) {
	args := m.Called(ctx, r)
	return args.Get(0).(record.Record), args.Error(1)
}

func (m *MockService) FindAll(ctx context.Context) ([]record.Record, error) {
	args := m.Called(ctx)
	// Безопасное приведение nil к слайсу
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]record.Record), args.Error(1)
}

func (m *MockService) FindByID(ctx context.Context, id int64) (record.Record, bool, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(record.Record), args.Bool(1), args.Error(2)
}

func (m *MockService) DeleteByID(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTestAPI(t *testing.T, svc record.Servicer) humatest.TestAPI {
	t.Helper()

	apierr.Register()
	_, api := humatest.New(t)
	NewHandler(svc, slog.Default(), huma.Middlewares{}).SetupRoutes(api)

	return api
}

func decode[T any](t *testing.T, body []byte) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(body, &v))
	return v
}

var anyCtx = mock.Anything

func TestHandler_List(t *testing.T) {
	t.Run("returns all records", func(t *testing.T) {
		svc := new(MockService)
		svc.On("FindAll", anyCtx).Return([]record.Record{
			record.New("John Doe").WithID(1),
			record.New("Jane Smith").WithID(2),
		}, nil)

		resp := newTestAPI(t, svc).Get("/api/test-data")

		assert.Equal(t, http.StatusOK, resp.Code)
		got := decode[[]record.Record](t, resp.Body.Bytes())
		require.Len(t, got, 2)
		assert.Equal(t, "John Doe", got[0].Name)
		assert.Equal(t, int64(2), got[1].IDValue())
		svc.AssertExpectations(t)
	})

	t.Run("empty store returns empty array", func(t *testing.T) {
		svc := new(MockService)
		svc.On("FindAll", anyCtx).Return([]record.Record{}, nil)

		resp := newTestAPI(t, svc).Get("/api/test-data")

		assert.Equal(t, http.StatusOK, resp.Code)
		assert.JSONEq(t, `[]`, resp.Body.String())
	})

	t.Run("store failure is a 500", func(t *testing.T) {
		svc := new(MockService)
		svc.On("FindAll", anyCtx).Return(nil, errors.New("db down"))

		resp := newTestAPI(t, svc).Get("/api/test-data")

		assert.Equal(t, http.StatusInternalServerError, resp.Code)
	})
}

func TestHandler_Find(t *testing.T) {
	tests := []struct {
		name       string
		id         int64
		rec        record.Record
		found      bool
		err        error
		wantStatus int
	}{
		{
			name:       "found",
			id:         1,
			rec:        record.New("John Doe").WithID(1),
			found:      true,
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing",
			id:         999,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "store failure",
			id:         1,
			err:        errors.New("db down"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			svc.On("FindByID", anyCtx, tt.id).Return(tt.rec, tt.found, tt.err)

			resp := newTestAPI(t, svc).Get("/api/test-data/" + strconv.FormatInt(tt.id, 10))

			assert.Equal(t, tt.wantStatus, resp.Code)
			switch tt.wantStatus {
			case http.StatusOK:
				got := decode[record.Record](t, resp.Body.Bytes())
				assert.Equal(t, tt.rec, got)
			case http.StatusNotFound:
				assert.Empty(t, resp.Body.Bytes())
				assert.Empty(t, resp.Header().Get("Content-Type"))
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestHandler_Find_NonNumericID(t *testing.T) {
	svc := new(MockService)

	resp := newTestAPI(t, svc).Get("/api/test-data/abc")

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	svc.AssertNotCalled(t, "FindByID", anyCtx, mock.Anything)
}

func TestHandler_Create(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Save", anyCtx, record.New("Alice Wonderland")).
			Return(record.New("Alice Wonderland").WithID(3), nil)

		resp := newTestAPI(t, svc).Post("/api/test-data", map[string]any{"name": "Alice Wonderland"})

		assert.Equal(t, http.StatusCreated, resp.Code)
		got := decode[record.Record](t, resp.Body.Bytes())
		assert.Equal(t, int64(3), got.IDValue())
		assert.Equal(t, "Alice Wonderland", got.Name)
		svc.AssertExpectations(t)
	})

	t.Run("Body id is ignored", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Save", anyCtx, record.New("Bob")).Return(record.New("Bob").WithID(4), nil)

		resp := newTestAPI(t, svc).Post("/api/test-data", map[string]any{"id": 1, "name": "Bob"})

		assert.Equal(t, http.StatusCreated, resp.Code)
		svc.AssertExpectations(t)
	})

	for _, name := range []string{"", "   "} {
		t.Run("Blank name "+strconv.Quote(name), func(t *testing.T) {
			svc := new(MockService)

			resp := newTestAPI(t, svc).Post("/api/test-data", map[string]any{"name": name})

			assert.Equal(t, http.StatusBadRequest, resp.Code)
			got := decode[map[string]string](t, resp.Body.Bytes())
			assert.Equal(t, map[string]string{"name": "must not be blank"}, got)
			svc.AssertNotCalled(t, "Save", anyCtx, mock.Anything)
		})
	}

	t.Run("Missing name", func(t *testing.T) {
		svc := new(MockService)

		resp := newTestAPI(t, svc).Post("/api/test-data", map[string]any{})

		assert.Equal(t, http.StatusBadRequest, resp.Code)
		got := decode[map[string]string](t, resp.Body.Bytes())
		assert.Contains(t, got, "name")
	})

	t.Run("Wrong name type", func(t *testing.T) {
		svc := new(MockService)

		resp := newTestAPI(t, svc).Post("/api/test-data", map[string]any{"name": 123})

		assert.Equal(t, http.StatusBadRequest, resp.Code)
		got := decode[map[string]string](t, resp.Body.Bytes())
		assert.Equal(t, map[string]string{"name": "expected string"}, got)
		svc.AssertNotCalled(t, "Save", anyCtx, mock.Anything)
	})

	t.Run("Malformed body", func(t *testing.T) {
		svc := new(MockService)

		resp := newTestAPI(t, svc).Post("/api/test-data",
			"Content-Type: application/json",
			strings.NewReader("not json"),
		)

		assert.Equal(t, http.StatusBadRequest, resp.Code)
		got := decode[map[string]string](t, resp.Body.Bytes())
		assert.Contains(t, got, "body")
		assert.NotContains(t, got, "name")
		svc.AssertNotCalled(t, "Save", anyCtx, mock.Anything)
	})

	t.Run("Store failure", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Save", anyCtx, record.New("x")).Return(record.Record{}, errors.New("disk full"))

		resp := newTestAPI(t, svc).Post("/api/test-data", map[string]any{"name": "x"})

		assert.Equal(t, http.StatusInternalServerError, resp.Code)
	})
}

func TestHandler_Update(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(MockService)
		existing := record.New("John Doe").WithID(1)
		updated := record.New("John Updated").WithID(1)
		svc.On("FindByID", anyCtx, int64(1)).Return(existing, true, nil)
		svc.On("Save", anyCtx, updated).Return(updated, nil)

		resp := newTestAPI(t, svc).Put("/api/test-data/1", map[string]any{"id": 1, "name": "John Updated"})

		assert.Equal(t, http.StatusOK, resp.Code)
		got := decode[record.Record](t, resp.Body.Bytes())
		assert.Equal(t, updated, got)
		svc.AssertExpectations(t)
	})

	t.Run("Id mismatch", func(t *testing.T) {
		svc := new(MockService)

		resp := newTestAPI(t, svc).Put("/api/test-data/1", map[string]any{"id": 2, "name": "x"})

		assert.Equal(t, http.StatusBadRequest, resp.Code)
		assert.Empty(t, resp.Body.Bytes())
		svc.AssertNotCalled(t, "FindByID", anyCtx, mock.Anything)
		svc.AssertNotCalled(t, "Save", anyCtx, mock.Anything)
	})

	t.Run("Missing body id", func(t *testing.T) {
		svc := new(MockService)

		resp := newTestAPI(t, svc).Put("/api/test-data/1", map[string]any{"name": "x"})

		assert.Equal(t, http.StatusBadRequest, resp.Code)
		assert.Empty(t, resp.Body.Bytes())
		svc.AssertNotCalled(t, "Save", anyCtx, mock.Anything)
	})

	t.Run("Not found", func(t *testing.T) {
		svc := new(MockService)
		svc.On("FindByID", anyCtx, int64(999)).Return(record.Record{}, false, nil)

		resp := newTestAPI(t, svc).Put("/api/test-data/999", map[string]any{"id": 999, "name": "Nobody"})

		assert.Equal(t, http.StatusNotFound, resp.Code)
		assert.Empty(t, resp.Body.Bytes())
		svc.AssertNotCalled(t, "Save", anyCtx, mock.Anything)
	})

	t.Run("Blank name", func(t *testing.T) {
		svc := new(MockService)

		resp := newTestAPI(t, svc).Put("/api/test-data/1", map[string]any{"id": 1, "name": ""})

		assert.Equal(t, http.StatusBadRequest, resp.Code)
		got := decode[map[string]string](t, resp.Body.Bytes())
		assert.Equal(t, "must not be blank", got["name"])
	})
}

func TestHandler_Delete(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(MockService)
		svc.On("FindByID", anyCtx, int64(1)).Return(record.New("John Doe").WithID(1), true, nil)
		svc.On("DeleteByID", anyCtx, int64(1)).Return(nil)

		resp := newTestAPI(t, svc).Delete("/api/test-data/1")

		assert.Equal(t, http.StatusNoContent, resp.Code)
		assert.Empty(t, resp.Body.Bytes())
		svc.AssertExpectations(t)
	})

	t.Run("Not found", func(t *testing.T) {
		svc := new(MockService)
		svc.On("FindByID", anyCtx, int64(5)).Return(record.Record{}, false, nil)

		resp := newTestAPI(t, svc).Delete("/api/test-data/5")

		assert.Equal(t, http.StatusNotFound, resp.Code)
		assert.Empty(t, resp.Body.Bytes())
		svc.AssertNotCalled(t, "DeleteByID", anyCtx, mock.Anything)
	})

	t.Run("Store failure", func(t *testing.T) {
		svc := new(MockService)
		svc.On("FindByID", anyCtx, int64(1)).Return(record.New("a").WithID(1), true, nil)
		svc.On("DeleteByID", anyCtx, int64(1)).Return(errors.New("locked"))

		resp := newTestAPI(t, svc).Delete("/api/test-data/1")

		assert.Equal(t, http.StatusInternalServerError, resp.Code)
	})
}
