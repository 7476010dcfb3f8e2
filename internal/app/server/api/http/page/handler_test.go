package page

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"datakeeper/internal/domain/record"

	"github.com/go-chi/chi/v5"
	"github.com/sebdah/goldie/v2"
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

func newRouter(svc record.Servicer) http.Handler {
	r := chi.NewRouter()
	NewHandler(svc, slog.Default()).SetupRoutes(r)
	return r
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Pages(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		records []record.Record
		golden  string
	}{
		{name: "landing page", path: PathIndex, golden: "index"},
		{name: "blank form", path: PathForm, golden: "add_data"},
		{name: "form after save", path: SavedRedirect, golden: "add_data_success"},
		{
			name: "table",
			path: PathTable,
			records: []record.Record{
				record.New("John Doe").WithID(1),
				record.New("Jane Smith").WithID(2),
			},
			golden: "show_table_data",
		},
		{name: "empty table", path: PathTable, records: []record.Record{}, golden: "show_table_data_empty"},
	}

	g := goldie.New(t, goldie.WithFixtureDir("testdata"), goldie.WithNameSuffix(".golden"))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			if tt.records != nil {
				svc.On("FindAll", mock.Anything).Return(tt.records, nil)
			}

			resp := serve(newRouter(svc), httptest.NewRequest(http.MethodGet, tt.path, nil))

			require.Equal(t, http.StatusOK, resp.Code)
			assert.Equal(t, "text/html; charset=utf-8", resp.Header().Get("Content-Type"))
			g.Assert(t, tt.golden, resp.Body.Bytes())
			svc.AssertExpectations(t)
		})
	}
}

func TestHandler_TableEscapesNames(t *testing.T) {
	svc := new(MockService)
	svc.On("FindAll", mock.Anything).Return([]record.Record{record.New("<script>x</script>").WithID(7)}, nil)

	resp := serve(newRouter(svc), httptest.NewRequest(http.MethodGet, PathTable, nil))

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "&lt;script&gt;x&lt;/script&gt;")
	assert.NotContains(t, resp.Body.String(), "<script>")
}

func TestHandler_TableStoreFailure(t *testing.T) {
	svc := new(MockService)
	svc.On("FindAll", mock.Anything).Return(nil, errors.New("db down"))

	resp := serve(newRouter(svc), httptest.NewRequest(http.MethodGet, PathTable, nil))

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}

func postForm(values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, PathSave, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestHandler_SaveData(t *testing.T) {
	t.Run("saves and redirects", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Save", mock.Anything, record.New("Alice Wonderland")).
			Return(record.New("Alice Wonderland").WithID(3), nil)

		resp := serve(newRouter(svc), postForm(url.Values{"name": {"Alice Wonderland"}}))

		assert.Equal(t, http.StatusSeeOther, resp.Code)
		assert.Equal(t, "/add-data?success", resp.Header().Get("Location"))
		svc.AssertExpectations(t)
	})

	t.Run("blank name is stored as submitted", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Save", mock.Anything, record.New("")).Return(record.New("").WithID(4), nil)

		resp := serve(newRouter(svc), postForm(url.Values{}))

		assert.Equal(t, http.StatusSeeOther, resp.Code)
		svc.AssertExpectations(t)
	})

	t.Run("store failure", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Save", mock.Anything, record.New("x")).Return(record.Record{}, errors.New("disk full"))

		resp := serve(newRouter(svc), postForm(url.Values{"name": {"x"}}))

		assert.Equal(t, http.StatusInternalServerError, resp.Code)
	})
}
