package record

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

// MockRepository is a mock implementation of the Repository interface for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Save(ctx context.Context, r Record) (Record, error) {
	args := m.Called(ctx, r)
	return args.Get(0).(Record), args.Error(1)
}

func (m *MockRepository) FindAll(ctx context.Context) ([]Record, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Record), args.Error(1)
}

func (m *MockRepository) FindByID(ctx context.Context, id int64) (Record, bool, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(Record), args.Bool(1), args.Error(2)
}

func (m *MockRepository) DeleteByID(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTestService(repo Repository) Servicer {
	return NewService(repo, slog.Default())
}

func TestService_Save(t *testing.T) {
	t.Run("new record gets id from repository", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo)

		in := New("TestName1")
		repo.On("Save", mock.Anything, in).Return(in.WithID(1), nil).Once()

		saved, err := svc.Save(context.Background(), in)

		require.NoError(t, err)
		assert.Equal(t, "TestName1", saved.Name)
		assert.Equal(t, int64(1), saved.IDValue())
		repo.AssertExpectations(t)
	})

	t.Run("repository failure is wrapped", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo)

		dbErr := errors.New("connection refused")
		repo.On("Save", mock.Anything, mock.Anything).Return(Record{}, dbErr)

		_, err := svc.Save(context.Background(), New("x"))

		require.Error(t, err)
		assert.ErrorIs(t, err, dbErr)
		assert.Contains(t, err.Error(), "save record")
	})
}

func TestService_FindAll(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)

	records := []Record{
		New("TestName1").WithID(1),
		New("TestName2").WithID(2),
	}
	repo.On("FindAll", mock.Anything).Return(records, nil).Once()

	got, err := svc.FindAll(context.Background())

	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Contains(t, got, records[0])
	assert.Contains(t, got, records[1])
	repo.AssertExpectations(t)
}

func TestService_FindAll_Error(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)

	repo.On("FindAll", mock.Anything).Return(nil, errors.New("boom"))

	got, err := svc.FindAll(context.Background())

	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestService_FindByID(t *testing.T) {
	tests := []struct {
		name      string
		id        int64
		repoRec   Record
		repoFound bool
		wantFound bool
	}{
		{
			name:      "found",
			id:        1,
			repoRec:   New("TestName1").WithID(1),
			repoFound: true,
			wantFound: true,
		},
		{
			name:      "not found",
			id:        3,
			repoRec:   Record{},
			repoFound: false,
			wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRepository)
			svc := newTestService(repo)

			repo.On("FindByID", mock.Anything, tt.id).Return(tt.repoRec, tt.repoFound, nil).Once()

			rec, found, err := svc.FindByID(context.Background(), tt.id)

			require.NoError(t, err)
			assert.Equal(t, tt.wantFound, found)
			if tt.wantFound {
				assert.Equal(t, tt.repoRec.Name, rec.Name)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestService_FindByID_Error(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)

	repo.On("FindByID", mock.Anything, int64(7)).Return(Record{}, false, errors.New("timeout"))

	_, found, err := svc.FindByID(context.Background(), 7)

	assert.Error(t, err)
	assert.False(t, found)
}

func TestService_DeleteByID(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)

	repo.On("DeleteByID", mock.Anything, int64(1)).Return(nil).Once()

	err := svc.DeleteByID(context.Background(), 1)

	assert.NoError(t, err)
	repo.AssertCalled(t, "DeleteByID", mock.Anything, int64(1))
	repo.AssertNumberOfCalls(t, "DeleteByID", 1)
}
