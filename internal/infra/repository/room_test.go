//go:build unit

package repository

import (
	"context"
	"testing"

	"room-booking/internal/domain/room"
	sqlc "room-booking/internal/infra/sqlc/generated"
	"room-booking/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRoomWriteQueries struct {
	mock.Mock
}

func (m *MockRoomWriteQueries) GetRoomByName(ctx context.Context, db sqlc.DBTX, name string) (sqlc.ConferenceRoom, error) {
	args := m.Called(ctx, db, name)
	return args.Get(0).(sqlc.ConferenceRoom), args.Error(1)
}

func (m *MockRoomWriteQueries) CreateRoom(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateRoomParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRoomWriteQueries) DeleteRoom(ctx context.Context, db sqlc.DBTX, id int64) (int64, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int64), args.Error(1)
}

func mustRoom(t *testing.T, name string, capacity int) *room.Room {
	t.Helper()
	r, err := room.NewRoom(0, name, capacity, nil, nil)
	require.NoError(t, err)
	return r
}

func TestRoomRepository_DeleteRoom(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		err      error
		want     error
	}{
		{name: "deleted", affected: 1},
		{name: "referenced by reservations", err: &pgconn.PgError{Code: "23503"}, want: errs.ErrRoomInUse},
		{name: "unknown room", affected: 0, want: errs.ErrRoomNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockRoomWriteQueries)
			mockQueries.On("DeleteRoom", mock.Anything, mock.Anything, int64(5)).Return(tt.affected, tt.err)

			err := NewRoomRepository(mockQueries, &mockDBTX{}).DeleteRoom(context.Background(), 5)
			if tt.want == nil {
				assert.NoError(t, err)
			} else {
				assert.True(t, errs.Is(err, tt.want), "got %v", err)
			}
		})
	}
}

func TestRoomRepository_Ensure(t *testing.T) {
	t.Run("existing room is reused", func(t *testing.T) {
		mockQueries := new(MockRoomWriteQueries)
		mockQueries.On("GetRoomByName", mock.Anything, mock.Anything, "Board Room").
			Return(sqlc.ConferenceRoom{ID: 4, Name: "Board Room", Capacity: 16}, nil)

		r := mustRoom(t, "Board Room", 16)
		id, err := NewRoomRepository(mockQueries, &mockDBTX{}).Ensure(context.Background(), r)
		require.NoError(t, err)
		assert.EqualValues(t, 4, id)
		mockQueries.AssertNotCalled(t, "CreateRoom", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing room is created", func(t *testing.T) {
		mockQueries := new(MockRoomWriteQueries)
		mockQueries.On("GetRoomByName", mock.Anything, mock.Anything, "Board Room").
			Return(sqlc.ConferenceRoom{}, pgx.ErrNoRows)
		mockQueries.On("CreateRoom", mock.Anything, mock.Anything, mock.MatchedBy(func(arg sqlc.CreateRoomParams) bool {
			return arg.Name == "Board Room" && arg.Capacity == 16
		})).Return(int64(9), nil)

		id, err := NewRoomRepository(mockQueries, &mockDBTX{}).Ensure(context.Background(), mustRoom(t, "Board Room", 16))
		require.NoError(t, err)
		assert.EqualValues(t, 9, id)
		mockQueries.AssertExpectations(t)
	})
}
