//go:build unit || e2e

package dbtest

import (
	"context"
	"strings"
	"testing"
	"time"

	"room-booking/internal/domain/reservation"
	"room-booking/internal/domain/room"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by a pool, a connection or a transaction.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func CreateTestRoom(t *testing.T, db DBLike, name string, capacity int) room.ID {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO conference_rooms (name, capacity) VALUES ($1, $2) RETURNING id",
		name, capacity).Scan(&id)
	require.NoError(t, err)
	return room.ID(id)
}

// CreateTestReservation writes a row directly, bypassing admission. date is YYYY-MM-DD, times HH:MM.
func CreateTestReservation(t *testing.T, db DBLike, roomID room.ID, reserverName, date, start, end string) reservation.ID {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		`INSERT INTO reservations (conference_room_id, reserver_name, date, start_time, end_time)
		 VALUES ($1, $2, $3::date, $4::time, $5::time) RETURNING id`,
		int64(roomID), reserverName, date, start, end).Scan(&id)
	require.NoError(t, err)
	return reservation.ID(id)
}

func CountReservations(t *testing.T, db DBLike, roomID room.ID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM reservations WHERE conference_room_id = $1", int64(roomID)).Scan(&n)
	require.NoError(t, err)
	return n
}

// ResetDB empties every domain table. The migration ledger is left alone.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, "TRUNCATE "+strings.Join(domainTables, ", ")+" RESTART IDENTITY CASCADE")
	return err
}

var domainTables = []string{"notification_jobs", "reservations", "conference_rooms"}
