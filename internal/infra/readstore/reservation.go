package readstore

import (
	"context"

	"room-booking/internal/domain/reservation"
	"room-booking/internal/domain/room"
	"room-booking/internal/infra"
	sqlc "room-booking/internal/infra/sqlc/generated"
	"room-booking/internal/pkg/pgconv"
	"room-booking/internal/usecase/queries"
	"room-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationViewQueries interface {
	GetReservationByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.GetReservationByIDRow, error)
	GetReservationRoomID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.GetReservationRoomIDRow, error)
	ListRoomReservationViews(ctx context.Context, db sqlc.DBTX, arg sqlc.ListRoomReservationViewsParams) ([]sqlc.ListRoomReservationViewsRow, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationViewQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id reservation.ID) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationByID(ctx, r.db, int64(id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	return toReservationView(reservationRow(row)), nil
}

// FindByRoom applies the inclusive date bounds in SQL; nil bounds are open.
func (r *ReservationReadStore) FindByRoom(ctx context.Context, roomID room.ID, from, to *reservation.Date) ([]*queries.ReservationView, error) {
	params := sqlc.ListRoomReservationViewsParams{RoomID: int64(roomID)}
	if from != nil {
		params.FromDate = pgconv.DateToPgtype(from.Time())
	}
	if to != nil {
		params.ToDate = pgconv.DateToPgtype(to.Time())
	}

	rows, err := r.queries.ListRoomReservationViews(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list room reservations", err)
	}

	result := make([]*queries.ReservationView, len(rows))
	for i, row := range rows {
		result[i] = toReservationView(reservationRow(row))
	}
	return result, nil
}

// ReservationByID is the non-locking lookup used to learn a reservation's room.
func (r *ReservationReadStore) ReservationByID(ctx context.Context, id reservation.ID) (*shared.ReservationSnapshot, error) {
	row, err := r.queries.GetReservationRoomID(ctx, r.db, int64(id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return &shared.ReservationSnapshot{
		ID:     reservation.ID(row.ID),
		RoomID: room.ID(row.ConferenceRoomID),
	}, nil
}

// reservationRow unifies the two joined row shapes sqlc emits for the same column list.
type reservationRow sqlc.GetReservationByIDRow

func toReservationView(row reservationRow) *queries.ReservationView {
	return &queries.ReservationView{
		ID:           reservation.ID(row.ID),
		RoomID:       room.ID(row.ConferenceRoomID),
		RoomName:     row.RoomName,
		ReserverName: row.ReserverName,
		Date:         reservation.DateOf(pgconv.DateFromPgtype(row.Date)).String(),
		StartTime:    formatTime(row.StartTime),
		EndTime:      formatTime(row.EndTime),
		Notes:        pgconv.StringPtrFromPgtype(row.Notes),
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:    pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

func formatTime(t pgtype.Time) string {
	tod, err := reservation.TimeOfDayFromSeconds(pgconv.SecondsFromPgtypeTime(t))
	if err != nil {
		// TIME admits 24:00:00, which no admitted reservation carries
		return ""
	}
	return tod.String()
}
