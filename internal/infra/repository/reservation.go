package repository

import (
	"context"

	"room-booking/internal/domain/reservation"
	"room-booking/internal/domain/room"
	"room-booking/internal/infra"
	"room-booking/internal/infra/repository/converter"
	sqlc "room-booking/internal/infra/sqlc/generated"
)

type ReservationWriteQueries interface {
	ListReservationsByRoom(ctx context.Context, db sqlc.DBTX, conferenceRoomID int64) ([]sqlc.Reservation, error)
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) (int64, error)
	UpdateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationParams) (int64, error)
	DeleteReservation(ctx context.Context, db sqlc.DBTX, id int64) (int64, error)
}

// ReservationRepository is bound to one transaction; the caller holds the room lock.
type ReservationRepository struct {
	queries ReservationWriteQueries
	db      sqlc.DBTX
}

func NewReservationRepository(queries ReservationWriteQueries, db sqlc.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationRepository) LoadRoomReservations(ctx context.Context, roomID room.ID) ([]*reservation.Reservation, error) {
	rows, err := r.queries.ListReservationsByRoom(ctx, r.db, int64(roomID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load room reservations", err)
	}

	result := make([]*reservation.Reservation, 0, len(rows))
	for _, row := range rows {
		res, err := converter.ReservationFromRow(row)
		if err != nil {
			return nil, err
		}
		result = append(result, res)
	}
	return result, nil
}

func (r *ReservationRepository) Insert(ctx context.Context, res *reservation.Reservation) (reservation.ID, error) {
	id, err := r.queries.CreateReservation(ctx, r.db, converter.ReservationToCreateParams(res))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create reservation", err)
	}
	return reservation.ID(id), nil
}

func (r *ReservationRepository) Replace(ctx context.Context, res *reservation.Reservation) error {
	affected, err := r.queries.UpdateReservation(ctx, r.db, converter.ReservationToUpdateParams(res))
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation", err)
	}
	if affected == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "reservation not found")
	}
	return nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id reservation.ID) error {
	affected, err := r.queries.DeleteReservation(ctx, r.db, int64(id))
	if err != nil {
		return infra.WrapRepoErr("failed to delete reservation", err)
	}
	if affected == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "reservation not found")
	}
	return nil
}
