package converter

import (
	"room-booking/internal/domain/reservation"
	"room-booking/internal/domain/room"
	"room-booking/internal/infra"
	sqlc "room-booking/internal/infra/sqlc/generated"
	"room-booking/internal/pkg/pgconv"
	"room-booking/internal/usecase/shared"
)

func ReservationToCreateParams(res *reservation.Reservation) sqlc.CreateReservationParams {
	return sqlc.CreateReservationParams{
		ConferenceRoomID: int64(res.RoomID()),
		ReserverName:     res.ReserverName(),
		Date:             pgconv.DateToPgtype(res.Date().Time()),
		StartTime:        pgconv.SecondsToPgtypeTime(res.StartTime().Seconds()),
		EndTime:          pgconv.SecondsToPgtypeTime(res.EndTime().Seconds()),
		Notes:            pgconv.StringPtrToPgtype(res.Notes()),
		CreatedAt:        pgconv.TimeToPgtype(res.CreatedAt()),
		UpdatedAt:        pgconv.TimeToPgtype(res.UpdatedAt()),
	}
}

func ReservationToUpdateParams(res *reservation.Reservation) sqlc.UpdateReservationParams {
	return sqlc.UpdateReservationParams{
		ID:           int64(res.ID()),
		ReserverName: res.ReserverName(),
		Date:         pgconv.DateToPgtype(res.Date().Time()),
		StartTime:    pgconv.SecondsToPgtypeTime(res.StartTime().Seconds()),
		EndTime:      pgconv.SecondsToPgtypeTime(res.EndTime().Seconds()),
		Notes:        pgconv.StringPtrToPgtype(res.Notes()),
		UpdatedAt:    pgconv.TimeToPgtype(res.UpdatedAt()),
	}
}

// ReservationFromRow fails only when the stored row breaks the schema's own constraints.
func ReservationFromRow(row sqlc.Reservation) (*reservation.Reservation, error) {
	start, err := reservation.TimeOfDayFromSeconds(pgconv.SecondsFromPgtypeTime(row.StartTime))
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt start_time", err, infra.KindDBFailure)
	}
	end, err := reservation.TimeOfDayFromSeconds(pgconv.SecondsFromPgtypeTime(row.EndTime))
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt end_time", err, infra.KindDBFailure)
	}

	slot := reservation.Slot{
		Date:  reservation.DateOf(pgconv.DateFromPgtype(row.Date)),
		Start: start,
		End:   end,
	}
	return reservation.Reconstruct(
		reservation.ID(row.ID),
		room.ID(row.ConferenceRoomID),
		row.ReserverName,
		slot,
		pgconv.StringPtrFromPgtype(row.Notes),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func RoomSnapshotFromLockRow(row sqlc.LockRoomRow) shared.RoomSnapshot {
	return shared.RoomSnapshot{
		ID:          room.ID(row.ID),
		Name:        row.Name,
		Capacity:    int(row.Capacity),
		Description: pgconv.StringPtrFromPgtype(row.Description),
		Location:    pgconv.StringPtrFromPgtype(row.Location),
	}
}

func RoomSnapshotFromRow(row sqlc.ConferenceRoom) shared.RoomSnapshot {
	return shared.RoomSnapshot{
		ID:          room.ID(row.ID),
		Name:        row.Name,
		Capacity:    int(row.Capacity),
		Description: pgconv.StringPtrFromPgtype(row.Description),
		Location:    pgconv.StringPtrFromPgtype(row.Location),
	}
}
