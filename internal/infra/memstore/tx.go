package memstore

import (
	"context"
	"fmt"

	"room-booking/internal/domain/reservation"
	"room-booking/internal/domain/room"
	"room-booking/internal/infra"
	"room-booking/internal/usecase/shared"
)

// memTx stages writes on a private copy of one room's reservations. The copy replaces the
// committed set only when the unit of work succeeds.
type memTx struct {
	store    *Store
	state    *roomState
	staged   []*reservation.Reservation
	inserted []reservation.ID
	deleted  []reservation.ID
}

func (t *memTx) Room() shared.RoomSnapshot {
	return t.state.room
}

func (t *memTx) Reservations() shared.ReservationStore {
	return t
}

func (t *memTx) LoadRoomReservations(_ context.Context, roomID room.ID) ([]*reservation.Reservation, error) {
	if roomID != t.state.room.ID {
		return nil, infra.NewRepoErr(infra.KindDBFailure, fmt.Sprintf("unit of work holds room %d, not %d", t.state.room.ID, roomID))
	}
	return cloneAll(t.staged), nil
}

func (t *memTx) Insert(_ context.Context, res *reservation.Reservation) (reservation.ID, error) {
	if res.RoomID() != t.state.room.ID {
		return 0, infra.NewRepoErr(infra.KindForeignKeyViolated, "reservation belongs to another room")
	}
	id := reservation.ID(t.store.resSeq.Add(1))

	stored := res.Clone()
	stored.AssignID(id)
	t.staged = append(t.staged, stored)
	sortReservations(t.staged)
	t.inserted = append(t.inserted, id)
	return id, nil
}

func (t *memTx) Replace(_ context.Context, res *reservation.Reservation) error {
	i := t.indexOf(res.ID())
	if i < 0 {
		return infra.NewRepoErr(infra.KindNotFound, "reservation not found")
	}
	t.staged[i] = res.Clone()
	sortReservations(t.staged)
	return nil
}

func (t *memTx) Delete(_ context.Context, id reservation.ID) error {
	i := t.indexOf(id)
	if i < 0 {
		return infra.NewRepoErr(infra.KindNotFound, "reservation not found")
	}
	t.staged = append(t.staged[:i], t.staged[i+1:]...)
	t.deleted = append(t.deleted, id)
	return nil
}

func (t *memTx) indexOf(id reservation.ID) int {
	for i, r := range t.staged {
		if r.ID() == id {
			return i
		}
	}
	return -1
}
