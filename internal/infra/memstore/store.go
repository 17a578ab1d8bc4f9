// Package memstore keeps rooms and reservations in process memory. Each room carries its
// own lock token, so units of work for different rooms never wait on each other.
package memstore

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"

	"room-booking/internal/domain/reservation"
	"room-booking/internal/domain/room"
	"room-booking/internal/infra"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/usecase/shared"
)

type roomState struct {
	// 1-buffered; holding the token is holding the room
	lock    chan struct{}
	room    shared.RoomSnapshot
	deleted bool
	// committed set in (date, start, id) order; never mutated in place
	reservations []*reservation.Reservation
}

type Store struct {
	mu      sync.RWMutex
	rooms   map[room.ID]*roomState
	byID    map[reservation.ID]room.ID
	roomSeq atomic.Int64
	resSeq  atomic.Int64
}

func New() *Store {
	return &Store{
		rooms: make(map[room.ID]*roomState),
		byID:  make(map[reservation.ID]room.ID),
	}
}

// PutRoom registers a room and returns its id.
func (s *Store) PutRoom(name string, capacity int, description, location *string) (room.ID, error) {
	id := room.ID(s.roomSeq.Add(1))
	r, err := room.NewRoom(id, name, capacity, description, location)
	if err != nil {
		return 0, errs.Mark(err, errs.ErrInvalidRoomDetails)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms[id] = &roomState{
		lock: make(chan struct{}, 1),
		room: shared.RoomSnapshot{
			ID:          r.ID(),
			Name:        r.Name(),
			Capacity:    r.Capacity(),
			Description: r.Description(),
			Location:    r.Location(),
		},
	}
	return id, nil
}

// DeleteRoom refuses while any reservation references the room.
func (s *Store) DeleteRoom(ctx context.Context, id room.ID) error {
	rs, err := s.acquire(ctx, id)
	if err != nil {
		return err
	}
	defer rs.release()

	s.mu.Lock()
	defer s.mu.Unlock()
	if len(rs.reservations) > 0 {
		return errs.Wrapf(errs.ErrRoomInUse, "room %d has %d reservations", id, len(rs.reservations))
	}
	rs.deleted = true
	delete(s.rooms, id)
	return nil
}

func (s *Store) WithinRoom(ctx context.Context, roomID room.ID, fn func(ctx context.Context, tx shared.Tx) error) error {
	rs, err := s.acquire(ctx, roomID)
	if err != nil {
		return err
	}
	defer rs.release()

	tx := &memTx{
		store:  s,
		state:  rs,
		staged: cloneAll(rs.reservations),
	}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	// An abandoned caller gets a clean abort rather than a commit nobody sees.
	if err := ctx.Err(); err != nil {
		return err
	}

	s.commit(tx)
	return nil
}

func (s *Store) CommandReads() shared.CommandReads {
	return s
}

func (s *Store) RoomByID(_ context.Context, id room.ID) (*shared.RoomSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rs, ok := s.rooms[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "room not found")
	}
	snap := rs.room
	return &snap, nil
}

func (s *Store) ReservationByID(_ context.Context, id reservation.ID) (*shared.ReservationSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	roomID, ok := s.byID[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "reservation not found")
	}
	return &shared.ReservationSnapshot{ID: id, RoomID: roomID}, nil
}

func (s *Store) acquire(ctx context.Context, roomID room.ID) (*roomState, error) {
	s.mu.RLock()
	rs, ok := s.rooms[roomID]
	s.mu.RUnlock()
	if !ok {
		return nil, roomNotFound(roomID)
	}

	select {
	case rs.lock <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	s.mu.RLock()
	deleted := rs.deleted
	s.mu.RUnlock()
	if deleted {
		rs.release()
		return nil, roomNotFound(roomID)
	}
	return rs, nil
}

func (rs *roomState) release() {
	<-rs.lock
}

func (s *Store) commit(tx *memTx) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range tx.inserted {
		s.byID[id] = tx.state.room.ID
	}
	for _, id := range tx.deleted {
		delete(s.byID, id)
	}
	tx.state.reservations = tx.staged
}

func roomNotFound(id room.ID) error {
	return errs.Mark(infra.NewRepoErr(infra.KindNotFound, fmt.Sprintf("room %d not found", id)), errs.ErrRoomNotFound)
}

func cloneAll(in []*reservation.Reservation) []*reservation.Reservation {
	out := make([]*reservation.Reservation, len(in))
	for i, r := range in {
		out[i] = r.Clone()
	}
	return out
}

func sortReservations(rs []*reservation.Reservation) {
	slices.SortFunc(rs, func(a, b *reservation.Reservation) int {
		if c := a.Date().Time().Compare(b.Date().Time()); c != 0 {
			return c
		}
		if c := cmp.Compare(a.StartTime().Seconds(), b.StartTime().Seconds()); c != 0 {
			return c
		}
		return cmp.Compare(a.ID(), b.ID())
	})
}
