package memstore

import (
	"cmp"
	"context"
	"slices"

	"room-booking/internal/domain/reservation"
	"room-booking/internal/domain/room"
	"room-booking/internal/infra"
	"room-booking/internal/usecase/queries"
)

func (s *Store) FindByID(_ context.Context, id reservation.ID) (*queries.ReservationView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	roomID, ok := s.byID[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "reservation not found")
	}
	rs := s.rooms[roomID]
	for _, r := range rs.reservations {
		if r.ID() == id {
			return toView(r, rs.room.Name), nil
		}
	}
	return nil, infra.NewRepoErr(infra.KindNotFound, "reservation not found")
}

func (s *Store) FindByRoom(_ context.Context, roomID room.ID, from, to *reservation.Date) ([]*queries.ReservationView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rs, ok := s.rooms[roomID]
	if !ok {
		return []*queries.ReservationView{}, nil
	}

	result := make([]*queries.ReservationView, 0, len(rs.reservations))
	for _, r := range rs.reservations {
		if from != nil && r.Date().Before(*from) {
			continue
		}
		if to != nil && r.Date().After(*to) {
			continue
		}
		result = append(result, toView(r, rs.room.Name))
	}
	return result, nil
}

func (s *Store) ListRooms(_ context.Context) ([]*queries.RoomView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*queries.RoomView, 0, len(s.rooms))
	for _, rs := range s.rooms {
		result = append(result, &queries.RoomView{
			ID:          rs.room.ID,
			Name:        rs.room.Name,
			Capacity:    rs.room.Capacity,
			Description: rs.room.Description,
			Location:    rs.room.Location,
		})
	}
	slices.SortFunc(result, func(a, b *queries.RoomView) int {
		if c := cmp.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return result, nil
}

func toView(r *reservation.Reservation, roomName string) *queries.ReservationView {
	return &queries.ReservationView{
		ID:           r.ID(),
		RoomID:       r.RoomID(),
		RoomName:     roomName,
		ReserverName: r.ReserverName(),
		Date:         r.Date().String(),
		StartTime:    r.StartTime().String(),
		EndTime:      r.EndTime().String(),
		Notes:        r.Notes(),
		CreatedAt:    r.CreatedAt(),
		UpdatedAt:    r.UpdatedAt(),
	}
}
