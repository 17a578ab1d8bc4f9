package request

import (
	"room-booking/internal/domain/reservation"
	"room-booking/internal/usecase/queries"
)

type ListRoomReservationsQuery struct {
	Date      string `form:"date"`
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
}

func (q ListRoomReservationsQuery) ToFilter() (queries.RoomReservationFilter, error) {
	var f queries.RoomReservationFilter
	var err error
	if f.Date, err = optionalDate("date", q.Date); err != nil {
		return f, err
	}
	if f.StartDate, err = optionalDate("startDate", q.StartDate); err != nil {
		return f, err
	}
	if f.EndDate, err = optionalDate("endDate", q.EndDate); err != nil {
		return f, err
	}
	return f, nil
}

func optionalDate(field, s string) (*reservation.Date, error) {
	if s == "" {
		return nil, nil
	}
	d, err := reservation.ParseDate(s)
	if err != nil {
		return nil, &FormatError{Field: field, Err: err}
	}
	return &d, nil
}
