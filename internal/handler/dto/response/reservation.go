package response

import (
	"time"

	"room-booking/internal/pkg/errs"
	"room-booking/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type ReservationResponse struct {
	ID           int64     `json:"id"`
	RoomID       int64     `json:"roomId"`
	RoomName     string    `json:"roomName"`
	ReserverName string    `json:"reserverName"`
	Date         string    `json:"date"`
	StartTime    string    `json:"startTime"`
	EndTime      string    `json:"endTime"`
	Notes        *string   `json:"notes"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ReservationIDResponse answers a committed write whose result could not be read back.
type ReservationIDResponse struct {
	ID int64 `json:"id"`
}

type ReservationListResponse struct {
	Data  []*ReservationResponse `json:"data"`
	Total int                    `json:"total"`
}

func FromReservationView(view *queries.ReservationView) (*ReservationResponse, error) {
	var resp ReservationResponse
	if err := copier.Copy(&resp, view); err != nil {
		return nil, errs.Wrapf(err, "map reservation %d", view.ID)
	}
	// named id types are not converted by copier
	resp.ID = int64(view.ID)
	resp.RoomID = int64(view.RoomID)
	return &resp, nil
}

func FromReservationViews(views []*queries.ReservationView) (*ReservationListResponse, error) {
	data := make([]*ReservationResponse, len(views))
	for i, v := range views {
		resp, err := FromReservationView(v)
		if err != nil {
			return nil, err
		}
		data[i] = resp
	}
	return &ReservationListResponse{Data: data, Total: len(data)}, nil
}
