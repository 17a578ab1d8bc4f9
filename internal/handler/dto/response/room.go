package response

import (
	"room-booking/internal/usecase/queries"
)

type RoomResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Capacity    int     `json:"capacity"`
	Description *string `json:"description"`
	Location    *string `json:"location"`
}

type RoomListResponse struct {
	Data  []*RoomResponse `json:"data"`
	Total int             `json:"total"`
}

func FromRoomView(view *queries.RoomView) *RoomResponse {
	return &RoomResponse{
		ID:          int64(view.ID),
		Name:        view.Name,
		Capacity:    view.Capacity,
		Description: view.Description,
		Location:    view.Location,
	}
}

func FromRoomViews(views []*queries.RoomView) *RoomListResponse {
	data := make([]*RoomResponse, len(views))
	for i, v := range views {
		data[i] = FromRoomView(v)
	}
	return &RoomListResponse{Data: data, Total: len(data)}
}
