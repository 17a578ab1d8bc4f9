package api

import (
	"context"
	"net/http"

	"room-booking/internal/domain/room"
	resdto "room-booking/internal/handler/dto/response"
	"room-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// RoomDeleter removes a room that no reservation references.
type RoomDeleter interface {
	DeleteRoom(ctx context.Context, id room.ID) error
}

type RoomHandler struct {
	q       queries.RoomQueries
	deleter RoomDeleter
}

func NewRoomHandler(q queries.RoomQueries, deleter RoomDeleter) *RoomHandler {
	return &RoomHandler{q: q, deleter: deleter}
}

// @Summary List rooms
// @Description List conference rooms ordered by name
// @Tags rooms
// @Produce json
// @Success 200 {object} resdto.RoomListResponse
// @Router /rooms [get]
func (h *RoomHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomViews(views))
}

// @Summary Get room
// @Description Get a conference room by ID
// @Tags rooms
// @Produce json
// @Param id path int true "Room ID"
// @Success 200 {object} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id} [get]
func (h *RoomHandler) Get(c *gin.Context) {
	id, ok := roomIDParam(c)
	if !ok {
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomView(view))
}

// @Summary Delete room
// @Description Delete a conference room. Refused while reservations reference it.
// @Tags rooms
// @Param id path int true "Room ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /rooms/{id} [delete]
func (h *RoomHandler) Delete(c *gin.Context) {
	id, ok := roomIDParam(c)
	if !ok {
		return
	}

	if err := h.deleter.DeleteRoom(c.Request.Context(), id); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
