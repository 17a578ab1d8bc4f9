package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"room-booking/internal/domain/reservation"
	"room-booking/internal/domain/room"
	reqdto "room-booking/internal/handler/dto/request"
	resdto "room-booking/internal/handler/dto/response"
	"room-booking/internal/handler/httperr"
	"room-booking/internal/usecase/commands"
	"room-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	cmds commands.ReservationCommands
	q    queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q}
}

// @Summary Create reservation
// @Description Admit a new reservation for a conference room
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse "Admitted; only the id when it could not be read back"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid JSON payload", nil)
		return
	}

	id, err := h.cmds.Create(c.Request.Context(), req)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	h.respondCommitted(c, http.StatusCreated, id)
}

// @Summary Get reservation
// @Description Get reservation by ID
// @Tags reservations
// @Produce json
// @Param id path int true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	id, ok := reservationIDParam(c)
	if !ok {
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	resp, err := resdto.FromReservationView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render reservation", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Replace reservation
// @Description Replace a reservation's reserver, interval and notes. Omitted notes are cleared.
// @Tags reservations
// @Accept json
// @Produce json
// @Param id path int true "Reservation ID"
// @Param request body reqdto.ReplaceReservationRequest true "Replacement"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /reservations/{id} [put]
func (h *ReservationHandler) Replace(c *gin.Context) {
	var req reqdto.ReplaceReservationRequest
	h.update(c, &req, func() reqdto.UpdateReservationRequest { return req.AsUpdate() })
}

// @Summary Update reservation
// @Description Update some fields of a reservation. The room cannot be changed.
// @Tags reservations
// @Accept json
// @Produce json
// @Param id path int true "Reservation ID"
// @Param request body reqdto.UpdateReservationRequest true "Fields to change"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /reservations/{id} [patch]
func (h *ReservationHandler) Update(c *gin.Context) {
	var req reqdto.UpdateReservationRequest
	h.update(c, &req, func() reqdto.UpdateReservationRequest { return req })
}

// update binds into body, then hands the merged request built by toUpdate to the command.
func (h *ReservationHandler) update(c *gin.Context, body any, toUpdate func() reqdto.UpdateReservationRequest) {
	id, ok := reservationIDParam(c)
	if !ok {
		return
	}
	if err := c.ShouldBindJSON(body); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid JSON payload", nil)
		return
	}

	if err := h.cmds.Update(c.Request.Context(), id, toUpdate()); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	h.respondCommitted(c, http.StatusOK, id)
}

// respondCommitted renders a reservation that was just written. The write stands even if
// reading it back fails, so the client then gets the success status with the id alone.
func (h *ReservationHandler) respondCommitted(c *gin.Context, status int, id reservation.ID) {
	ctx := c.Request.Context()
	view, err := h.q.GetByID(ctx, id)
	if err == nil {
		var resp *resdto.ReservationResponse
		if resp, err = resdto.FromReservationView(view); err == nil {
			c.JSON(status, resp)
			return
		}
	}
	slog.WarnContext(ctx, "read back after commit failed", "reservation_id", id, "error", err)
	c.JSON(status, resdto.ReservationIDResponse{ID: int64(id)})
}

// @Summary Delete reservation
// @Description Withdraw a reservation, freeing its interval
// @Tags reservations
// @Param id path int true "Reservation ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /reservations/{id} [delete]
func (h *ReservationHandler) Delete(c *gin.Context) {
	id, ok := reservationIDParam(c)
	if !ok {
		return
	}

	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List room reservations
// @Description List a room's reservations ordered by date and start time. date wins over startDate/endDate; the range applies only when both ends are given.
// @Tags reservations
// @Produce json
// @Param id path int true "Room ID"
// @Param date query string false "Single day (YYYY-MM-DD)"
// @Param startDate query string false "Range start, inclusive (YYYY-MM-DD)"
// @Param endDate query string false "Range end, inclusive (YYYY-MM-DD)"
// @Success 200 {object} resdto.ReservationListResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id}/reservations [get]
func (h *ReservationHandler) ListByRoom(c *gin.Context) {
	roomID, ok := roomIDParam(c)
	if !ok {
		return
	}

	var query reqdto.ListRoomReservationsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	filter, err := query.ToFilter()
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	views, err := h.q.ListByRoom(c.Request.Context(), roomID, filter)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	resp, err := resdto.FromReservationViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render reservations", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func reservationIDParam(c *gin.Context) (reservation.ID, bool) {
	id, err := positiveIDParam(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation ID format", nil)
		return 0, false
	}
	return reservation.ID(id), true
}

func roomIDParam(c *gin.Context) (room.ID, bool) {
	id, err := positiveIDParam(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid room ID format", nil)
		return 0, false
	}
	return room.ID(id), true
}

func positiveIDParam(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, strconv.ErrRange
	}
	return id, nil
}
