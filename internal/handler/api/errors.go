package api

import (
	"net/http"

	reqdto "room-booking/internal/handler/dto/request"
	"room-booking/internal/handler/httperr"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/usecase/admission"
	"room-booking/internal/usecase/validation"

	"github.com/gin-gonic/gin"
)

// retryAfterSeconds is the hint sent with 503 responses.
const retryAfterSeconds = "1"

// abortWithUseCaseError maps command and query failures onto HTTP responses.
func abortWithUseCaseError(c *gin.Context, err error) {
	var formatErr *reqdto.FormatError
	var validationErr *validation.Error

	if id, ok := admission.ConflictingID(err); ok {
		detail := gin.H{}
		if id != 0 {
			detail["conflictingReservationId"] = id
		}
		httperr.AbortWithError(c, http.StatusConflict, err, "Reservation overlaps an existing reservation", detail)
		return
	}

	switch {
	case errs.As(err, &formatErr):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Validation failed", gin.H{
			formatErr.Field: formatErr.Error(),
		})
	case errs.As(err, &validationErr):
		status := http.StatusBadRequest
		if validationErr.Kind == validation.KindRoomNotFound {
			status = http.StatusNotFound
		}
		httperr.AbortWithError(c, status, err, "Validation failed", gin.H{
			validationErr.Field: validationErr.Message,
			"kind":              validationErr.Kind,
		})
	case errs.Is(err, errs.ErrReservationNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
	case errs.Is(err, errs.ErrRoomNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Conference room not found", nil)
	case errs.Is(err, errs.ErrRoomInUse):
		httperr.AbortWithError(c, http.StatusConflict, err, "Conference room has reservations", nil)
	case errs.Is(err, errs.ErrInvalidDate):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date", nil)
	case errs.Is(err, errs.ErrStoreUnavailable), errs.Is(err, errs.ErrTimeout):
		c.Header("Retry-After", retryAfterSeconds)
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Service temporarily unavailable", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
