package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/campuseats/campuseats/internal/models"
)

type errorResp struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFromError(err), errorResp{Error: err.Error()})
}

// statusFromError maps the error taxonomy to HTTP statuses: validation 400,
// card and refusal conditions 422, races and duplicates 409, ownership 403/404
func statusFromError(err error) int {
	switch {
	case errors.Is(err, models.ErrEmptyOrder),
		errors.Is(err, models.ErrInvalidQuantity),
		errors.Is(err, models.ErrInvalidCancelReason),
		errors.Is(err, models.ErrReservedCancelReason),
		errors.Is(err, models.ErrCommentRequired),
		errors.Is(err, models.ErrInvalidReportType),
		errors.Is(err, models.ErrPosRefTooLong):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrInvalidCardNumber),
		errors.Is(err, models.ErrInvalidCardExpiry),
		errors.Is(err, models.ErrInvalidCardCVV),
		errors.Is(err, models.ErrInvalidCardHolder),
		errors.Is(err, models.ErrStudentNotVerified),
		errors.Is(err, models.ErrRestaurantDisabled),
		errors.Is(err, models.ErrRestaurantClosed),
		errors.Is(err, models.ErrUniversityInactive),
		errors.Is(err, models.ErrOrderingDisabled),
		errors.Is(err, models.ErrMaintenanceMode),
		errors.Is(err, models.ErrRestaurantBusy),
		errors.Is(err, models.ErrProductUnavailable),
		errors.Is(err, models.ErrExtraNotOfProduct),
		errors.Is(err, models.ErrInsufficientStock),
		errors.Is(err, models.ErrOrderNotCancellable):
		return http.StatusUnprocessableEntity
	case errors.Is(err, models.ErrStaleTransition),
		errors.Is(err, models.ErrConflict),
		errors.Is(err, models.ErrConflictData),
		errors.Is(err, models.ErrOrderAlreadyReported),
		errors.Is(err, models.ErrReportRateLimited):
		return http.StatusConflict
	case errors.Is(err, models.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, models.ErrDataNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
