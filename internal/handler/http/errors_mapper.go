package http

import (
	"errors"
	"net/http"

	"github.com/heydancer/dancer-profile/internal/logger"
	"github.com/heydancer/dancer-profile/internal/service"
	"github.com/heydancer/dancer-profile/internal/store"
	"github.com/heydancer/dancer-profile/internal/utils"
	"github.com/heydancer/dancer-profile/models"
)

var errorStatusMap = map[error]int{
	store.ErrUserNotFound:  http.StatusNotFound,
	store.ErrImageNotFound: http.StatusNotFound,

	service.ErrContactsNotFound:     http.StatusNotFound,
	service.ErrContactsAlreadyAdded: http.StatusBadRequest,
	service.ErrContactsNotAdded:     http.StatusBadRequest,
	service.ErrImageAlreadyAdded:    http.StatusBadRequest,
	service.ErrNotImageOwner:        http.StatusBadRequest,
	service.ErrEmptyImage:           http.StatusBadRequest,

	ErrInvalidJSON:    http.StatusBadRequest,
	ErrInvalidUserID:  http.StatusBadRequest,
	ErrInvalidImageID: http.StatusBadRequest,
	ErrImageSave:      http.StatusBadRequest,
	ErrImageUpdate:    http.StatusBadRequest,

	models.ErrFirstnameEmpty:   http.StatusBadRequest,
	models.ErrLastnameEmpty:    http.StatusBadRequest,
	models.ErrSurnameEmpty:     http.StatusBadRequest,
	models.ErrBirthdayNull:     http.StatusBadRequest,
	models.ErrBirthdayInFuture: http.StatusBadRequest,
	models.ErrEmailEmpty:       http.StatusBadRequest,
	models.ErrEmailInvalid:     http.StatusBadRequest,
	models.ErrPhoneNumberNull:  http.StatusBadRequest,
	models.ErrPhoneNumberLong:  http.StatusBadRequest,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// categoryFromStatus maps an HTTP status to the error category string
// clients receive in the "error" field.
func categoryFromStatus(status int) string {
	switch status {
	case http.StatusNotFound:
		return "NOT FOUND"
	case http.StatusBadRequest:
		return "BAD REQUEST"
	default:
		return "INTERNAL SERVER ERROR"
	}
}

// writeError serializes err into the uniform error body
// {"error": <category>, "description": <message>}.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	body := models.ErrorResponse{
		Error:       categoryFromStatus(status),
		Description: err.Error(),
	}

	if _, writeErr := utils.WriteJSON(w, body, status); writeErr != nil {
		log.Err(writeErr).Msg("failed to write error response")
	}
}
