package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/heydancer/dancer-profile/internal/logger"
	"github.com/heydancer/dancer-profile/internal/utils"
	"github.com/heydancer/dancer-profile/models"
)

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var short models.ShortUser
	if err := json.NewDecoder(r.Body).Decode(&short); err != nil {
		log.Err(err).Str("func", "*Handler.createUser").Msg("Invalid JSON was passed")
		writeError(w, r, ErrInvalidJSON)
		return
	}

	if err := short.Validate(); err != nil {
		log.Err(err).Str("func", "*Handler.createUser").Msg("user validation failed")
		writeError(w, r, err)
		return
	}

	created, err := h.services.UserService.Create(r.Context(), short)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createUser").Msg("error creating user")
		writeError(w, r, err)
		return
	}

	if _, err := utils.WriteJSON(w, created, http.StatusCreated); err != nil {
		log.Err(err).Str("func", "*Handler.createUser").Msg("failed to write response")
	}
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, err := userIDFromRequest(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getUser").Msg("invalid user id in path")
		writeError(w, r, err)
		return
	}

	found, err := h.services.UserService.GetByID(r.Context(), userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getUser").Int64("user_id", userID).Msg("error getting user")
		writeError(w, r, err)
		return
	}

	if _, err := utils.WriteJSON(w, found, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getUser").Msg("failed to write response")
	}
}

func (h *Handler) getAllUsers(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	users, err := h.services.UserService.GetAll(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.getAllUsers").Msg("error listing users")
		writeError(w, r, err)
		return
	}

	if _, err := utils.WriteJSON(w, users, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getAllUsers").Msg("failed to write response")
	}
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, err := userIDFromRequest(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateUser").Msg("invalid user id in path")
		writeError(w, r, err)
		return
	}

	var short models.ShortUser
	if err := json.NewDecoder(r.Body).Decode(&short); err != nil {
		log.Err(err).Str("func", "*Handler.updateUser").Msg("Invalid JSON was passed")
		writeError(w, r, ErrInvalidJSON)
		return
	}

	if err := short.Validate(); err != nil {
		log.Err(err).Str("func", "*Handler.updateUser").Msg("user validation failed")
		writeError(w, r, err)
		return
	}

	updated, err := h.services.UserService.Update(r.Context(), userID, short)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateUser").Int64("user_id", userID).Msg("error updating user")
		writeError(w, r, err)
		return
	}

	if _, err := utils.WriteJSON(w, updated, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.updateUser").Msg("failed to write response")
	}
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, err := userIDFromRequest(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.deleteUser").Msg("invalid user id in path")
		writeError(w, r, err)
		return
	}

	if err := h.services.UserService.Delete(r.Context(), userID); err != nil {
		log.Err(err).Str("func", "*Handler.deleteUser").Int64("user_id", userID).Msg("error deleting user")
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// userIDFromRequest extracts and parses the {userId} path segment.
func userIDFromRequest(r *http.Request) (int64, error) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userId"), 10, 64)
	if err != nil {
		return 0, ErrInvalidUserID
	}

	return userID, nil
}
