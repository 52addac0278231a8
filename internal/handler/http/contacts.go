package http

import (
	"encoding/json"
	"net/http"

	"github.com/heydancer/dancer-profile/internal/logger"
	"github.com/heydancer/dancer-profile/internal/utils"
	"github.com/heydancer/dancer-profile/models"
)

func (h *Handler) addContacts(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, err := userIDFromRequest(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.addContacts").Msg("invalid user id in path")
		writeError(w, r, err)
		return
	}

	var contact models.UserContact
	if err := json.NewDecoder(r.Body).Decode(&contact); err != nil {
		log.Err(err).Str("func", "*Handler.addContacts").Msg("Invalid JSON was passed")
		writeError(w, r, ErrInvalidJSON)
		return
	}

	if err := contact.Validate(); err != nil {
		log.Err(err).Str("func", "*Handler.addContacts").Msg("contact validation failed")
		writeError(w, r, err)
		return
	}

	added, err := h.services.ContactService.Add(r.Context(), userID, contact)
	if err != nil {
		log.Err(err).Str("func", "*Handler.addContacts").Int64("user_id", userID).Msg("error adding contacts")
		writeError(w, r, err)
		return
	}

	if _, err := utils.WriteJSON(w, added, http.StatusCreated); err != nil {
		log.Err(err).Str("func", "*Handler.addContacts").Msg("failed to write response")
	}
}

func (h *Handler) getContacts(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, err := userIDFromRequest(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getContacts").Msg("invalid user id in path")
		writeError(w, r, err)
		return
	}

	contact, err := h.services.ContactService.Get(r.Context(), userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getContacts").Int64("user_id", userID).Msg("error getting contacts")
		writeError(w, r, err)
		return
	}

	if _, err := utils.WriteJSON(w, contact, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getContacts").Msg("failed to write response")
	}
}

func (h *Handler) updateContacts(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, err := userIDFromRequest(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateContacts").Msg("invalid user id in path")
		writeError(w, r, err)
		return
	}

	var contact models.UserContact
	if err := json.NewDecoder(r.Body).Decode(&contact); err != nil {
		log.Err(err).Str("func", "*Handler.updateContacts").Msg("Invalid JSON was passed")
		writeError(w, r, ErrInvalidJSON)
		return
	}

	if err := contact.Validate(); err != nil {
		log.Err(err).Str("func", "*Handler.updateContacts").Msg("contact validation failed")
		writeError(w, r, err)
		return
	}

	updated, err := h.services.ContactService.Update(r.Context(), userID, contact)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateContacts").Int64("user_id", userID).Msg("error updating contacts")
		writeError(w, r, err)
		return
	}

	if _, err := utils.WriteJSON(w, updated, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.updateContacts").Msg("failed to write response")
	}
}

func (h *Handler) deleteContacts(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, err := userIDFromRequest(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.deleteContacts").Msg("invalid user id in path")
		writeError(w, r, err)
		return
	}

	if err := h.services.ContactService.Delete(r.Context(), userID); err != nil {
		log.Err(err).Str("func", "*Handler.deleteContacts").Int64("user_id", userID).Msg("error deleting contacts")
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
