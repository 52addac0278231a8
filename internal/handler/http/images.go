package http

import (
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/heydancer/dancer-profile/internal/logger"
	"github.com/heydancer/dancer-profile/internal/utils"
	"github.com/heydancer/dancer-profile/models"
)

// multipartFileField is the form field name the image endpoints expect.
const multipartFileField = "file"

func (h *Handler) addImage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, err := userIDFromRequest(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.addImage").Msg("invalid user id in path")
		writeError(w, r, err)
		return
	}

	upload, err := uploadFromRequest(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.addImage").Int64("user_id", userID).Msg("failed to read multipart file")
		writeError(w, r, ErrImageSave)
		return
	}

	info, err := h.services.ImageService.Add(r.Context(), userID, upload)
	if err != nil {
		log.Err(err).Str("func", "*Handler.addImage").Int64("user_id", userID).Msg("error adding image")
		writeError(w, r, err)
		return
	}

	if _, err := utils.WriteJSON(w, info, http.StatusCreated); err != nil {
		log.Err(err).Str("func", "*Handler.addImage").Msg("failed to write response")
	}
}

func (h *Handler) getImage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, imageID, err := imagePathFromRequest(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getImage").Msg("invalid path params")
		writeError(w, r, err)
		return
	}

	image, err := h.services.ImageService.Get(r.Context(), userID, imageID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getImage").Int64("image_id", imageID).Msg("error getting image")
		writeError(w, r, err)
		return
	}

	w.Header().Set("fileName", image.FileName)
	w.Header().Set("Content-Type", image.ContentType)
	w.Header().Set("Content-Length", strconv.FormatInt(image.Size, 10))
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(image.Bytes); err != nil {
		log.Err(err).Str("func", "*Handler.getImage").Msg("failed to write image payload")
	}
}

func (h *Handler) updateImage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, imageID, err := imagePathFromRequest(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateImage").Msg("invalid path params")
		writeError(w, r, err)
		return
	}

	upload, err := uploadFromRequest(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateImage").Int64("image_id", imageID).Msg("failed to read multipart file")
		writeError(w, r, ErrImageUpdate)
		return
	}

	info, err := h.services.ImageService.Update(r.Context(), userID, imageID, upload)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateImage").Int64("image_id", imageID).Msg("error updating image")
		writeError(w, r, err)
		return
	}

	if _, err := utils.WriteJSON(w, info, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.updateImage").Msg("failed to write response")
	}
}

func (h *Handler) deleteImage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, imageID, err := imagePathFromRequest(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.deleteImage").Msg("invalid path params")
		writeError(w, r, err)
		return
	}

	if err := h.services.ImageService.Delete(r.Context(), userID, imageID); err != nil {
		log.Err(err).Str("func", "*Handler.deleteImage").Int64("image_id", imageID).Msg("error deleting image")
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// uploadFromRequest reads the multipart "file" part into memory.
func uploadFromRequest(r *http.Request) (models.ImageUpload, error) {
	file, header, err := r.FormFile(multipartFileField)
	if err != nil {
		return models.ImageUpload{}, err
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return models.ImageUpload{}, err
	}

	return models.ImageUpload{
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        int64(len(bytes)),
		Bytes:       bytes,
	}, nil
}

// imagePathFromRequest extracts and parses the {userId} and {imageId}
// path segments.
func imagePathFromRequest(r *http.Request) (int64, int64, error) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		return 0, 0, err
	}

	imageID, err := strconv.ParseInt(chi.URLParam(r, "imageId"), 10, 64)
	if err != nil {
		return 0, 0, ErrInvalidImageID
	}

	return userID, imageID, nil
}
