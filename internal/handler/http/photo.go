package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/founder-directory/internal/logger"
	"github.com/MKhiriev/founder-directory/internal/store"
	"github.com/MKhiriev/founder-directory/internal/utils"
)

type uploadResult struct {
	Result string `json:"result"`
}

var (
	uploadSucceeded = uploadResult{Result: "success"}
	uploadFailed    = uploadResult{Result: "failure"}
)

// uploadPhoto handles the multipart POST uploadphoto.php with k, i, t and
// the "file" part.
func (h *Handler) uploadPhoto(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		log.Warn().Err(err).Str("func", "Handler.uploadPhoto").Msg("invalid multipart body")
		utils.WriteJSON(w, uploadFailed, http.StatusOK)
		return
	}

	key, err := photoKeyParam(r)
	if err != nil {
		log.Warn().Err(err).Str("func", "Handler.uploadPhoto").Msg("invalid photo key")
		utils.WriteJSON(w, uploadFailed, http.StatusOK)
		return
	}

	file, _, err := r.FormFile(paramPhotoFile)
	if err != nil {
		log.Warn().Err(err).Str("func", "Handler.uploadPhoto").Str("key", key.String()).Msg("missing file part")
		utils.WriteJSON(w, uploadFailed, http.StatusOK)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		log.Err(err).Str("func", "Handler.uploadPhoto").Str("key", key.String()).Msg("error reading file part")
		utils.WriteJSON(w, uploadFailed, http.StatusOK)
		return
	}

	if err = h.services.DirectoryService.SavePhoto(r.Context(), key, data); err != nil {
		log.Warn().Err(err).Str("func", "Handler.uploadPhoto").Str("key", key.String()).Msg("photo not stored")
		utils.WriteJSON(w, uploadFailed, http.StatusOK)
		return
	}

	log.Debug().Str("key", key.String()).Int("size", len(data)).Msg("photo stored")
	utils.WriteJSON(w, uploadSucceeded, http.StatusOK)
}

// downloadPhoto handles GET getphoto.php?k&i&t. A missing photo is an empty
// 200 response.
func (h *Handler) downloadPhoto(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	key, err := photoKeyParam(r)
	if err != nil {
		w.WriteHeader(http.StatusOK)
		return
	}

	data, err := h.services.DirectoryService.LoadPhoto(r.Context(), key)
	if errors.Is(err, store.ErrPhotoNotFound) {
		w.WriteHeader(http.StatusOK)
		return
	}
	if err != nil {
		log.Err(err).Str("func", "Handler.downloadPhoto").Str("key", key.String()).Msg("error loading photo")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
