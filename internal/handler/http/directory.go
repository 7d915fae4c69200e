package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/MKhiriev/founder-directory/internal/logger"
	"github.com/MKhiriev/founder-directory/internal/service"
	"github.com/MKhiriev/founder-directory/internal/store"
	"github.com/MKhiriev/founder-directory/internal/utils"
)

// deleteFounder handles GET deletefounder.php?k&i. It answers the new max
// version, or "0" when the record does not exist.
func (h *Handler) deleteFounder(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := requiredParam(r, paramID)
	if err != nil {
		writeRejected(w, http.StatusOK)
		return
	}

	maxVersion, err := h.services.DirectoryService.Delete(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, r, "Handler.deleteFounder", err)
		return
	}

	log.Debug().Str("id", id).Int64("max_version", maxVersion).Msg("founder deleted")
	utils.WriteText(w, strconv.FormatInt(maxVersion, 10), http.StatusOK)
}

// createFounder handles POST addfounder.php with the positional fields. It
// answers the stored record with its assigned id and version.
func (h *Handler) createFounder(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		writeRejected(w, http.StatusOK)
		return
	}

	founder, err := h.services.DirectoryService.Create(r.Context(), formFields(r))
	if err != nil {
		h.writeServiceError(w, r, "Handler.createFounder", err)
		return
	}

	log.Debug().Str("id", founder.ID).Int64("version", founder.Version).Msg("founder created")
	utils.WriteJSON(w, founderRecord(founder), http.StatusOK)
}

// updateFounder handles POST updatefounder.php with i, v and the positional
// fields.
func (h *Handler) updateFounder(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		writeRejected(w, http.StatusOK)
		return
	}
	id, err := requiredParam(r, paramID)
	if err != nil {
		writeRejected(w, http.StatusOK)
		return
	}
	baseVersion, err := int64Param(r, paramVersion, 0)
	if err != nil {
		writeRejected(w, http.StatusOK)
		return
	}

	founder, err := h.services.DirectoryService.Update(r.Context(), id, baseVersion, formFields(r))
	if err != nil {
		h.writeServiceError(w, r, "Handler.updateFounder", err)
		return
	}

	log.Debug().Str("id", founder.ID).Int64("version", founder.Version).Msg("founder updated")
	utils.WriteJSON(w, founderRecord(founder), http.StatusOK)
}

// getUpdatesSince handles GET getupdatessince.php?k&v&x. It answers every
// record and tombstone with v < version <= x as a JSON array; x <= 0 or an
// absent x lifts the upper bound.
func (h *Handler) getUpdatesSince(w http.ResponseWriter, r *http.Request) {
	lower, err := int64Param(r, paramVersion, 0)
	if err != nil {
		writeRejected(w, http.StatusOK)
		return
	}
	upper, err := int64Param(r, paramUpperMax, 0)
	if err != nil {
		writeRejected(w, http.StatusOK)
		return
	}

	founders, err := h.services.DirectoryService.Since(r.Context(), lower, upper)
	if err != nil {
		h.writeServiceError(w, r, "Handler.getUpdatesSince", err)
		return
	}

	records := make([]map[string]string, 0, len(founders))
	for _, f := range founders {
		records = append(records, founderRecord(f))
	}
	utils.WriteJSON(w, records, http.StatusOK)
}

// writeServiceError answers "0" for requests the directory refuses and 500
// for everything else.
func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	log := logger.FromRequest(r)

	switch {
	case errors.Is(err, store.ErrFounderNotFound),
		errors.Is(err, service.ErrInvalidDataProvided):
		log.Debug().Err(err).Str("func", funcName).Msg("request refused")
		writeRejected(w, http.StatusOK)
	default:
		log.Err(err).Str("func", funcName).Msg("directory service failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

