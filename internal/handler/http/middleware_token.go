package http

import (
	"crypto/subtle"
	"net/http"

	"github.com/MKhiriev/founder-directory/internal/logger"
)

// maxUploadSize bounds the multipart body of a photo upload.
const maxUploadSize = 16 << 20

const paramToken = "k"

// withSessionToken rejects requests whose "k" parameter is empty or, when
// the server was started with a fixed key, differs from it. The key may
// travel in the query string, a urlencoded form or a multipart form.
func (h *Handler) withSessionToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		if err := h.checkToken(r); err != nil {
			log.Warn().Err(err).
				Str("func", "Handler.withSessionToken").
				Str("path", r.URL.Path).
				Msg("request rejected")
			writeRejected(w, http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (h *Handler) checkToken(r *http.Request) error {
	// multipart bodies are parsed on demand; FormValue alone would use a
	// 32MB limit
	if isMultipart(r) {
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			return ErrInvalidParameter
		}
	}

	token := r.FormValue(paramToken)
	if token == "" {
		return ErrEmptyToken
	}
	if h.sessionToken != "" && subtle.ConstantTimeCompare([]byte(token), []byte(h.sessionToken)) != 1 {
		return ErrTokenMismatch
	}
	return nil
}
