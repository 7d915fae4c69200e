package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Endpoint paths, relative to the server root.
const (
	deleteFounderRoute   = "/deletefounder.php"
	createFounderRoute   = "/addfounder.php"
	updateFounderRoute   = "/updatefounder.php"
	getUpdatesSinceRoute = "/getupdatessince.php"
	uploadPhotoRoute     = "/uploadphoto.php"
	downloadPhotoRoute   = "/getphoto.php"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	router.Group(func(r chi.Router) {
		r.Use(h.withSessionToken)

		r.Get(deleteFounderRoute, h.deleteFounder)
		r.Post(createFounderRoute, h.createFounder)
		r.Post(updateFounderRoute, h.updateFounder)
		r.Get(getUpdatesSinceRoute, h.getUpdatesSince)

		r.Post(uploadPhotoRoute, h.uploadPhoto)
		r.Get(downloadPhotoRoute, h.downloadPhoto)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
