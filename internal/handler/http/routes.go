package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(withLogging)

	// every route sits behind basic auth
	router.Group(func(r chi.Router) {
		r.Use(h.basicAuth)

		r.Route("/users", func(r chi.Router) {
			r.Post("/", h.createUser)
			r.Get("/", h.getAllUsers)

			r.Route("/{userId}", func(r chi.Router) {
				r.Get("/", h.getUser)
				r.Put("/", h.updateUser)
				r.Delete("/", h.deleteUser)

				r.Route("/contacts", func(r chi.Router) {
					r.Post("/", h.addContacts)
					r.Get("/", h.getContacts)
					r.Put("/", h.updateContacts)
					r.Delete("/", h.deleteContacts)
				})

				r.Route("/images", func(r chi.Router) {
					r.Post("/", h.addImage)

					r.Route("/{imageId}", func(r chi.Router) {
						r.Get("/", h.getImage)
						r.Put("/", h.updateImage)
						r.Delete("/", h.deleteImage)
					})
				})
			})
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
