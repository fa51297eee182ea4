package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Compress(5, "application/json", "text/csv"))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version", h.getServerVersion)
		r.Post("/api/auth/login", h.login)
	})

	// routes for every active account
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/auth/logout", h.logout)
		r.Get("/api/auth/me", h.me)

		r.Get("/api/sectors", h.listSectors)
		r.Get("/api/sectors/{id}", h.getSector)
		r.Post("/api/sectors/{id}/form", h.resolveForm)

		r.Get("/api/logs", h.queryLogs)
		r.Post("/api/logs", h.appendLog)
		r.Post("/api/logs/trips", h.submitTrip)
		r.Get("/api/logs/{id}", h.getLog)
		r.Patch("/api/logs/{id}", h.updateLog)
		r.Delete("/api/logs/{id}", h.removeLog)

		r.Put("/api/stats/bounds", h.upsertBound)
		r.Get("/api/stats/autofill", h.autofill)
		r.Get("/api/stats/total", h.monthlyTotal)

		r.Get("/api/vehicles", h.listVehicles)
		r.Get("/api/vehicles/{id}", h.getVehicle)
		r.Get("/api/workshops", h.listWorkshops)
		r.Get("/api/fuel-stations", h.listFuelStations)

		// master and owner only
		r.Group(func(r chi.Router) {
			r.Use(h.elevated)

			r.Get("/api/users", h.listUsers)
			r.Post("/api/users", h.createUser)
			r.Patch("/api/users/{id}", h.updateUser)

			r.Post("/api/sectors", h.createSector)
			r.Patch("/api/sectors/{id}", h.updateSector)
			r.Delete("/api/sectors/{id}", h.deleteSector)

			r.Get("/api/stats/report", h.monthReport)

			r.Post("/api/vehicles", h.createVehicle)
			r.Post("/api/vehicles/import", h.importVehicles)
			r.Put("/api/vehicles/{id}", h.updateVehicle)
			r.Delete("/api/vehicles/{id}", h.deleteVehicle)

			r.Post("/api/workshops", h.createWorkshop)
			r.Put("/api/workshops/{id}", h.updateWorkshop)
			r.Delete("/api/workshops/{id}", h.deleteWorkshop)

			r.Post("/api/fuel-stations", h.createFuelStation)
			r.Put("/api/fuel-stations/{id}", h.updateFuelStation)
			r.Delete("/api/fuel-stations/{id}", h.deleteFuelStation)
		})
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
