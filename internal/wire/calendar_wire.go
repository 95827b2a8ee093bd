package wire

import (
	"facility-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireCalendar configures the per-resource calendar routes.
func wireCalendar(r chi.Router, overviewHandler *adaptor.OverviewHandler) {
	r.Route("/api/admin/calendar/{type}/{id}", func(r chi.Router) {
		r.Get("/", overviewHandler.Resource)
		r.Get("/events", overviewHandler.Events)
	})
}
