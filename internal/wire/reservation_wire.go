package wire

import (
	"facility-booking/internal/adaptor"
	"facility-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireReservation configures the reservation lifecycle and aggregate
// routes. Writes require a forwarded actor identity; the list, info and
// summary endpoints only read.
func wireReservation(
	r chi.Router,
	reservationHandler *adaptor.ReservationHandler,
	overviewHandler *adaptor.OverviewHandler,
	log *zap.Logger,
) {
	r.Route("/api/admin/reservations", func(r chi.Router) {
		r.Get("/", overviewHandler.List) // GET /api/admin/reservations?export=true&fields=...
		r.Get("/{id}/info", overviewHandler.Info)
		r.Get("/{id}/summary.pdf", overviewHandler.Summary)

		r.With(middleware.RequireIdentity(log)).Group(func(r chi.Router) {
			r.Post("/", reservationHandler.CreateStudio)
			r.Post("/cowork", reservationHandler.CreateCowork)
			r.Post("/meeting-room", reservationHandler.CreateMeetingRoom)
			r.Put("/{type}/{id}/approve", reservationHandler.Approve)
			r.Put("/{type}/{id}/cancel", reservationHandler.Cancel)
		})
	})
}
