package wire

import (
	"facility-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireDirectory configures the booking-form selector routes.
func wireDirectory(r chi.Router, directoryHandler *adaptor.DirectoryHandler) {
	r.Get("/api/admin/users", directoryHandler.GetUsers)
	r.Get("/api/admin/equipment", directoryHandler.GetEquipment)
}
