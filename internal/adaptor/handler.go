package adaptor

import (
	"facility-booking/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Reservation *ReservationHandler
	Overview    *OverviewHandler
	Directory   *DirectoryHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Reservation: NewReservationHandler(service.Reservation, log),
		Overview:    NewOverviewHandler(service.Overview, service.Export, service.Summary, log),
		Directory:   NewDirectoryHandler(service.Directory, log),
	}
}
