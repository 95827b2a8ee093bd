package usecase

import (
	"facility-booking/internal/data/repository"
	"facility-booking/internal/notify"
	"facility-booking/pkg/pdf"
	"facility-booking/pkg/utils"

	"go.uber.org/zap"
)

// Service bundles every use case behind one wiring point.
type Service struct {
	Reservation ReservationService
	Overview    OverviewService
	Export      ExportService
	Directory   DirectoryService
	Summary     SummaryService
}

func NewService(repo *repository.Repository, caps *repository.Capabilities, notifier *notify.Dispatcher, renderer pdf.Renderer, assets *utils.AssetResolver, log *zap.Logger) *Service {
	return &Service{
		Reservation: NewReservationService(repo, notifier, log),
		Overview:    NewOverviewService(repo, caps, assets, log),
		Export:      NewExportService(repo, caps, log),
		Directory:   NewDirectoryService(repo, caps, assets, log),
		Summary:     NewSummaryService(repo, caps, renderer, log),
	}
}
