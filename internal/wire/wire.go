package wire

import (
	"net/http"

	"facility-booking/internal/adaptor"
	"facility-booking/internal/data/repository"
	"facility-booking/internal/notify"
	"facility-booking/internal/usecase"
	"facility-booking/pkg/middleware"
	"facility-booking/pkg/pdf"
	"facility-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired HTTP surface.
type App struct {
	Router *chi.Mux
}

// Wiring builds services and handlers on top of the repositories and
// the capability descriptor resolved at startup.
func Wiring(repo *repository.Repository, caps *repository.Capabilities, notifier *notify.Dispatcher, config *utils.Config, logger *zap.Logger) *App {
	assets := utils.NewAssetResolver(config.Assets.BaseURL)
	renderer := pdf.NewRenderer(config.App.Name)

	service := usecase.NewService(repo, caps, notifier, renderer, assets, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(handler *adaptor.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.Identity(logger))

	// Apply routes
	wireReservation(r, handler.Reservation, handler.Overview, logger)
	wireCalendar(r, handler.Overview)
	wireDirectory(r, handler.Directory)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
