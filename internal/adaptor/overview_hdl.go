package adaptor

import (
	"net/http"
	"strings"

	"facility-booking/internal/data/entity"
	"facility-booking/internal/usecase"
	"facility-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type OverviewHandler struct {
	overview usecase.OverviewService
	export   usecase.ExportService
	summary  usecase.SummaryService
	log      *zap.Logger
}

func NewOverviewHandler(overview usecase.OverviewService, export usecase.ExportService, summary usecase.SummaryService, log *zap.Logger) *OverviewHandler {
	return &OverviewHandler{
		overview: overview,
		export:   export,
		summary:  summary,
		log:      log,
	}
}

// List handles GET /api/admin/reservations. With ?export=true it
// streams CSV instead of the JSON aggregate; ?fields= selects columns.
func (h *OverviewHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	if query.Get("export") == "true" {
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="`+h.export.Filename()+`"`)
		if err := h.export.Stream(r.Context(), w, query.Get("fields")); err != nil {
			// Headers are gone by now, just log it
			h.log.Error("Failed to stream export", zap.Error(err))
		}
		return
	}

	overview, err := h.overview.ListAll(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "list reservations")
		return
	}

	utils.ResponseSuccess(w, "Reservations retrieved successfully", overview)
}

// Info handles GET /api/admin/reservations/{id}/info
func (h *OverviewHandler) Info(w http.ResponseWriter, r *http.Request) {
	id := utils.ParseInt64(chi.URLParam(r, "id"))
	if id <= 0 {
		utils.ResponseBadRequest(w, "Invalid reservation ID", nil)
		return
	}

	detail, err := h.overview.Detail(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err, "get reservation info")
		return
	}

	utils.ResponseSuccess(w, "Reservation info retrieved successfully", detail)
}

// Summary handles GET /api/admin/reservations/{id}/summary.pdf
func (h *OverviewHandler) Summary(w http.ResponseWriter, r *http.Request) {
	id := utils.ParseInt64(chi.URLParam(r, "id"))
	if id <= 0 {
		utils.ResponseBadRequest(w, "Invalid reservation ID", nil)
		return
	}

	doc, filename, err := h.summary.Render(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err, "render reservation summary")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	if _, err := w.Write(doc); err != nil {
		h.log.Error("Failed to write summary response", zap.Error(err))
	}
}

// Events handles GET /api/admin/calendar/{type}/{id}/events
func (h *OverviewHandler) Events(w http.ResponseWriter, r *http.Request) {
	id := utils.ParseInt64(chi.URLParam(r, "id"))
	if id <= 0 {
		utils.ResponseBadRequest(w, "Invalid resource ID", nil)
		return
	}

	events, err := h.overview.ByResource(r.Context(), chi.URLParam(r, "type"), id)
	if err != nil {
		h.handleServiceError(w, err, "list calendar events")
		return
	}

	utils.ResponseSuccess(w, "Calendar events retrieved successfully", events)
}

// Resource handles GET /api/admin/calendar/{type}/{id}
func (h *OverviewHandler) Resource(w http.ResponseWriter, r *http.Request) {
	resType, ok := entity.ParseResourceType(chi.URLParam(r, "type"))
	if !ok {
		utils.ResponseBadRequest(w, "Invalid resource type", nil)
		return
	}

	id := utils.ParseInt64(chi.URLParam(r, "id"))
	if id <= 0 {
		utils.ResponseBadRequest(w, "Invalid resource ID", nil)
		return
	}

	header, err := h.overview.ResourceHeader(r.Context(), resType, id)
	if err != nil {
		h.handleServiceError(w, err, "get calendar resource")
		return
	}

	utils.ResponseSuccess(w, "Resource retrieved successfully", header)
}

// handleServiceError handles errors for overview operations
func (h *OverviewHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "invalid"):
		h.log.Warn("Invalid input for "+operation, zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, err)

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
