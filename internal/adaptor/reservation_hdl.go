package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"facility-booking/internal/data/entity"
	"facility-booking/internal/dto/request"
	"facility-booking/internal/usecase"
	"facility-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ReservationHandler struct {
	service usecase.ReservationService
	log     *zap.Logger
}

func NewReservationHandler(service usecase.ReservationService, log *zap.Logger) *ReservationHandler {
	return &ReservationHandler{
		service: service,
		log:     log,
	}
}

// CreateStudio handles POST /api/admin/reservations
func (h *ReservationHandler) CreateStudio(w http.ResponseWriter, r *http.Request) {
	actorID, ok := utils.GetActorIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateStudioReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	created, err := h.service.CreateStudio(r.Context(), actorID, &req)
	if err != nil {
		h.handleServiceError(w, err, "create studio reservation")
		return
	}

	utils.ResponseCreated(w, "Reservation created successfully", created)
}

// CreateCowork handles POST /api/admin/reservations/cowork
func (h *ReservationHandler) CreateCowork(w http.ResponseWriter, r *http.Request) {
	actorID, ok := utils.GetActorIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateCoworkReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	created, err := h.service.CreateCowork(r.Context(), actorID, &req)
	if err != nil {
		h.handleServiceError(w, err, "create cowork reservation")
		return
	}

	utils.ResponseCreated(w, "Cowork reservation created successfully", created)
}

// CreateMeetingRoom handles POST /api/admin/reservations/meeting-room
func (h *ReservationHandler) CreateMeetingRoom(w http.ResponseWriter, r *http.Request) {
	actorID, ok := utils.GetActorIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateMeetingRoomReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	created, err := h.service.CreateMeetingRoom(r.Context(), actorID, &req)
	if err != nil {
		h.handleServiceError(w, err, "create meeting room reservation")
		return
	}

	utils.ResponseCreated(w, "Meeting room reservation created successfully", created)
}

// Approve handles PUT /api/admin/reservations/{type}/{id}/approve
func (h *ReservationHandler) Approve(w http.ResponseWriter, r *http.Request) {
	actorID, ok := utils.GetActorIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	resType, id, ok := h.pathTarget(w, r)
	if !ok {
		return
	}

	if err := h.service.Approve(r.Context(), resType, id, actorID); err != nil {
		h.handleServiceError(w, err, "approve reservation")
		return
	}

	utils.ResponseSuccess(w, "Reservation approved successfully", nil)
}

// Cancel handles PUT /api/admin/reservations/{type}/{id}/cancel
func (h *ReservationHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	resType, id, ok := h.pathTarget(w, r)
	if !ok {
		return
	}

	if err := h.service.Cancel(r.Context(), resType, id); err != nil {
		h.handleServiceError(w, err, "cancel reservation")
		return
	}

	utils.ResponseSuccess(w, "Reservation canceled successfully", nil)
}

func (h *ReservationHandler) pathTarget(w http.ResponseWriter, r *http.Request) (entity.ResourceType, int64, bool) {
	resType, ok := entity.ParseResourceType(chi.URLParam(r, "type"))
	if !ok {
		utils.ResponseBadRequest(w, "Invalid reservation type", nil)
		return "", 0, false
	}

	id := utils.ParseInt64(chi.URLParam(r, "id"))
	if id <= 0 {
		utils.ResponseBadRequest(w, "Invalid reservation ID", nil)
		return "", 0, false
	}

	return resType, id, true
}

// handleServiceError handles errors for reservation operations
func (h *ReservationHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"):
		h.log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, err)

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
