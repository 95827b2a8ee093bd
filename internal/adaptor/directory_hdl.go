package adaptor

import (
	"net/http"

	"facility-booking/internal/usecase"
	"facility-booking/pkg/utils"

	"go.uber.org/zap"
)

type DirectoryHandler struct {
	service usecase.DirectoryService
	log     *zap.Logger
}

func NewDirectoryHandler(service usecase.DirectoryService, log *zap.Logger) *DirectoryHandler {
	return &DirectoryHandler{
		service: service,
		log:     log,
	}
}

// GetUsers handles GET /api/admin/users
func (h *DirectoryHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.Users(r.Context())
	if err != nil {
		h.log.Error("Failed to list users", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseSuccess(w, "Users retrieved successfully", users)
}

// GetEquipment handles GET /api/admin/equipment
func (h *DirectoryHandler) GetEquipment(w http.ResponseWriter, r *http.Request) {
	equipment, err := h.service.Equipment(r.Context())
	if err != nil {
		h.log.Error("Failed to list equipment", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseSuccess(w, "Equipment retrieved successfully", equipment)
}
