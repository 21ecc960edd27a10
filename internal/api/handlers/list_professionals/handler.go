package list_professionals

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/agendly/appointment-service/internal/api/handlers"
)

const (
	msgInvalidEnterpriseID = "некорректный ID предприятия"
)

type Handler struct {
	service ProfessionalService
	logger  Logger
}

func NewHandler(service ProfessionalService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/enterprises/{enterpriseId}/professionals
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем enterpriseId из URL
	vars := mux.Vars(r)
	enterpriseIDStr := vars["enterpriseId"]

	enterpriseID, err := strconv.ParseInt(enterpriseIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /enterprises/{id}/professionals - Invalid enterprise ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEnterpriseID)
		return
	}

	result, err := h.service.ListByEnterprise(r.Context(), enterpriseID)
	if err != nil {
		h.logger.Error("GET /enterprises/{id}/professionals - Failed to list professionals: enterprise_id=%d, error=%v",
			enterpriseID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /enterprises/{id}/professionals - Professionals retrieved successfully: enterprise_id=%d, count=%d",
		enterpriseID, len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}
