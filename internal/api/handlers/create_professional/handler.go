package create_professional

import (
	"errors"
	"net/http"

	"github.com/agendly/appointment-service/internal/api/handlers"
	"github.com/agendly/appointment-service/internal/api/middleware"
	"github.com/agendly/appointment-service/internal/service/professionals"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "доступ запрещен"
	msgInvalidWindow      = "некорректное рабочее окно"
	msgInvalidInput       = "некорректные входные данные"
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

// Handle POST /api/v1/professionals
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /professionals - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Декодируем body
	var req CreateProfessionalRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /professionals - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Регистрируем профессионала (сервис сам проверит права доступа)
	result, err := h.service.Create(r.Context(), req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, professionals.ErrAccessDenied):
			h.logger.Warn("POST /professionals - Access denied: enterprise_id=%d, user_id=%d", req.EnterpriseID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, professionals.ErrInvalidWorkingWindow):
			h.logger.Warn("POST /professionals - Invalid window: enterprise_id=%d, error=%v", req.EnterpriseID, err)
			handlers.RespondBadRequest(w, msgInvalidWindow)

		case errors.Is(err, professionals.ErrInvalidInput):
			h.logger.Warn("POST /professionals - Invalid input: enterprise_id=%d, error=%v", req.EnterpriseID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /professionals - Failed to create professional: enterprise_id=%d, error=%v",
				req.EnterpriseID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /professionals - Professional created successfully: professional_id=%d, enterprise_id=%d",
		result.ID, req.EnterpriseID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
