package confirm_verification

import (
	"errors"
	"net/http"

	"github.com/agendly/appointment-service/internal/api/handlers"
	"github.com/agendly/appointment-service/internal/infra/verification"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingFields      = "телефон/email и код обязательны"
	msgCodeNotFound       = "код не найден или истек"
	msgCodeMismatch       = "неверный код подтверждения"
)

type Handler struct {
	store  VerificationStore
	logger Logger
}

func NewHandler(store VerificationStore, logger Logger) *Handler {
	return &Handler{
		store:  store,
		logger: logger,
	}
}

// Handle POST /api/v1/verification/confirm
// Код одноразовый: успешное подтверждение удаляет его атомарно,
// неверная попытка также сжигает код
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ConfirmVerificationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /verification/confirm - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.Subject == "" || req.Code == "" {
		h.logger.Warn("POST /verification/confirm - Missing subject or code")
		handlers.RespondBadRequest(w, msgMissingFields)
		return
	}

	if err := h.store.Consume(r.Context(), req.Subject, req.Code); err != nil {
		switch {
		case errors.Is(err, verification.ErrCodeNotFound):
			h.logger.Warn("POST /verification/confirm - Code not found or expired: subject=%s", req.Subject)
			handlers.RespondNotFound(w, msgCodeNotFound)

		case errors.Is(err, verification.ErrCodeMismatch):
			h.logger.Warn("POST /verification/confirm - Code mismatch: subject=%s", req.Subject)
			handlers.RespondBadRequest(w, msgCodeMismatch)

		default:
			h.logger.Error("POST /verification/confirm - Failed to consume code: subject=%s, error=%v", req.Subject, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /verification/confirm - Subject verified successfully: subject=%s", req.Subject)
	handlers.RespondJSON(w, http.StatusOK, ConfirmVerificationResponse{Verified: true})
}
