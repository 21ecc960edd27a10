package request_verification

import (
	"net/http"

	"github.com/agendly/appointment-service/internal/api/handlers"
	"github.com/agendly/appointment-service/internal/infra/verification"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingSubject     = "телефон или email обязателен"
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

// Handle POST /api/v1/verification/request
// Генерирует код и сохраняет его с TTL. Код доставляется клиенту по
// внешнему каналу (SMS/email) и никогда не возвращается в ответе.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req RequestVerificationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /verification/request - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.Subject == "" {
		h.logger.Warn("POST /verification/request - Missing subject")
		handlers.RespondBadRequest(w, msgMissingSubject)
		return
	}

	code, err := verification.GenerateCode()
	if err != nil {
		h.logger.Error("POST /verification/request - Failed to generate code: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	if err := h.store.Put(r.Context(), req.Subject, code); err != nil {
		h.logger.Error("POST /verification/request - Failed to store code: subject=%s, error=%v", req.Subject, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /verification/request - Verification code issued: subject=%s", req.Subject)
	handlers.RespondJSON(w, http.StatusAccepted, RequestVerificationResponse{Status: "sent"})
}
