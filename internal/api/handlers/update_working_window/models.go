package update_working_window

import (
	"github.com/agendly/appointment-service/internal/service/professionals/models"
)

// UpdateWorkingWindowRequest HTTP request model
type UpdateWorkingWindowRequest struct {
	Window models.WorkingWindow `json:"workingWindow"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса.
// UserID берется из контекста аутентификации.
func (r *UpdateWorkingWindowRequest) ToServiceRequest(userID int64) *models.UpdateWindowRequest {
	return &models.UpdateWindowRequest{
		UserID: userID,
		Window: r.Window,
	}
}
