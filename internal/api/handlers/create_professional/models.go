package create_professional

import (
	"github.com/agendly/appointment-service/internal/service/professionals/models"
)

// CreateProfessionalRequest HTTP request model
type CreateProfessionalRequest struct {
	EnterpriseID int64                `json:"enterpriseId"`
	Name         string               `json:"name"`
	Window       models.WorkingWindow `json:"workingWindow"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса.
// UserID берется из контекста аутентификации.
func (r *CreateProfessionalRequest) ToServiceRequest(userID int64) *models.CreateProfessionalRequest {
	return &models.CreateProfessionalRequest{
		UserID:       userID,
		EnterpriseID: r.EnterpriseID,
		Name:         r.Name,
		Window:       r.Window,
	}
}
