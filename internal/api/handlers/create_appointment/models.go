package create_appointment

import (
	"time"

	"github.com/agendly/appointment-service/internal/domain"
	bookAppointment "github.com/agendly/appointment-service/internal/usecase/book_appointment"
	"github.com/agendly/appointment-service/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	ProfessionalID int64   `json:"professionalId"`
	ServiceID      *int64  `json:"serviceId,omitempty"`
	ServiceName    string  `json:"serviceName"`
	Date           string  `json:"date"`      // "2025-10-15"
	StartTime      string  `json:"startTime"` // "10:00"
	Notes          *string `json:"notes,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID             int64   `json:"id"`
	EnterpriseID   int64   `json:"enterpriseId"`
	ProfessionalID int64   `json:"professionalId"`
	ClientID       int64   `json:"clientId"`
	ServiceID      *int64  `json:"serviceId,omitempty"`
	Date           string  `json:"date"`
	StartTime      string  `json:"startTime"`
	Status         string  `json:"status"`
	ServiceName    string  `json:"serviceName"`
	Notes          *string `json:"notes,omitempty"`
	CreatedAt      string  `json:"createdAt"`
	UpdatedAt      string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// ClientID берется из контекста аутентификации, а не из тела запроса.
func (r *CreateAppointmentRequest) ToUseCaseRequest(clientID int64) (*bookAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &bookAppointment.Request{
		ClientID:       clientID,
		ProfessionalID: r.ProfessionalID,
		ServiceID:      r.ServiceID,
		ServiceName:    r.ServiceName,
		Date:           date,
		StartTime:      startTime,
		Notes:          r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:             resp.ID,
		EnterpriseID:   resp.EnterpriseID,
		ProfessionalID: resp.ProfessionalID,
		ClientID:       resp.ClientID,
		ServiceID:      resp.ServiceID,
		Date:           resp.Date.Format(domain.DateFormat),
		StartTime:      resp.StartTime.Label(),
		Status:         resp.Status,
		ServiceName:    resp.ServiceName,
		Notes:          resp.Notes,
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      resp.UpdatedAt.Format(time.RFC3339),
	}
}
