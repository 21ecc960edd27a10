package get_professional_appointments

import (
	"time"

	"github.com/agendly/appointment-service/internal/domain"
	"github.com/agendly/appointment-service/internal/service/appointments/models"
)

// ToServiceRequest собирает запрос сервиса из параметров HTTP запроса
func ToServiceRequest(userID, professionalID int64, dateStr, statusStr string, includeInactive bool) (*models.GetProfessionalAppointmentsRequest, error) {
	req := &models.GetProfessionalAppointmentsRequest{
		UserID:          userID,
		ProfessionalID:  professionalID,
		IncludeInactive: includeInactive,
	}

	if dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	if statusStr != "" {
		req.Status = &statusStr
	}

	return req, nil
}
