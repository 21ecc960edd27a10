package get_availability

import (
	"time"

	"github.com/agendly/appointment-service/internal/domain"
	getAvailability "github.com/agendly/appointment-service/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	ProfessionalID int64              `json:"professionalId"`
	Date           string             `json:"date"`
	Slots          []AvailabilitySlot `json:"slots"`
}

// AvailabilitySlot модель слота сетки
type AvailabilitySlot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
	Label     string `json:"label"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	slots := make([]AvailabilitySlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailabilitySlot{
			Time:      slot.Time.String(),
			Available: slot.Available,
			Label:     slot.Label,
		}
	}

	return &AvailabilityResponse{
		ProfessionalID: resp.ProfessionalID,
		Date:           resp.Date.Format(domain.DateFormat),
		Slots:          slots,
	}
}

// ToUseCaseRequest создает запрос use case из параметров запроса
func ToUseCaseRequest(professionalID int64, dateStr string) (*getAvailability.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailability.Request{
		ProfessionalID: professionalID,
		Date:           date,
	}, nil
}
