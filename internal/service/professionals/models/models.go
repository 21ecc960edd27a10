package models

import (
	"time"

	"github.com/agendly/appointment-service/internal/domain"
	"github.com/agendly/appointment-service/pkg/types"
)

// CreateProfessionalRequest запрос на регистрацию профессионала
type CreateProfessionalRequest struct {
	UserID       int64         `json:"userId"`
	EnterpriseID int64         `json:"enterpriseId"`
	Name         string        `json:"name"`
	Window       WorkingWindow `json:"workingWindow"`
}

// UpdateWindowRequest запрос на обновление рабочего окна
type UpdateWindowRequest struct {
	UserID int64         `json:"userId"`
	Window WorkingWindow `json:"workingWindow"`
}

// WorkingWindow транспортное представление рабочего окна
type WorkingWindow struct {
	FromWeekday int    `json:"fromWeekday"` // 0 = воскресенье
	ToWeekday   int    `json:"toWeekday"`
	FromTime    string `json:"fromTime"` // HH:MM
	ToTime      string `json:"toTime"`   // HH:MM
}

// ToDomain конвертирует транспортное окно в domain
// Валидация инвариантов выполняется на уровне domain.WorkingWindow
func (w WorkingWindow) ToDomain() domain.WorkingWindow {
	return domain.WorkingWindow{
		FromWeekday: time.Weekday(w.FromWeekday),
		ToWeekday:   time.Weekday(w.ToWeekday),
		FromTime:    types.TimeString(w.FromTime),
		ToTime:      types.TimeString(w.ToTime),
	}
}

// FromDomainWindow конвертирует domain-окно в транспортное представление
func FromDomainWindow(w domain.WorkingWindow) WorkingWindow {
	return WorkingWindow{
		FromWeekday: int(w.FromWeekday),
		ToWeekday:   int(w.ToWeekday),
		FromTime:    w.FromTime.Label(),
		ToTime:      w.ToTime.Label(),
	}
}

// ProfessionalResponse представление профессионала
type ProfessionalResponse struct {
	ID           int64         `json:"id"`
	EnterpriseID int64         `json:"enterpriseId"`
	Name         string        `json:"name"`
	Window       WorkingWindow `json:"workingWindow"`
	CreatedAt    string        `json:"createdAt"`
	UpdatedAt    string        `json:"updatedAt"`
}

// FromDomainProfessional конвертирует domain-профессионала в response
func FromDomainProfessional(p *domain.Professional) *ProfessionalResponse {
	return &ProfessionalResponse{
		ID:           p.ID,
		EnterpriseID: p.EnterpriseID,
		Name:         p.Name,
		Window:       FromDomainWindow(p.Window),
		CreatedAt:    p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    p.UpdatedAt.Format(time.RFC3339),
	}
}
