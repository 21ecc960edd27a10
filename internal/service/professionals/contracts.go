package professionals

import (
	"context"

	"github.com/agendly/appointment-service/internal/domain"
)

// ProfessionalRepository интерфейс справочника профессионалов
type ProfessionalRepository interface {
	Create(ctx context.Context, p *domain.Professional) (*domain.Professional, error)
	GetByID(ctx context.Context, id int64) (*domain.Professional, error)
	GetByEnterprise(ctx context.Context, enterpriseID int64) ([]*domain.Professional, error)
	UpdateWindow(ctx context.Context, id int64, window domain.WorkingWindow) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
