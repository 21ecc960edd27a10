package list_professionals

import (
	"context"

	"github.com/agendly/appointment-service/internal/service/professionals/models"
)

type ProfessionalService interface {
	ListByEnterprise(ctx context.Context, enterpriseID int64) ([]*models.ProfessionalResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
