package update_working_window

import (
	"context"

	"github.com/agendly/appointment-service/internal/service/professionals/models"
)

type ProfessionalService interface {
	UpdateWindow(ctx context.Context, professionalID int64, req *models.UpdateWindowRequest) (*models.ProfessionalResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
