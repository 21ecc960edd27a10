package professionals

import (
	"context"
	"errors"
	"fmt"

	"github.com/agendly/appointment-service/internal/domain"
	professionalRepo "github.com/agendly/appointment-service/internal/infra/storage/professional"
	"github.com/agendly/appointment-service/internal/service/professionals/models"
)

// Service сервис справочника профессионалов и их рабочих окон
type Service struct {
	professionalRepo ProfessionalRepository
	logger           Logger
}

// NewService создает новый экземпляр сервиса профессионалов
func NewService(professionalRepo ProfessionalRepository, logger Logger) *Service {
	return &Service{
		professionalRepo: professionalRepo,
		logger:           logger,
	}
}

// Create регистрирует профессионала с рабочим окном
// Некорректное окно отклоняется здесь, на административной границе:
// query-path расчета слотов считает окно заранее провалидированным
func (s *Service) Create(ctx context.Context, req *models.CreateProfessionalRequest) (*models.ProfessionalResponse, error) {
	s.logger.Info("Create: registering professional for enterprise=%d by user=%d", req.EnterpriseID, req.UserID)

	if req.UserID != req.EnterpriseID {
		s.logger.Warn("Create: user=%d is not enterprise=%d", req.UserID, req.EnterpriseID)
		return nil, ErrAccessDenied
	}

	if req.Name == "" || len(req.Name) > domain.MaxNameLength {
		return nil, fmt.Errorf("%w: name is required and must not exceed %d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	window := req.Window.ToDomain()
	if err := window.Validate(); err != nil {
		s.logger.Warn("Create: invalid working window: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidWorkingWindow, err)
	}

	professional := &domain.Professional{
		EnterpriseID: req.EnterpriseID,
		Name:         req.Name,
		Window:       window,
	}

	created, err := s.professionalRepo.Create(ctx, professional)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully registered professional id=%d", created.ID)
	return models.FromDomainProfessional(created), nil
}

// GetByID получает профессионала с его рабочим окном
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ProfessionalResponse, error) {
	s.logger.Info("GetByID: fetching professional id=%d", id)

	professional, err := s.professionalRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, professionalRepo.ErrProfessionalNotFound) {
			s.logger.Warn("GetByID: professional id=%d not found", id)
			return nil, ErrProfessionalNotFound
		}
		s.logger.Error("GetByID: repository error for professional id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainProfessional(professional), nil
}

// ListByEnterprise возвращает всех профессионалов предприятия
func (s *Service) ListByEnterprise(ctx context.Context, enterpriseID int64) ([]*models.ProfessionalResponse, error) {
	s.logger.Info("ListByEnterprise: fetching professionals of enterprise=%d", enterpriseID)

	professionals, err := s.professionalRepo.GetByEnterprise(ctx, enterpriseID)
	if err != nil {
		s.logger.Error("ListByEnterprise: repository error for enterprise=%d: %v", enterpriseID, err)
		return nil, fmt.Errorf("%w: ListByEnterprise - repository error: %v", ErrInternal, err)
	}

	result := make([]*models.ProfessionalResponse, 0, len(professionals))
	for _, p := range professionals {
		result = append(result, models.FromDomainProfessional(p))
	}
	return result, nil
}

// UpdateWindow обновляет рабочее окно профессионала
// Доступно только предприятию, которому принадлежит профессионал
func (s *Service) UpdateWindow(ctx context.Context, professionalID int64, req *models.UpdateWindowRequest) (*models.ProfessionalResponse, error) {
	s.logger.Info("UpdateWindow: updating window of professional=%d by user=%d", professionalID, req.UserID)

	professional, err := s.professionalRepo.GetByID(ctx, professionalID)
	if err != nil {
		if errors.Is(err, professionalRepo.ErrProfessionalNotFound) {
			s.logger.Warn("UpdateWindow: professional id=%d not found", professionalID)
			return nil, ErrProfessionalNotFound
		}
		s.logger.Error("UpdateWindow: repository error for professional id=%d: %v", professionalID, err)
		return nil, fmt.Errorf("%w: UpdateWindow - repository error: %v", ErrInternal, err)
	}

	if professional.EnterpriseID != req.UserID {
		s.logger.Warn("UpdateWindow: access denied for user=%d to professional=%d", req.UserID, professionalID)
		return nil, ErrAccessDenied
	}

	window := req.Window.ToDomain()
	if err := window.Validate(); err != nil {
		s.logger.Warn("UpdateWindow: invalid working window for professional=%d: %v", professionalID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidWorkingWindow, err)
	}

	if err := s.professionalRepo.UpdateWindow(ctx, professionalID, window); err != nil {
		if errors.Is(err, professionalRepo.ErrProfessionalNotFound) {
			return nil, ErrProfessionalNotFound
		}
		s.logger.Error("UpdateWindow: repository error for professional id=%d: %v", professionalID, err)
		return nil, fmt.Errorf("%w: UpdateWindow - repository error: %v", ErrInternal, err)
	}

	professional.Window = window

	s.logger.Info("UpdateWindow: successfully updated window of professional=%d", professionalID)
	return models.FromDomainProfessional(professional), nil
}
