package book_appointment

import (
	"time"

	"github.com/agendly/appointment-service/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	ClientID       int64            // ID клиента
	ProfessionalID int64            // ID профессионала
	ServiceID      *int64           // ID услуги (опционально)
	ServiceName    string           // Название услуги (денормализуется в запись)
	Date           time.Time        // Дата записи (без времени)
	StartTime      types.TimeString // Время слота (например, "10:00")
	Notes          *string          // Дополнительные заметки (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID             int64            // ID созданной записи
	EnterpriseID   int64            // ID предприятия (от профессионала)
	ProfessionalID int64            // ID профессионала
	ClientID       int64            // ID клиента
	ServiceID      *int64           // ID услуги
	Date           time.Time        // Дата записи
	StartTime      types.TimeString // Время слота
	Status         string           // Статус записи
	ServiceName    string           // Название услуги
	Notes          *string          // Заметки
	CreatedAt      time.Time        // Время создания
	UpdatedAt      time.Time        // Время обновления
}
