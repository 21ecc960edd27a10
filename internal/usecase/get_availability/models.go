package get_availability

import (
	"time"

	"github.com/agendly/appointment-service/pkg/types"
)

// Request модель запроса доступных слотов
type Request struct {
	ProfessionalID int64     // ID профессионала
	Date           time.Time // Дата, на которую запрашиваются слоты (без времени)
}

// Response модель ответа со списком слотов
type Response struct {
	ProfessionalID int64     // ID профессионала
	Date           time.Time // Дата, на которую запрашивались слоты
	Slots          []Slot    // Список слотов сетки в рабочем окне, по возрастанию времени
}

// Slot модель слота сетки
type Slot struct {
	Time      types.TimeString // Время слота
	Available bool             // Свободен ли слот
	Label     string           // Человекочитаемая метка HH:MM
}
