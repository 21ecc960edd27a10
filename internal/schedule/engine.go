// Package schedule реализует расчет доступности слотов.
//
// Это единственная реализация этой логики в сервисе: публичная выдача
// слотов, проверка при создании записи и расписание для кабинета
// предприятия используют ComputeAvailability, а не собственные копии
// фильтрации по дням и времени.
package schedule

import (
	"time"

	"github.com/agendly/appointment-service/internal/domain"
	"github.com/agendly/appointment-service/pkg/types"
)

// ComputeAvailability вычисляет упорядоченный список слотов на дату.
//
// Чистая функция: без I/O, без скрытого состояния, одинаковые входы
// дают побитово одинаковый результат.
//
// Семантика:
//  1. Если день недели даты вне [FromWeekday, ToWeekday] - профессионал
//     в этот день не работает, возвращается пустой список (ни одного
//     слота, даже занятого).
//  2. Из глобальной сетки остаются слоты t: FromTime <= t <= ToTime.
//     Обе границы ВКЛЮЧИТЕЛЬНО: слот ровно на время закрытия предлагается.
//  3. Слот доступен, если его нет в occupied.
//
// Дата должна быть заранее приведена к референсной таймзоне сервиса:
// Weekday() берется от нее как есть. Ключи occupied должны быть
// усечены до минут (см. OccupiedSet).
//
// Некорректное окно (FromTime >= ToTime, день недели вне [0,6]) не
// является ошибкой на этапе запроса: такие окна отклоняются при
// редактировании, здесь они дают ноль слотов.
func ComputeAvailability(
	date time.Time,
	window domain.WorkingWindow,
	occupied map[types.TimeString]struct{},
) []domain.AvailabilitySlot {
	if !window.CoversWeekday(date.Weekday()) {
		return []domain.AvailabilitySlot{}
	}

	slots := make([]domain.AvailabilitySlot, 0)
	for _, t := range slotGrid {
		if t.IsBefore(window.FromTime) || t.IsAfter(window.ToTime) {
			continue
		}

		_, busy := occupied[t]
		slots = append(slots, domain.AvailabilitySlot{
			Time:      t,
			Available: !busy,
			Label:     t.Label(),
		})
	}

	return slots
}

// OccupiedSet строит множество занятых времен из записей профессионала.
// Неактивные записи (отмененные, no-show) слот не занимают.
// Времена усекаются до минут, чтобы совпадать с ключами сетки.
func OccupiedSet(appointments []*domain.Appointment) map[types.TimeString]struct{} {
	occupied := make(map[types.TimeString]struct{}, len(appointments))
	for _, a := range appointments {
		if !a.IsActive() {
			continue
		}
		occupied[a.StartTime.Truncate()] = struct{}{}
	}
	return occupied
}

// SlotOffered проверяет, предлагается ли указанное время как слот сетки
// внутри рабочего окна на эту дату. Используется write-path'ом создания
// записи до проверки занятости.
func SlotOffered(date time.Time, window domain.WorkingWindow, t types.TimeString) bool {
	key := t.Truncate()
	for _, slot := range ComputeAvailability(date, window, nil) {
		if slot.Time == key {
			return true
		}
	}
	return false
}
