package book_appointment

import "errors"

var (
	// ErrProfessionalNotFound возвращается, когда профессионал не найден
	ErrProfessionalNotFound = errors.New("book_appointment: professional not found")

	// ErrOutsideWorkingWindow возвращается, когда запрошенное время не является
	// слотом сетки внутри рабочего окна профессионала на эту дату
	ErrOutsideWorkingWindow = errors.New("book_appointment: time is outside the working window")

	// ErrSlotNotAvailable возвращается, когда слот уже занят
	// Пользователю предлагается выбрать другой слот
	ErrSlotNotAvailable = errors.New("book_appointment: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("book_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("book_appointment: internal error")
)
