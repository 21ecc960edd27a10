package get_availability

import "errors"

var (
	// ErrProfessionalNotFound возвращается, когда профессионал не найден
	// Терминальная ошибка вызывающей стороны: движок расчета не вызывается
	ErrProfessionalNotFound = errors.New("get_availability: professional not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_availability: internal error")
)
