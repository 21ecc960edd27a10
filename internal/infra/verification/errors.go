package verification

import "errors"

var (
	// ErrCodeNotFound возвращается, когда код не найден или его TTL истек
	ErrCodeNotFound = errors.New("verification.store: code not found or expired")

	// ErrCodeMismatch возвращается, когда предъявленный код не совпадает с сохраненным
	ErrCodeMismatch = errors.New("verification.store: code mismatch")

	// ErrInternal возвращается при ошибках взаимодействия с хранилищем
	ErrInternal = errors.New("verification.store: internal error")
)
