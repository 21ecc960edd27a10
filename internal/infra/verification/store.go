// Package verification хранилище кодов верификации клиента.
//
// Коды живут в Redis с TTL: запись выполняется один раз при генерации,
// удаление - атомарно при успешной проверке (GETDEL) или по истечении
// TTL силами Redis. Состояние разделяется между инстансами сервиса,
// процесс-локальных структур нет.
package verification

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "verification:code:"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Store хранилище кодов верификации поверх Redis
type Store struct {
	client *redis.Client
	ttl    time.Duration
	log    Logger
}

// NewStore создает новое хранилище кодов
func NewStore(client *redis.Client, ttl time.Duration, log Logger) *Store {
	return &Store{
		client: client,
		ttl:    ttl,
		log:    log,
	}
}

// GenerateCode генерирует шестизначный код верификации
func GenerateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", fmt.Errorf("%w: failed to generate code: %v", ErrInternal, err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// Put сохраняет код для субъекта (телефон или email) с TTL
// Повторный запрос кода перезаписывает предыдущий и сбрасывает TTL
func (s *Store) Put(ctx context.Context, subject, code string) error {
	if err := s.client.Set(ctx, keyPrefix+subject, code, s.ttl).Err(); err != nil {
		s.log.Error("verification: failed to store code for subject=%s: %v", subject, err)
		return fmt.Errorf("%w: failed to store code: %v", ErrInternal, err)
	}
	return nil
}

// Consume атомарно извлекает и удаляет код субъекта и сравнивает его
// с предъявленным. Код одноразовый: после Consume он недоступен
// независимо от результата сравнения.
func (s *Store) Consume(ctx context.Context, subject, presented string) error {
	stored, err := s.client.GetDel(ctx, keyPrefix+subject).Result()
	if err == redis.Nil {
		return ErrCodeNotFound
	}
	if err != nil {
		s.log.Error("verification: failed to consume code for subject=%s: %v", subject, err)
		return fmt.Errorf("%w: failed to consume code: %v", ErrInternal, err)
	}

	if stored != presented {
		s.log.Warn("verification: code mismatch for subject=%s", subject)
		return ErrCodeMismatch
	}

	return nil
}
