package dbmetrics

import "context"

type ctxKey struct{}

var txKey = ctxKey{}

// WithExecutor кладет активную транзакцию в context
// Используется transaction manager'ами, чтобы репозитории выполняли
// запросы внутри транзакции без изменения сигнатур.
func WithExecutor(ctx context.Context, tx TxExecutor) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// GetExecutor возвращает исполнителя запросов: транзакцию из context,
// если она есть, иначе переданный fallback (обычно repository.db).
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if tx, ok := ctx.Value(txKey).(TxExecutor); ok {
		return tx
	}
	return fallback
}

// IsInTransaction сообщает, выполняется ли запрос внутри транзакции
func IsInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(txKey).(TxExecutor)
	return ok
}
