package verification

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewStore(client, 10*time.Minute, nopLogger{}), mr
}

func TestStore_PutAndConsume(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "+79001234567", "123456"))
	assert.NoError(t, store.Consume(ctx, "+79001234567", "123456"))

	// код одноразовый: повторная проверка не проходит
	assert.ErrorIs(t, store.Consume(ctx, "+79001234567", "123456"), ErrCodeNotFound)
}

func TestStore_Consume_Mismatch(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "client@example.com", "123456"))

	assert.ErrorIs(t, store.Consume(ctx, "client@example.com", "654321"), ErrCodeMismatch)

	// неверная попытка тоже сжигает код
	assert.ErrorIs(t, store.Consume(ctx, "client@example.com", "123456"), ErrCodeNotFound)
}

func TestStore_ConsumeUnknownSubject(t *testing.T) {
	store, _ := newTestStore(t)

	assert.ErrorIs(t, store.Consume(context.Background(), "unknown", "000000"), ErrCodeNotFound)
}

func TestStore_TTLExpiry(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "+79001234567", "123456"))

	mr.FastForward(11 * time.Minute)

	assert.ErrorIs(t, store.Consume(ctx, "+79001234567", "123456"), ErrCodeNotFound)
}

func TestStore_RepeatedPutResetsCode(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "+79001234567", "111111"))
	require.NoError(t, store.Put(ctx, "+79001234567", "222222"))

	assert.ErrorIs(t, store.Consume(ctx, "+79001234567", "111111"), ErrCodeMismatch)
}

func TestGenerateCode(t *testing.T) {
	code, err := GenerateCode()
	require.NoError(t, err)
	assert.Len(t, code, 6)
	for _, r := range code {
		assert.True(t, r >= '0' && r <= '9')
	}
}
