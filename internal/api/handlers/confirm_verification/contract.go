package confirm_verification

import "context"

type VerificationStore interface {
	Consume(ctx context.Context, subject, presented string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
