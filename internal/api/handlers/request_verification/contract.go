package request_verification

import "context"

type VerificationStore interface {
	Put(ctx context.Context, subject, code string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
