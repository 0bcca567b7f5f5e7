// log переносит request-scoped *slog.Logger через context.Context.
// Мидлвары обогащают логгер (request_id, username), сервисный слой берёт его через From.
package log

import (
	"context"
	"log/slog"
)

type loggerKey struct{}

// Into возвращает копию ctx с логгером l.
func Into(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// From возвращает логгер запроса; если его нет, то slog.Default().
func From(ctx context.Context) *slog.Logger {
	if l, _ := ctx.Value(loggerKey{}).(*slog.Logger); l != nil {
		return l
	}
	return slog.Default()
}

// With дополняет логгер из ctx атрибутами args.
func With(ctx context.Context, args ...any) context.Context {
	return Into(ctx, From(ctx).With(args...))
}
