package middleware

import (
	"context"
	"encoding/hex"
	"net/http"

	"github.com/google/uuid"
)

type requestIDKey struct{}

// RequestID обеспечивает наличие X-Request-Id:
//  1. читает заголовок X-Request-Id, если есть;
//  2. иначе генерирует случайный hex id (32 символа);
//  3. кладёт id в Response Header, Request Header (его читает errors.WriteError)
//     и в контекст (см. RequestIDFrom).
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get("X-Request-Id")
			if id == "" {
				id = genID()
				r.Header.Set("X-Request-Id", id)
			}
			w.Header().Set("X-Request-Id", id)

			ctx := context.WithValue(r.Context(), requestIDKey{}, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequestIDFrom возвращает id запроса из контекста.
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

func genID() string {
	u := uuid.New()
	return hex.EncodeToString(u[:])
}
