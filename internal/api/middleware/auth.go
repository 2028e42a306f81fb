package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
)

// UserIDHeader заголовок с ID пользователя, проставляется шлюзом аутентификации
const UserIDHeader = "X-User-ID"

type contextKey string

const (
	userIDKey    contextKey = "userID"
	sessionKey   contextKey = "session"
	requestIDKey contextKey = "requestID"
)

const (
	msgMissingUserID = "falta el identificador de usuario"
	msgInvalidUserID = "identificador de usuario inválido"
)

// Auth требует заголовок X-User-ID и кладёт ID пользователя в контекст
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(UserIDHeader)
		if raw == "" {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, msgInvalidUserID)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
	})
}

// WithUserID кладёт ID пользователя в контекст
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetUserID ID пользователя из контекста
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}
