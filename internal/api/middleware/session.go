package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// BusinessIDVar переменная маршрута с ID бизнеса
const BusinessIDVar = "businessId"

const (
	msgInvalidBusinessID = "identificador de negocio inválido"
	msgBusinessNotFound  = "negocio no encontrado"
	msgForbidden         = "acceso denegado"
)

// SessionResolver строит контекст вызова для бизнеса
type SessionResolver interface {
	ResolveSession(ctx context.Context, actorID, businessID int64, requireOwner bool) (domain.Session, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Session определяет бизнес из маршрута и кладёт domain.Session в контекст.
// requireOwner: пользователь из Auth должен быть владельцем бизнеса.
// Без requireOwner запрос может быть анонимным (ActorID = 0).
func Session(resolver SessionResolver, requireOwner bool, logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			businessID, err := handlers.PathInt64(r, BusinessIDVar)
			if err != nil {
				handlers.RespondBadRequest(w, msgInvalidBusinessID)
				return
			}

			actorID, _ := GetUserID(r.Context())

			session, err := resolver.ResolveSession(r.Context(), actorID, businessID, requireOwner)
			if err != nil {
				switch {
				case errors.Is(err, domain.ErrNotFound):
					handlers.RespondNotFound(w, msgBusinessNotFound)
				case errors.Is(err, domain.ErrForbidden):
					logger.Warn("%s %s - Access denied: business_id=%d, user_id=%d", r.Method, r.URL.Path, businessID, actorID)
					handlers.RespondForbidden(w, msgForbidden)
				default:
					logger.Error("%s %s - Failed to resolve session: business_id=%d, error=%v", r.Method, r.URL.Path, businessID, err)
					handlers.RespondInternalError(w)
				}
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), session)))
		})
	}
}

// WithSession кладёт контекст вызова в контекст запроса
func WithSession(ctx context.Context, session domain.Session) context.Context {
	return context.WithValue(ctx, sessionKey, session)
}

// GetSession контекст вызова из контекста запроса
func GetSession(ctx context.Context) (domain.Session, bool) {
	session, ok := ctx.Value(sessionKey).(domain.Session)
	return session, ok
}
