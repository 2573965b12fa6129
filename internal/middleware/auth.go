package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/hr-records-api/internal/domain"
	"github.com/hr-records-api/internal/repository"
	"github.com/hr-records-api/internal/service"
)

// callerKey - ключ контекста для идентичности вызывающего
type callerKey struct{}

// Authenticate middleware проверяет bearer-токен и кладёт вызывающего
// в контекст запроса. Staff-флаг берётся из учётной записи, а не из
// токена: токен мог быть выпущен до смены прав
func Authenticate(auth service.AuthService, accounts repository.AccountRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				http.Error(w, `{"error":"authorization required"}`, http.StatusUnauthorized)
				return
			}

			claims, err := auth.ParseAccess(token)
			if err != nil {
				http.Error(w, `{"error":"token is invalid or expired"}`, http.StatusUnauthorized)
				return
			}

			acc, err := accounts.GetByID(r.Context(), claims.AccountID)
			if err != nil {
				http.Error(w, `{"error":"token is invalid or expired"}`, http.StatusUnauthorized)
				return
			}

			caller := domain.Caller{
				AccountID: acc.ID,
				Username:  acc.Username,
				IsStaff:   acc.IsStaff,
			}

			ctx := context.WithValue(r.Context(), callerKey{}, caller)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CallerFromContext возвращает вызывающего, положенного Authenticate
func CallerFromContext(ctx context.Context) (domain.Caller, bool) {
	caller, ok := ctx.Value(callerKey{}).(domain.Caller)
	return caller, ok
}
