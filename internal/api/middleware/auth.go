package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/HMA-AdminService/internal/api/handlers"
)

type contextKey string

const userIDKey contextKey = "userID"

const headerUserID = "X-User-ID"

// Auth проверяет наличие заголовка X-User-ID и кладет ID сотрудника в контекст.
// Запросы без валидного заголовка получают 401.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(headerUserID)
		if raw == "" {
			handlers.RespondUnauthorized(w, "отсутствует заголовок X-User-ID")
			return
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, "некорректный заголовок X-User-ID")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID извлекает ID сотрудника из контекста запроса
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}
