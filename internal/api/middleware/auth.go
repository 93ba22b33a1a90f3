package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/TourOps-BookingService/internal/api/handlers"
)

// UserIDHeader заголовок с ID сотрудника консоли
const UserIDHeader = "X-User-ID"

const msgMissingUserID = "отсутствует или некорректен заголовок X-User-ID"

type contextKey string

const (
	userIDKey    contextKey = "userID"
	requestIDKey contextKey = "requestID"
)

// Auth требует заголовок X-User-ID с положительным числом и кладет его в контекст
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := strconv.ParseInt(r.Header.Get(UserIDHeader), 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
	})
}

// WithUserID возвращает контекст с ID сотрудника
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetUserID достает ID сотрудника, положенный Auth
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}
