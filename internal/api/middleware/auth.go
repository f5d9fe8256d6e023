package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/jpereira-dev/VWS-SchedulerService/internal/api/handlers"
)

// staffIDHeader заголовок с ID сотрудника. Проставляется внешним
// auth-прокси после проверки сессии; сам сервис сессии не валидирует.
const staffIDHeader = "X-Staff-ID"

// staffIDKey ключ контекста для ID сотрудника
type staffIDKey struct{}

// Auth middleware для защищённых маршрутов: требует валидный X-Staff-ID
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(staffIDHeader)
		if raw == "" {
			handlers.RespondUnauthorized(w, "missing "+staffIDHeader+" header")
			return
		}

		staffID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || staffID <= 0 {
			handlers.RespondUnauthorized(w, "invalid "+staffIDHeader+" header")
			return
		}

		ctx := context.WithValue(r.Context(), staffIDKey{}, staffID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetStaffID возвращает ID сотрудника из контекста
func GetStaffID(ctx context.Context) (int64, bool) {
	staffID, ok := ctx.Value(staffIDKey{}).(int64)
	return staffID, ok
}
