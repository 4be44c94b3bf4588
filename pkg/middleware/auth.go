// pkg/middleware/auth.go
package middleware

import (
	"crypto/subtle"
	"net/http"
)

// AdminKeyHeader - заголовок, в котором клиент админки передаёт общий секрет
const AdminKeyHeader = "X-Admin-Key"

// BasicAuth возвращает middleware для базовой аутентификации.
// С пустым паролем пропускает всё: метрики открыты, если пароль не задан.
func BasicAuth(username, password string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if password == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, pass, ok := r.BasicAuth()
			if !ok || !constantTimeCompare(user, username) || !constantTimeCompare(pass, password) {
				w.Header().Set("WWW-Authenticate", `Basic realm="metrics"`)
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// constantTimeCompare сравнивает две строки за константное время для предотвращения атак по времени
func constantTimeCompare(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

type KeyVerifier interface {
	Verify(key string) bool
}

// AdminKey отклоняет запрос с 401, если X-Admin-Key не совпадает с секретом.
// Стоит первым в цепочке, поэтому тело запроса без ключа даже не читается.
func AdminKey(v KeyVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !v.Verify(r.Header.Get(AdminKeyHeader)) {
				WriteError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
