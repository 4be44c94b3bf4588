package codes

import (
	"strings"
	"time"
)

type Record struct {
	ID        int64     `json:"id" db:"id"`
	Code      string    `json:"code" db:"code"`
	Message   string    `json:"message" db:"message"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// NormalizeCode приводит код к виду, в котором он хранится в базе:
// без пробелов по краям и в верхнем регистре. Поиск поэтому регистронезависимый.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// NormalizeMessage убирает пробелы по краям сообщения
func NormalizeMessage(message string) string {
	return strings.TrimSpace(message)
}
