package service

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
)

// joinURLTemplate - формат ссылки на встречу: ровно 10 цифр после префикса.
// Ссылка синтетическая, реальная интеграция с платформой не выполняется.
const joinURLTemplate = "https://zoom.us/j/%010d"

// Generator отдает недетерминированные значения (id, ссылки, время),
// чтобы переходы состояния оставались тестируемыми
type Generator interface {
	NewID() string
	MeetingJoinURL() string
	Now() time.Time
}

type uuidGenerator struct{}

// NewGenerator возвращает генератор на основе uuid v4 и случайного токена.
// Уникальность токена встречи вероятностная, коллизии не проверяются.
func NewGenerator() Generator {
	return uuidGenerator{}
}

func (uuidGenerator) NewID() string {
	return uuid.NewString()
}

func (uuidGenerator) MeetingJoinURL() string {
	token := 1_000_000_000 + rand.Int64N(9_000_000_000)
	return fmt.Sprintf(joinURLTemplate, token)
}

func (uuidGenerator) Now() time.Time {
	return time.Now()
}
