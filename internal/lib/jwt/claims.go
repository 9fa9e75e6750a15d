// Package jwt реализует выпуск и проверку компактных подписанных токенов.
//
// Токен несёт имя пользователя (subject), время выпуска и срок действия,
// подписывается HS256 общесистемным секретом. Секрет и TTL задаются один раз
// при создании MakerImpl и живут до завершения процесса; смена секрета
// делает все ранее выпущенные токены невалидными.
package jwt

import (
	"time"
)

// Maker описывает интерфейс для выпуска и проверки токенов.
type Maker interface {
	// GenerateToken выпускает токен для указанного пользователя.
	GenerateToken(username string) (string, error)
	// ParseToken проверяет подпись и срок действия, возвращает claims.
	ParseToken(tokenStr string) (*Claims, error)
}

// MakerImpl реализует Maker с использованием секретного ключа
// и времени жизни токена (TTL).
type MakerImpl struct {
	secretKey string        // Секретный ключ для подписи токенов
	tokenTTL  time.Duration // Время жизни токена
}

// NewMaker создаёт новый MakerImpl на основе секретного ключа и TTL.
func NewMaker(secretKey string, ttl time.Duration) *MakerImpl {
	return &MakerImpl{
		secretKey: secretKey,
		tokenTTL:  ttl,
	}
}
