// pkg/constants/constants.go
package constants

//============== CACHE KEYS ==============

// Префиксы для ключей в Redis.
const (
	// Аккаунт заблокирован из-за неудачных попыток входа.
	// Формат: lockout:<userID> -> "locked"
	CacheKeyLockout = "lockout:%d"

	// Счётчик неудачных попыток входа.
	// Формат: login_attempts:<userID> -> count
	CacheKeyLoginAttempts = "login_attempts:%d"

	// Отозванный при logout токен, живёт до истечения самого токена.
	// Формат: revoked_token:<jti> -> "revoked"
	CacheKeyRevokedToken = "revoked_token:%s"
)

//============== REPORTS ==============

const (
	HighRiskDefaultLimit = 5
	HighRiskMaxLimit     = 50

	ReportFormatXLSX = "xlsx"
)
