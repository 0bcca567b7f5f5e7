package models

import "time"

// TokenPair — пара токенов, выдаваемая клиенту token-эндпоинтом.
//
// Описание:
//   - AccessToken — непрозрачный токен для Authorization: Bearer;
//   - RefreshToken — непрозрачный токен для ротации пары, без собственного срока;
//   - AccessExpiresAt — момент истечения access-токена (UTC);
//   - ExpiresIn — срок жизни access-токена, который сообщается клиенту;
//   - Username — владелец пары.
type TokenPair struct {
	AccessToken     string
	RefreshToken    string
	AccessExpiresAt time.Time
	ExpiresIn       time.Duration
	Username        string
}

// TokenRecord — строка таблицы tokens: в хранилище лежат только хэши токенов.
type TokenRecord struct {
	AccessTokenHash  string
	RefreshTokenHash string
	Username         string
	AccessExpiresAt  time.Time
}

// Identity — результат успешной проверки bearer-токена.
type Identity struct {
	Username string
}
