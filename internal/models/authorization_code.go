package models

import "time"

// AuthorizationCode — одноразовый код авторизации.
//
// Описание:
//   - CodeHash — SHA-256 (base64url) от кода, выданного клиенту;
//   - Username — владелец кода;
//   - ExpiresAt — момент, после которого код недействителен (UTC).
type AuthorizationCode struct {
	CodeHash  string
	Username  string
	ExpiresAt time.Time
}
