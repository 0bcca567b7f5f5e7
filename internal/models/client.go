package models

// Client — OAuth-клиент, заведённый вне сервиса (через clientctl).
// Секрет хранится в виде bcrypt-хэша.
type Client struct {
	ClientID         string
	ClientSecretHash string
	RedirectURI      string
}
