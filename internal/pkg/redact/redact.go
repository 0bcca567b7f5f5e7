// redact маскирует чувствительные значения перед записью в лог.
package redact

import "strings"

// Email оставляет первые два символа локальной части и домен.
func Email(s string) string {
	local, domain, ok := strings.Cut(s, "@")
	if !ok || strings.Contains(domain, "@") {
		return "***"
	}

	if len(local) > 2 {
		local = local[:2] + "***"
	} else {
		local = "***"
	}

	return local + "@" + domain
}

// Token оставляет короткий префикс токена для корреляции записей лога.
// Короткие значения скрываются целиком.
func Token(s string) string {
	if len(s) < 16 {
		return "[REDACTED_TOKEN]"
	}

	return s[:4] + "***"
}

func Password() string { return "[REDACTED_PASSWORD]" }
func Secret() string   { return "[REDACTED_SECRET]" }
