package redact

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmail(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in, want string
	}{
		{"alice@example.com", "al***@example.com"},
		{"ab@example.com", "***@example.com"},
		{"no-at-sign", "***"},
		{"a@b@c", "***"},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, Email(tc.in), tc.in)
	}
}

func TestToken(t *testing.T) {
	t.Parallel()

	require.Equal(t, "0123***", Token("0123456789abcdef0123456789abcdef"))
	require.Equal(t, "[REDACTED_TOKEN]", Token("short"))
	require.Equal(t, "[REDACTED_TOKEN]", Token(""))
}

func TestConstants(t *testing.T) {
	t.Parallel()

	require.Equal(t, "[REDACTED_PASSWORD]", Password())
	require.Equal(t, "[REDACTED_SECRET]", Secret())
}
