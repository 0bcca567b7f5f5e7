package migrations

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUp_OrderedByNumber(t *testing.T) {
	t.Parallel()

	names, err := Up()
	require.NoError(t, err)
	require.Equal(t, []string{"1_init_oauth.up.sql", "2_init_personnel.up.sql"}, names)

	for _, n := range names {
		body, err := Read(n)
		require.NoError(t, err)
		require.True(t, strings.Contains(body, "CREATE TABLE"), n)
	}
}

func TestNumber(t *testing.T) {
	t.Parallel()

	require.Equal(t, 1, number("1_init_oauth.up.sql"))
	require.Equal(t, 12, number("12_x.up.sql"))
	require.Equal(t, 0, number("readme.sql"))
}
