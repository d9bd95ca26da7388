package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseDatePtr(t *testing.T) {
	t.Run("empty string is nil", func(t *testing.T) {
		v, err := ParseDatePtr("")
		require.NoError(t, err)
		require.Nil(t, v)
	})
	t.Run("valid date", func(t *testing.T) {
		v, err := ParseDatePtr("2024-03-15")
		require.NoError(t, err)
		require.NotNil(t, v)
		require.Equal(t, 2024, v.Year())
		require.Equal(t, time.March, v.Month())
		require.Equal(t, 15, v.Day())
	})
	t.Run("garbage", func(t *testing.T) {
		_, err := ParseDatePtr("15.03.2024")
		require.Error(t, err)
	})
}

func TestDateOnly(t *testing.T) {
	in := time.Date(2024, 6, 1, 17, 45, 12, 99, time.UTC)
	out := DateOnly(in)
	require.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), out)
	require.Equal(t, out, DateOnly(out))
}

func TestRound(t *testing.T) {
	require.Equal(t, 66.667, Round(200.0/3.0, 3))
	require.Equal(t, 4.4, Round(4.419178, 1))
	require.Equal(t, 0.0, Round(0, 3))
}
