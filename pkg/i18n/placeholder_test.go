package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tj-hand/echoes/pkg/i18n"
)

func TestInterpolate(t *testing.T) {
	t.Parallel()

	t.Run("replaces named placeholders", func(t *testing.T) {
		t.Parallel()
		result := i18n.Interpolate("Hello {name}", i18n.M{"name": "Ann"})
		require.Equal(t, "Hello Ann", result)
	})

	t.Run("replaces multiple placeholders", func(t *testing.T) {
		t.Parallel()
		result := i18n.Interpolate("{greeting}, {name}!", i18n.M{
			"greeting": "Hi",
			"name":     "Bob",
		})
		require.Equal(t, "Hi, Bob!", result)
	})

	t.Run("converts non-string values", func(t *testing.T) {
		t.Parallel()
		result := i18n.Interpolate("You have {count} items", i18n.M{"count": 5})
		require.Equal(t, "You have 5 items", result)
	})

	t.Run("leaves unknown placeholders verbatim", func(t *testing.T) {
		t.Parallel()
		result := i18n.Interpolate("Hello {name}", i18n.M{"other": "x"})
		require.Equal(t, "Hello {name}", result)
	})

	t.Run("leaves template untouched with empty params", func(t *testing.T) {
		t.Parallel()
		result := i18n.Interpolate("Hello {name}", i18n.M{})
		require.Equal(t, "Hello {name}", result)
	})

	t.Run("leaves nil-valued placeholders verbatim", func(t *testing.T) {
		t.Parallel()
		result := i18n.Interpolate("Hello {name}", i18n.M{"name": nil})
		require.Equal(t, "Hello {name}", result)
	})

	t.Run("ignores malformed placeholders", func(t *testing.T) {
		t.Parallel()
		result := i18n.Interpolate("a {not closed and {x}", i18n.M{"x": "y"})
		require.Equal(t, "a {not closed and y", result)
	})
}
