package l10n_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tj-hand/echoes/pkg/l10n"
)

func TestFormatterCache(t *testing.T) {
	t.Parallel()

	t.Run("same instance per locale", func(t *testing.T) {
		t.Parallel()

		cache := l10n.NewFormatterCache()

		first, err := cache.Get("pt")
		require.NoError(t, err)

		second, err := cache.Get("pt")
		require.NoError(t, err)
		require.Same(t, first, second)

		other, err := cache.Get("de")
		require.NoError(t, err)
		require.NotSame(t, first, other)
	})

	t.Run("invalid locale errors", func(t *testing.T) {
		t.Parallel()

		cache := l10n.NewFormatterCache()
		_, err := cache.Get("not a locale!")
		require.Error(t, err)
	})

	t.Run("concurrent access", func(t *testing.T) {
		t.Parallel()

		cache := l10n.NewFormatterCache()
		locales := []string{"en", "pt", "es", "fr", "de"}

		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			for _, locale := range locales {
				wg.Add(1)
				go func(locale string) {
					defer wg.Done()
					f, err := cache.Get(locale)
					assert.NoError(t, err)
					assert.NotNil(t, f)
				}(locale)
			}
		}
		wg.Wait()
	})
}
