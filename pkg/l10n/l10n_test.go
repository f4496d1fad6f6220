package l10n_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tj-hand/echoes/pkg/l10n"
)

func TestNewFormatter(t *testing.T) {
	t.Parallel()

	t.Run("parses valid tags", func(t *testing.T) {
		t.Parallel()
		for _, tag := range []string{"en", "pt", "pt-BR", "es", "fr", "de", "en-US"} {
			f, err := l10n.NewFormatter(tag)
			require.NoError(t, err, "tag %q", tag)
			require.NotNil(t, f)
		}
	})

	t.Run("rejects structurally invalid tags", func(t *testing.T) {
		t.Parallel()
		_, err := l10n.NewFormatter("not a tag!")
		require.Error(t, err)
	})
}

func TestFormatNumber(t *testing.T) {
	t.Parallel()

	t.Run("english separators", func(t *testing.T) {
		t.Parallel()
		f, err := l10n.NewFormatter("en")
		require.NoError(t, err)
		assert.Equal(t, "1,234,567.89", f.FormatNumber(1234567.89, 2))
	})

	t.Run("german separators", func(t *testing.T) {
		t.Parallel()
		f, err := l10n.NewFormatter("de")
		require.NoError(t, err)
		assert.Equal(t, "1.234.567,89", f.FormatNumber(1234567.89, 2))
	})

	t.Run("fixed decimal places pad", func(t *testing.T) {
		t.Parallel()
		f, err := l10n.NewFormatter("en")
		require.NoError(t, err)
		assert.Equal(t, "42.00", f.FormatNumber(42, 2))
	})
}

func TestFormatPercent(t *testing.T) {
	t.Parallel()

	f, err := l10n.NewFormatter("en")
	require.NoError(t, err)
	assert.Equal(t, "50%", f.FormatPercent(0.5, 0))
}

func TestFormatCurrency(t *testing.T) {
	t.Parallel()

	t.Run("known currency", func(t *testing.T) {
		t.Parallel()
		f, err := l10n.NewFormatter("en")
		require.NoError(t, err)
		result, err := f.FormatCurrency(1234.5, "USD")
		require.NoError(t, err)
		assert.Contains(t, result, "1,234.50")
	})

	t.Run("unknown currency code errors", func(t *testing.T) {
		t.Parallel()
		f, err := l10n.NewFormatter("en")
		require.NoError(t, err)
		_, err = f.FormatCurrency(1, "XYZW")
		require.Error(t, err)
	})
}

func TestFormatDate(t *testing.T) {
	t.Parallel()

	date := time.Date(2026, time.March, 7, 15, 30, 45, 0, time.UTC)

	t.Run("english styles", func(t *testing.T) {
		t.Parallel()
		f, err := l10n.NewFormatter("en")
		require.NoError(t, err)
		assert.Equal(t, "3/7/2026", f.FormatDate(date, l10n.StyleShort))
		assert.Equal(t, "Mar 7, 2026", f.FormatDate(date, l10n.StyleMedium))
		assert.Equal(t, "March 7, 2026", f.FormatDate(date, l10n.StyleLong))
		assert.Equal(t, "Saturday, March 7, 2026", f.FormatDate(date, l10n.StyleFull))
	})

	t.Run("day first locales", func(t *testing.T) {
		t.Parallel()
		f, err := l10n.NewFormatter("pt-BR")
		require.NoError(t, err)
		assert.Equal(t, "07/03/2026", f.FormatDate(date, l10n.StyleShort))
	})

	t.Run("german separators", func(t *testing.T) {
		t.Parallel()
		f, err := l10n.NewFormatter("de")
		require.NoError(t, err)
		assert.Equal(t, "07.03.2026", f.FormatDate(date, l10n.StyleShort))
	})

	t.Run("unknown style falls back to medium", func(t *testing.T) {
		t.Parallel()
		f, err := l10n.NewFormatter("en")
		require.NoError(t, err)
		assert.Equal(t, "Mar 7, 2026", f.FormatDate(date, "bogus"))
	})
}

func TestFormatTimeAndDateTime(t *testing.T) {
	t.Parallel()

	moment := time.Date(2026, time.March, 7, 15, 30, 45, 0, time.UTC)

	t.Run("twelve hour clock for english", func(t *testing.T) {
		t.Parallel()
		f, err := l10n.NewFormatter("en")
		require.NoError(t, err)
		assert.Equal(t, "3:30 PM", f.FormatTime(moment, l10n.StyleShort))
		assert.Equal(t, "Mar 7, 2026 3:30 PM", f.FormatDateTime(moment, l10n.StyleMedium))
	})

	t.Run("twenty four hour clock for french", func(t *testing.T) {
		t.Parallel()
		f, err := l10n.NewFormatter("fr")
		require.NoError(t, err)
		assert.Equal(t, "15:30", f.FormatTime(moment, l10n.StyleShort))
		assert.Equal(t, "15:30:45", f.FormatTime(moment, l10n.StyleFull))
	})
}
