package order

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDateAcceptsCommonForms(t *testing.T) {
	want := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	cases := []string{
		"2025-02-01",
		"2025-2-1",
		"2025/02/01",
		"2025/2/1",
		"2025.02.01",
		"20250201",
		"2025年2月1日",
		"  2025-02-01  ",
		"　2025-02-01　", // full-width space padding
	}

	for _, raw := range cases {
		t.Run(raw, func(t *testing.T) {
			date, err := normalizeDate(raw)
			require.NoError(t, err)
			require.NotNil(t, date)
			assert.True(t, want.Equal(*date))
		})
	}
}

func TestNormalizeDateSentinelMeansAbsent(t *testing.T) {
	cases := []string{
		"2999-12-31",
		"2999/12/31",
		"2999.12.31",
		"29991231",
		"2999年12月31日",
		"  2999-12-31",
		"2999-12-31　",
	}

	for _, raw := range cases {
		t.Run(raw, func(t *testing.T) {
			date, err := normalizeDate(raw)
			require.NoError(t, err)
			assert.Nil(t, date)
		})
	}
}

func TestNormalizeDateRejectsUnparseableValues(t *testing.T) {
	cases := []string{
		"",
		"   ",
		"　",
		"not-a-date",
		"2025-13-45",
		"2025-02",
		"02-01",
	}

	for _, raw := range cases {
		t.Run(raw, func(t *testing.T) {
			date, err := normalizeDate(raw)
			assert.Nil(t, date)
			var formatErr *DateFormatError
			require.ErrorAs(t, err, &formatErr)
		})
	}
}
