package utils

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "R$ 0,00"},
		{"5", "R$ 5,00"},
		{"1234.5", "R$ 1.234,50"},
		{"1234567.891", "R$ 1.234.567,89"},
		{"100", "R$ 100,00"},
		{"-3", "-R$ 3,00"},
		{"-0.001", "R$ 0,00"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatBRL(decimal.RequireFromString(tt.in)))
		})
	}
}

func TestFormatWithPrecision(t *testing.T) {
	assert.Equal(t, "12.35", FormatWithPrecision(decimal.RequireFromString("12.3456"), 2))
	assert.Equal(t, "12", FormatWithPrecision(decimal.RequireFromString("12.3456"), 0))
}

func TestParseMoney(t *testing.T) {
	d, err := ParseMoney("R$ 1.234,56")
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("1234.56").Equal(d))

	d, err = ParseMoney("99.90")
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("99.90").Equal(d))

	_, err = ParseMoney("abc")
	assert.Error(t, err)
}

func TestParseISODate(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)

	d, err := ParseISODate("2024-02-29", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, loc), d)

	// 01:30 UTC on the 1st is still the previous day in BRT
	d, err = ParseISODate("2024-03-01T01:30:00Z", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, loc), d)

	_, err = ParseISODate("29/02/2024", loc)
	assert.Error(t, err)
	assert.False(t, IsValidISODate("2024-13-01"))
	assert.True(t, IsValidISODate("2024-12-01"))
}

func TestDayHelpers(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	ts := time.Date(2024, 5, 10, 17, 45, 3, 0, loc)

	assert.Equal(t, time.Date(2024, 5, 10, 0, 0, 0, 0, loc), StartOfDay(ts))
	assert.Equal(t, time.Date(2024, 5, 10, 12, 0, 0, 0, loc), NoonOf(ts))
	assert.Equal(t, time.Date(2024, 5, 10, 23, 59, 59, 999999999, loc), EndOfDay(ts))
	assert.True(t, SameCalendarDay(ts, time.Date(2024, 5, 10, 20, 0, 0, 0, time.UTC)))
	assert.False(t, SameCalendarDay(ts, time.Date(2024, 5, 11, 3, 0, 0, 0, time.UTC)))
}

func TestTrimToNil(t *testing.T) {
	blank := "   "
	padded := "  (11) 98765-4321 "

	assert.Nil(t, TrimToNil(nil))
	assert.Nil(t, TrimToNil(&blank))
	require.NotNil(t, TrimToNil(&padded))
	assert.Equal(t, "(11) 98765-4321", *TrimToNil(&padded))
	assert.Equal(t, "  (11) 98765-4321 ", padded)
}
