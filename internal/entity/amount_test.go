package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/apperror"
)

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		raw      uint64
		decimals uint8
		want     string
	}{
		{0, 0, "0"},
		{0, 6, "0"},
		{5, 2, "0.05"},
		{100, 2, "1"},
		{123456789, 6, "123.456789"},
		{1_500_000, 6, "1.5"},
		{42, 0, "42"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatAmount(tc.raw, tc.decimals), "%d/%d", tc.raw, tc.decimals)
	}
}

func TestParseAmount(t *testing.T) {
	t.Run("Scales decimal input to raw units", func(t *testing.T) {
		cases := map[string]uint64{
			"1":        1_000_000,
			"1.5":      1_500_000,
			"0.000001": 1,
			".25":      250_000,
			" 3 ":      3_000_000,
		}

		for input, want := range cases {
			got, err := ParseAmount(input, 6)

			require.NoError(t, err, input)
			assert.Equal(t, want, got, input)
		}
	})

	t.Run("Rejects too many decimal places", func(t *testing.T) {
		_, err := ParseAmount("0.0000001", 6)

		assert.ErrorIs(t, err, apperror.ErrInvalidAmount)
	})

	t.Run("Rejects malformed numbers", func(t *testing.T) {
		for _, input := range []string{"", ".", "1.", "-1", "abc", "1e3", "1.2.3", "99999999999999999999"} {
			_, err := ParseAmount(input, 2)

			assert.ErrorIs(t, err, apperror.ErrInvalidAmount, input)
		}
	})
}

func TestParseAddress(t *testing.T) {
	t.Run("Round trips through base58", func(t *testing.T) {
		original := addr(42)

		parsed, err := ParseAddress(original.String())

		require.NoError(t, err)
		assert.Equal(t, original, parsed)
	})

	t.Run("Rejects wrong lengths and alphabets", func(t *testing.T) {
		for _, input := range []string{"", "abc", "0OIl", "11111111111111111111111111111111111111111111111"} {
			_, err := ParseAddress(input)

			assert.ErrorIs(t, err, apperror.ErrInvalidAddress, input)
		}
	})
}
