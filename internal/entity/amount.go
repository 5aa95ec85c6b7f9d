package entity

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/apperror"
)

// FormatAmount renders a raw token amount scaled by the mint's decimals.
func FormatAmount(raw uint64, decimals uint8) string {
	digits := strconv.FormatUint(raw, 10)
	if decimals == 0 {
		return digits
	}

	d := int(decimals)
	if len(digits) <= d {
		digits = strings.Repeat("0", d-len(digits)+1) + digits
	}

	whole, frac := digits[:len(digits)-d], strings.TrimRight(digits[len(digits)-d:], "0")
	if frac == "" {
		return whole
	}

	return whole + "." + frac
}

// ParseAmount converts a human decimal string into raw units, refusing more
// fractional digits than the mint supports.
func ParseAmount(input string, decimals uint8) (uint64, error) {
	input = strings.TrimSpace(input)
	whole, frac, hasPoint := strings.Cut(input, ".")

	if whole == "" && frac == "" {
		return 0, fmt.Errorf("%w: %q", apperror.ErrInvalidAmount, input)
	}

	if hasPoint && frac == "" {
		return 0, fmt.Errorf("%w: %q", apperror.ErrInvalidAmount, input)
	}

	if len(frac) > int(decimals) {
		return 0, fmt.Errorf("%w: at most %d decimal places allowed", apperror.ErrInvalidAmount, decimals)
	}

	if whole == "" {
		whole = "0"
	}

	digits := whole + frac + strings.Repeat("0", int(decimals)-len(frac))
	for _, r := range digits {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: %q", apperror.ErrInvalidAmount, input)
		}
	}

	raw, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", apperror.ErrInvalidAmount, input, err)
	}

	return raw, nil
}
