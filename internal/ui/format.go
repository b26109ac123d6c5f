package ui

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/holiman/uint256"
)

// ErrBadAmount is returned by ParseUnits for malformed input.
var ErrBadAmount = errors.New("invalid amount")

// FormatUnits renders v, a base-unit integer, as a decimal number with the
// given number of decimals. Trailing zeros are trimmed.
func FormatUnits(v *big.Int, decimals uint8) string {
	if v == nil {
		return "0"
	}
	neg := v.Sign() < 0
	s := new(big.Int).Abs(v).String()
	if decimals > 0 {
		d := int(decimals)
		if len(s) <= d {
			s = strings.Repeat("0", d-len(s)+1) + s
		}
		whole, frac := s[:len(s)-d], strings.TrimRight(s[len(s)-d:], "0")
		s = whole
		if frac != "" {
			s += "." + frac
		}
	}
	if neg {
		s = "-" + s
	}
	return s
}

// ParseUnits parses a decimal amount such as "1.5" into base units. Input
// ending in "wei" or starting with 0x is taken as base units already. The
// result always fits in uint256.
func ParseUnits(s string, decimals uint8) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("%w: empty", ErrBadAmount)
	}
	if raw, ok := strings.CutSuffix(s, "wei"); ok {
		return parseUint256(strings.TrimSpace(raw))
	}
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return parseUint256(s)
	}

	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" && frac == "" {
		return nil, fmt.Errorf("%w: %q has no digits", ErrBadAmount, s)
	}
	if len(frac) > int(decimals) {
		return nil, fmt.Errorf("%w: %q has more than %d decimals", ErrBadAmount, s, decimals)
	}
	if whole == "" {
		whole = "0"
	}
	return parseUint256(whole + frac + strings.Repeat("0", int(decimals)-len(frac)))
}

func parseUint256(s string) (*big.Int, error) {
	var (
		v   *uint256.Int
		err error
	)
	if s == "" {
		return nil, fmt.Errorf("%w: no digits", ErrBadAmount)
	}
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		if len(s) == 2 {
			return nil, fmt.Errorf("%w: %q has no digits", ErrBadAmount, s)
		}
		v, err = uint256.FromHex("0x" + trimZeros(s[2:]))
	} else {
		v, err = uint256.FromDecimal(trimZeros(s))
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrBadAmount, s, err)
	}
	return v.ToBig(), nil
}

func trimZeros(s string) string {
	s = strings.TrimLeft(s, "0")
	if s == "" {
		return "0"
	}
	return s
}
