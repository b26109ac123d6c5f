package ui

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustBig(t *testing.T, s string) *big.Int {
	t.Helper()
	v, ok := new(big.Int).SetString(s, 10)
	require.True(t, ok)
	return v
}

// ---------------------------------------------------------------------------
// FormatUnits
// ---------------------------------------------------------------------------

func TestFormatUnitsWhole(t *testing.T) {
	assert.Equal(t, "1", FormatUnits(mustBig(t, "1000000000000000000"), 18))
	assert.Equal(t, "1000", FormatUnits(big.NewInt(1000), 0))
}

func TestFormatUnitsFraction(t *testing.T) {
	assert.Equal(t, "1.5", FormatUnits(mustBig(t, "1500000000000000000"), 18))
	assert.Equal(t, "0.000000000000000001", FormatUnits(big.NewInt(1), 18))
	assert.Equal(t, "0.0004", FormatUnits(big.NewInt(400), 6))
}

func TestFormatUnitsZeroAndNil(t *testing.T) {
	assert.Equal(t, "0", FormatUnits(big.NewInt(0), 18))
	assert.Equal(t, "0", FormatUnits(nil, 18))
}

func TestFormatUnitsNegative(t *testing.T) {
	assert.Equal(t, "-2.25", FormatUnits(big.NewInt(-225), 2))
}

// ---------------------------------------------------------------------------
// ParseUnits
// ---------------------------------------------------------------------------

func TestParseUnitsDecimal(t *testing.T) {
	v, err := ParseUnits("1.5", 18)
	require.NoError(t, err)
	assert.Equal(t, "1500000000000000000", v.String())

	v, err = ParseUnits(".25", 2)
	require.NoError(t, err)
	assert.Equal(t, int64(25), v.Int64())

	v, err = ParseUnits("1000", 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), v.Int64())
}

func TestParseUnitsWei(t *testing.T) {
	v, err := ParseUnits("400wei", 18)
	require.NoError(t, err)
	assert.Equal(t, int64(400), v.Int64())

	v, err = ParseUnits("0x190", 18)
	require.NoError(t, err)
	assert.Equal(t, int64(400), v.Int64())

	v, err = ParseUnits("0x0", 18)
	require.NoError(t, err)
	assert.Equal(t, int64(0), v.Int64())
}

func TestParseUnitsZero(t *testing.T) {
	v, err := ParseUnits("0", 18)
	require.NoError(t, err)
	assert.Equal(t, 0, v.Sign())

	v, err = ParseUnits("0.000", 18)
	require.NoError(t, err)
	assert.Equal(t, 0, v.Sign())
}

func TestParseUnitsRejects(t *testing.T) {
	for _, in := range []string{"", "-1", "abc", "1.2.3", "0.123", "1e18", "wei", " wei", "0x", "0X", "0xwei", "."} {
		_, err := ParseUnits(in, 2)
		assert.ErrorIs(t, err, ErrBadAmount, "input %q", in)
	}
}

func TestParseUnitsOverflow(t *testing.T) {
	// 2^256
	_, err := ParseUnits("115792089237316195423570985008687907853269984665640564039457584007913129639936wei", 18)
	assert.ErrorIs(t, err, ErrBadAmount)

	max, err := ParseUnits("115792089237316195423570985008687907853269984665640564039457584007913129639935wei", 18)
	require.NoError(t, err)
	assert.Equal(t, 256, max.BitLen())
}

func TestParseFormatRoundTrip(t *testing.T) {
	for _, in := range []string{"1", "0.5", "123.456", "0.000000000000000001"} {
		v, err := ParseUnits(in, 18)
		require.NoError(t, err)
		assert.Equal(t, in, FormatUnits(v, 18))
	}
}
