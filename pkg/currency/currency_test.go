package currency

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToRiel_WholeAmount(t *testing.T) {
	// $10.00 at 4100 KHR/USD
	khr, err := ToRiel(1000, decimal.NewFromInt(4100))

	require.NoError(t, err)
	assert.Equal(t, int64(41000), khr)
}

func TestToRiel_RoundsToWholeRiel(t *testing.T) {
	tests := []struct {
		name     string
		usdCents int64
		rate     decimal.Decimal
		want     int64
	}{
		{"rounds down below half", 1, decimal.NewFromFloat(4100.4), 41},
		{"half rounds away from zero", 1, decimal.NewFromFloat(4150), 42},
		{"rounds up above half", 3, decimal.NewFromFloat(4120), 124},
		{"fractional rate", 1250, decimal.NewFromFloat(4062.5), 50781},
		{"zero amount", 0, decimal.NewFromInt(4100), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			khr, err := ToRiel(tt.usdCents, tt.rate)
			require.NoError(t, err)
			assert.Equal(t, tt.want, khr)
		})
	}
}

func TestToRiel_RejectsNonPositiveRate(t *testing.T) {
	for _, rate := range []decimal.Decimal{
		decimal.Zero,
		decimal.NewFromInt(-4100),
	} {
		_, err := ToRiel(1000, rate)
		require.Error(t, err)
	}
}

func TestCentsFromDollars(t *testing.T) {
	tests := []struct {
		dollars float64
		want    int64
	}{
		{10.00, 1000},
		{2.50, 250},
		{0.01, 1},
		{1.999, 200},  // ties-away rounding to nearest cent
		{0.005, 1},    // half cent rounds up
		{-3.25, -325}, // sign preserved
		{0, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CentsFromDollars(tt.dollars), "dollars=%v", tt.dollars)
	}
}

func TestDollarsFromCents(t *testing.T) {
	assert.Equal(t, 12.50, DollarsFromCents(1250))
	assert.Equal(t, 0.01, DollarsFromCents(1))
	assert.Equal(t, 0.0, DollarsFromCents(0))
	assert.Equal(t, -5.25, DollarsFromCents(-525))
}

func TestRoundTripCentsDollars(t *testing.T) {
	for _, cents := range []int64{0, 1, 99, 100, 1250, 999999} {
		assert.Equal(t, cents, CentsFromDollars(DollarsFromCents(cents)))
	}
}
