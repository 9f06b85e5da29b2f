package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFutureValue(t *testing.T) {
	t.Run("no growth and no contribution keeps the balance", func(t *testing.T) {
		for _, span := range [][2]int{{40, 60}, {60, 60}, {30, 90}} {
			got := FutureValue(d("123.45"), decimal.Zero, decimal.Zero, span[0], span[1], 65)
			assertDecimal(t, d("123.45"), got)
		}
	})

	t.Run("target before current age is a no-op", func(t *testing.T) {
		assertDecimal(t, d("100"), FutureValue(d("100"), d("5"), d("0.05"), 60, 55, 65))
	})

	t.Run("contributions stop at the contribution end age", func(t *testing.T) {
		assertDecimal(t, d("12"), FutureValue(decimal.Zero, d("1"), decimal.Zero, 59, 62, 60))
		assertDecimal(t, d("36"), FutureValue(decimal.Zero, d("1"), decimal.Zero, 59, 62, 65))
	})

	t.Run("monthly compounding", func(t *testing.T) {
		// 100 * 1.01^12
		assertNear(t, d("112.682503013196972066"), FutureValue(d("100"), decimal.Zero, d("0.12"), 0, 1, 0), "0.000000001")
	})

	t.Run("growth is applied before the contribution", func(t *testing.T) {
		// 10 * (1.01^12 - 1) / 0.01
		assertNear(t, d("126.825030131969720661"), FutureValue(decimal.Zero, d("10"), d("0.12"), 0, 1, 1), "0.000000001")
	})
}

func TestAnnuityPayment(t *testing.T) {
	tests := []struct {
		name      string
		principal string
		rate      string
		years     int
		expected  string
		tolerance string
	}{
		{"zero rate", "1000", "0", 10, "100", "0"},
		{"five percent over ten years", "1000", "0.05", 10, "129.504574965456610", "0.000001"},
		{"years floored at one", "1000", "0.05", 0, "1050", "0.000001"},
		{"zero principal", "0", "0.03", 20, "0", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AnnuityPayment(d(tt.principal), d(tt.rate), tt.years)
			assertNear(t, d(tt.expected), got, tt.tolerance)
		})
	}
}

func TestAnnuityPayment_ZeroDenominator(t *testing.T) {
	// (1-2)^2 - 1 == 0
	assert.NotPanics(t, func() {
		assertDecimal(t, d("50"), AnnuityPayment(d("100"), d("-2"), 2))
	})
}
