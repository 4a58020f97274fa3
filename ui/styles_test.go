package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriceTextPrecisionByMagnitude(t *testing.T) {
	assert.Equal(t, "$0.000085", PriceText(0.0000851))
	assert.Equal(t, "$2.3500", PriceText(2.35))
	assert.Equal(t, "$43250.12", PriceText(43250.123))
}

func TestUSDText(t *testing.T) {
	assert.Equal(t, "$0.00", USDText(0))
	assert.Equal(t, "$1234.57", USDText(1234.567))
}

func TestChangeTextArrowAndMagnitude(t *testing.T) {
	assert.Equal(t, "▲ 2.35%", ChangeText(2.35))
	assert.Equal(t, "▼ 1.20%", ChangeText(-1.2))
	assert.Equal(t, "▲ 0.00%", ChangeText(0))
}

func TestPLTextExplicitSigns(t *testing.T) {
	assert.Equal(t, "+$40.00 (+20.00%)", PLText(40, 20))
	assert.Equal(t, "-$40.00 (-20.00%)", PLText(-40, -20))
	assert.Equal(t, "+$0.00 (+0.00%)", PLText(0, 0))
}

func TestMarketCapTextInBillions(t *testing.T) {
	assert.Equal(t, "$846.21B", MarketCapText(846.21e9))
	assert.Equal(t, "$0.50B", MarketCapText(5e8))
}
