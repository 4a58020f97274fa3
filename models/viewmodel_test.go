package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sass-DEV/CryptoTrack/api"
	"github.com/Sass-DEV/CryptoTrack/portfolio"
)

func TestBuildRowsProfitAndLoss(t *testing.T) {
	holdings := []portfolio.Holding{
		{AssetID: "bitcoin", Amount: 2, BuyPrice: 100},
	}

	tests := []struct {
		name          string
		price         float64
		wantPL        float64
		wantPLPercent float64
	}{
		{name: "gain", price: 120, wantPL: 40, wantPLPercent: 20},
		{name: "loss", price: 80, wantPL: -40, wantPLPercent: -20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quotes := map[string]api.Quote{"bitcoin": {Price: tt.price}}
			rows := BuildRows(holdings, quotes)
			require.Len(t, rows, 1)
			assert.True(t, rows[0].HasPL)
			assert.InDelta(t, tt.wantPL, rows[0].PL, 1e-9)
			assert.InDelta(t, tt.wantPLPercent, rows[0].PLPercent, 1e-9)
		})
	}
}

func TestBuildRowsWithoutBuyPriceHasNoPL(t *testing.T) {
	holdings := []portfolio.Holding{{AssetID: "ethereum", Amount: 3}}
	quotes := map[string]api.Quote{"ethereum": {Price: 2000, Change24h: 1.5}}

	rows := BuildRows(holdings, quotes)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].HasQuote)
	assert.False(t, rows[0].HasPL)
	assert.InDelta(t, 6000, rows[0].Value, 1e-9)
}

func TestBuildRowsWithoutQuoteIsLoading(t *testing.T) {
	holdings := []portfolio.Holding{{AssetID: "solana", Amount: 10, BuyPrice: 50}}

	rows := BuildRows(holdings, map[string]api.Quote{})
	require.Len(t, rows, 1)
	assert.False(t, rows[0].HasQuote)
	assert.False(t, rows[0].HasPL)
	assert.Equal(t, "SOL", rows[0].Symbol)
	assert.Equal(t, "Solana", rows[0].Name)
}

func TestTotalValueSkipsMissingQuotes(t *testing.T) {
	holdings := []portfolio.Holding{
		{AssetID: "bitcoin", Amount: 0.5},
		{AssetID: "ethereum", Amount: 2},
		{AssetID: "dogecoin", Amount: 1000},
	}
	quotes := map[string]api.Quote{
		"bitcoin":  {Price: 40000},
		"ethereum": {Price: 2000},
		// dogecoin missing from this cycle's response
	}

	assert.InDelta(t, 24000, TotalValue(holdings, quotes), 1e-9)
}

func TestTotalValueEmptyPortfolio(t *testing.T) {
	assert.Equal(t, 0.0, TotalValue(nil, map[string]api.Quote{"bitcoin": {Price: 1}}))
}

func TestBuildCardsPreservesOrderAndSkipsMissing(t *testing.T) {
	quotes := map[string]api.MarketQuote{
		"binancecoin": {Price: 310, MarketCap: 48e9, Change24h: -0.4},
		"bitcoin":     {Price: 43250.5, MarketCap: 846e9, Change24h: 2.37},
	}

	cards := BuildCards(MarketOverviewIDs, quotes)
	require.Len(t, cards, 2)
	assert.Equal(t, "BTC", cards[0].Symbol)
	assert.Equal(t, "BNB", cards[1].Symbol)
	assert.InDelta(t, 846e9, cards[0].MarketCap, 1)
}
