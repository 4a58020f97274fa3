package models

import (
	"github.com/Sass-DEV/CryptoTrack/api"
	"github.com/Sass-DEV/CryptoTrack/portfolio"
)

// HoldingRow is everything the dashboard table needs for one holding,
// derived from the stored position and the latest quote for its asset.
// Rows carry numbers and presence flags only; formatting happens in the
// view layer.
type HoldingRow struct {
	AssetID string
	Symbol  string
	Name    string
	Color   string
	Amount  float64

	// HasQuote is false until the first successful fetch delivers a price
	// for this asset; the row renders loading placeholders in that case.
	HasQuote  bool
	Price     float64
	Change24h float64
	Value     float64

	// HasPL is true only when a cost basis was recorded for the holding.
	HasPL     bool
	PL        float64
	PLPercent float64
}

// MarketCard is one overview panel entry.
type MarketCard struct {
	Symbol    string
	Name      string
	Color     string
	Price     float64
	MarketCap float64
	Change24h float64
}

// BuildRows derives the dashboard rows from the holdings list and the quote
// cache. It is a pure function of its inputs.
func BuildRows(holdings []portfolio.Holding, quotes map[string]api.Quote) []HoldingRow {
	rows := make([]HoldingRow, 0, len(holdings))
	for _, h := range holdings {
		meta := portfolio.MetaFor(h.AssetID)
		row := HoldingRow{
			AssetID: h.AssetID,
			Symbol:  meta.Symbol,
			Name:    meta.Name,
			Color:   meta.Color,
			Amount:  h.Amount,
		}

		if q, ok := quotes[h.AssetID]; ok {
			row.HasQuote = true
			row.Price = q.Price
			row.Change24h = q.Change24h
			row.Value = q.Price * h.Amount

			if h.BuyPrice > 0 {
				row.HasPL = true
				row.PL = (q.Price - h.BuyPrice) * h.Amount
				row.PLPercent = (q.Price - h.BuyPrice) / h.BuyPrice * 100
			}
		}

		rows = append(rows, row)
	}
	return rows
}

// TotalValue sums price times amount over every holding with a quote in the
// given map. Holdings without a quote contribute nothing this cycle.
func TotalValue(holdings []portfolio.Holding, quotes map[string]api.Quote) float64 {
	total := 0.0
	for _, h := range holdings {
		if q, ok := quotes[h.AssetID]; ok {
			total += q.Price * h.Amount
		}
	}
	return total
}

// BuildCards derives the market overview cards, preserving the fixed id
// order and skipping ids absent from the response.
func BuildCards(ids []string, quotes map[string]api.MarketQuote) []MarketCard {
	cards := make([]MarketCard, 0, len(ids))
	for _, id := range ids {
		q, ok := quotes[id]
		if !ok {
			continue
		}
		meta := portfolio.MetaFor(id)
		cards = append(cards, MarketCard{
			Symbol:    meta.Symbol,
			Name:      meta.Name,
			Color:     meta.Color,
			Price:     q.Price,
			MarketCap: q.MarketCap,
			Change24h: q.Change24h,
		})
	}
	return cards
}
