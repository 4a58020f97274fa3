package portfolio

import "strings"

// AssetMeta holds display metadata for one supported asset.
type AssetMeta struct {
	Symbol string
	Name   string
	Color  string
}

// Metadata maps CoinGecko asset ids to display metadata. The color is the
// asset's accent color used for its symbol badge.
var Metadata = map[string]AssetMeta{
	"bitcoin":       {Symbol: "BTC", Name: "Bitcoin", Color: "#F7931A"},
	"ethereum":      {Symbol: "ETH", Name: "Ethereum", Color: "#627EEA"},
	"binancecoin":   {Symbol: "BNB", Name: "BNB", Color: "#F3BA2F"},
	"solana":        {Symbol: "SOL", Name: "Solana", Color: "#00FFA3"},
	"cardano":       {Symbol: "ADA", Name: "Cardano", Color: "#0033AD"},
	"ripple":        {Symbol: "XRP", Name: "XRP", Color: "#23292F"},
	"polkadot":      {Symbol: "DOT", Name: "Polkadot", Color: "#E6007A"},
	"dogecoin":      {Symbol: "DOGE", Name: "Dogecoin", Color: "#C2A633"},
	"avalanche-2":   {Symbol: "AVAX", Name: "Avalanche", Color: "#E84142"},
	"matic-network": {Symbol: "MATIC", Name: "Polygon", Color: "#8247E5"},
}

// AssetIDs lists the supported ids in the order the add form presents them.
var AssetIDs = []string{
	"bitcoin",
	"ethereum",
	"binancecoin",
	"solana",
	"cardano",
	"ripple",
	"polkadot",
	"dogecoin",
	"avalanche-2",
	"matic-network",
}

// MetaFor returns the metadata for an id, falling back to a generic entry
// so an unknown id still renders something sensible.
func MetaFor(id string) AssetMeta {
	if meta, ok := Metadata[id]; ok {
		return meta
	}
	return AssetMeta{Symbol: strings.ToUpper(id), Name: id, Color: "#FAFAFA"}
}
