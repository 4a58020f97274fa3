package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// DefaultBaseURL is the public CoinGecko API root. No API key is required
// for the simple price endpoint.
const DefaultBaseURL = "https://api.coingecko.com/api/v3"

// Quote is one asset's current USD price and 24h percent change.
type Quote struct {
	Price     float64
	Change24h float64
}

// MarketQuote adds the market cap requested for the overview panel.
type MarketQuote struct {
	Price     float64
	MarketCap float64
	Change24h float64
}

// Client is a minimal CoinGecko price client.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a client. An empty baseURL selects the public API.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// SimplePrices fetches the current USD price and 24h change for the given
// asset ids. Ids the service does not recognize are simply absent from the
// result. An empty id set returns an empty map without touching the network.
func (c *Client) SimplePrices(ids []string) (map[string]Quote, error) {
	if len(ids) == 0 {
		return map[string]Quote{}, nil
	}

	raw, err := c.simplePrice(ids, false)
	if err != nil {
		return nil, err
	}

	quotes := make(map[string]Quote, len(raw))
	for id, fields := range raw {
		price, ok := fields["usd"]
		if !ok {
			continue
		}
		quotes[id] = Quote{
			Price:     price,
			Change24h: fields["usd_24h_change"],
		}
	}
	return quotes, nil
}

// MarketPrices fetches price, market cap and 24h change for the given ids.
// Used for the fixed market overview set.
func (c *Client) MarketPrices(ids []string) (map[string]MarketQuote, error) {
	if len(ids) == 0 {
		return map[string]MarketQuote{}, nil
	}

	raw, err := c.simplePrice(ids, true)
	if err != nil {
		return nil, err
	}

	quotes := make(map[string]MarketQuote, len(raw))
	for id, fields := range raw {
		price, ok := fields["usd"]
		if !ok {
			continue
		}
		quotes[id] = MarketQuote{
			Price:     price,
			MarketCap: fields["usd_market_cap"],
			Change24h: fields["usd_24h_change"],
		}
	}
	return quotes, nil
}

// simplePrice calls /simple/price and returns the raw id -> field -> value
// mapping the endpoint responds with.
func (c *Client) simplePrice(ids []string, includeMarketCap bool) (map[string]map[string]float64, error) {
	params := url.Values{}
	params.Set("ids", strings.Join(ids, ","))
	params.Set("vs_currencies", "usd")
	params.Set("include_24hr_change", "true")
	if includeMarketCap {
		params.Set("include_market_cap", "true")
	}

	endpoint := c.BaseURL + "/simple/price?" + params.Encode()

	resp, err := c.HTTPClient.Get(endpoint)
	if err != nil {
		return nil, errors.Wrap(err, "fetch prices")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, errors.Errorf("API error %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var raw map[string]map[string]float64
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, errors.Wrap(err, "parse price response")
	}

	return raw, nil
}
