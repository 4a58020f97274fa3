package portfolio

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
)

// Validation errors surfaced to the user when an add is rejected. The store
// is left untouched and nothing is written to disk.
var (
	ErrNoAsset       = errors.New("no asset selected")
	ErrInvalidAmount = errors.New("amount must be a positive number")
)

// Holding is one recorded position in a single asset. The JSON field names
// match the document the web version of the tracker kept in localStorage, so
// an existing portfolio file loads as-is.
type Holding struct {
	AssetID        string    `json:"id"`
	Amount         float64   `json:"amount"`
	BuyPrice       float64   `json:"buyPrice"`
	OriginalAmount float64   `json:"originalAmount"`
	AddedAt        time.Time `json:"addedAt"`
}

// Store keeps the ordered holdings list and persists it to a single JSON
// file after every mutation. All access happens on the UI event loop, so the
// store does no locking of its own.
type Store struct {
	path     string
	holdings []Holding
}

// NewStore creates a store backed by the given file. Call Load before use.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the persisted holdings list. A missing file leaves the store
// empty and returns nil; an unreadable or unparsable file also leaves the
// store empty but returns the error so the caller can log it.
func (s *Store) Load() error {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "read portfolio file")
	}

	var holdings []Holding
	if err := json.Unmarshal(data, &holdings); err != nil {
		s.holdings = nil
		return errors.Wrap(err, "parse portfolio file")
	}

	s.holdings = holdings
	return nil
}

// Add records an acquisition. Adding an asset that is already held merges
// into the existing holding: amounts sum, and if a buy price is supplied the
// cost basis becomes the amount-weighted average across all recorded lots.
// A buy price of 0 means "unknown" and leaves the existing basis alone.
func (s *Store) Add(assetID string, amount, buyPrice float64) error {
	if assetID == "" {
		return ErrNoAsset
	}
	if amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return ErrInvalidAmount
	}

	for i := range s.holdings {
		h := &s.holdings[i]
		if h.AssetID != assetID {
			continue
		}
		h.Amount += amount
		if buyPrice > 0 {
			totalCost := h.BuyPrice*h.OriginalAmount + buyPrice*amount
			h.OriginalAmount += amount
			h.BuyPrice = totalCost / h.OriginalAmount
		}
		return s.save()
	}

	s.holdings = append(s.holdings, Holding{
		AssetID:        assetID,
		Amount:         amount,
		BuyPrice:       buyPrice,
		OriginalAmount: amount,
		AddedAt:        time.Now(),
	})
	return s.save()
}

// Remove deletes the holding for the given asset. Removing an id that is not
// held is a no-op, but the list is persisted either way.
func (s *Store) Remove(assetID string) error {
	kept := make([]Holding, 0, len(s.holdings))
	for _, h := range s.holdings {
		if h.AssetID != assetID {
			kept = append(kept, h)
		}
	}
	s.holdings = kept
	return s.save()
}

// List returns the current holdings in insertion order.
func (s *Store) List() []Holding {
	out := make([]Holding, len(s.holdings))
	copy(out, s.holdings)
	return out
}

// AssetIDs returns the ids of all held assets in insertion order.
func (s *Store) AssetIDs() []string {
	ids := make([]string, 0, len(s.holdings))
	for _, h := range s.holdings {
		ids = append(ids, h.AssetID)
	}
	return ids
}

// Len reports the number of holdings.
func (s *Store) Len() int {
	return len(s.holdings)
}

func (s *Store) save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return errors.Wrap(err, "create data directory")
	}

	data, err := json.Marshal(s.holdings)
	if err != nil {
		return errors.Wrap(err, "marshal portfolio")
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return errors.Wrap(err, "write portfolio file")
	}
	return nil
}
