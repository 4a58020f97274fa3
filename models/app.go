package models

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Sass-DEV/CryptoTrack/api"
	"github.com/Sass-DEV/CryptoTrack/config"
	"github.com/Sass-DEV/CryptoTrack/logging"
	"github.com/Sass-DEV/CryptoTrack/portfolio"
)

// App states
const (
	StateDashboard = iota
	StateAddAsset
	StateConfirmRemove
)

// Add form steps
const (
	AddStepAsset = iota
	AddStepAmount
	AddStepBuyPrice
)

// MarketOverviewIDs is the fixed, portfolio-independent set of headline
// assets shown in the overview panel.
var MarketOverviewIDs = []string{"bitcoin", "ethereum", "binancecoin"}

type AppModel struct {
	State  int
	Width  int
	Height int

	Store  *portfolio.Store
	Client *api.Client
	Logger *logging.Logger

	RefreshInterval time.Duration

	// Quotes is the volatile price cache. Entries are overwritten per fetch
	// cycle and never individually removed, so a cell keeps showing its last
	// known value when an id drops out of one response.
	Quotes       map[string]api.Quote
	MarketQuotes map[string]api.MarketQuote
	TotalValue   float64
	MarketLoaded bool
	LastUpdated  time.Time

	// Refreshing disables the manual refresh affordance while a
	// user-triggered price fetch is in flight.
	Refreshing bool

	// Dashboard row selection, used to pick a holding to remove.
	Selected int

	AddForm      AddForm
	RemoveTarget string

	Notifications []Notification
	nextNoticeID  int
}

// AddForm holds the three-step add flow's in-progress input.
type AddForm struct {
	Step     int
	Cursor   int
	AssetID  string
	Amount   string
	BuyPrice string
}

// NewAppModel wires the model from its collaborators. The store must
// already be loaded.
func NewAppModel(cfg *config.Config, store *portfolio.Store, client *api.Client, logger *logging.Logger) *AppModel {
	return &AppModel{
		State:           StateDashboard,
		Store:           store,
		Client:          client,
		Logger:          logger,
		RefreshInterval: cfg.RefreshInterval,
		Quotes:          make(map[string]api.Quote),
		MarketQuotes:    make(map[string]api.MarketQuote),
	}
}

// Message types for Bubble Tea
type tickMsg time.Time

type pricesLoadedMsg struct {
	quotes  map[string]api.Quote
	err     error
	manual  bool
	skipped bool
}

type marketOverviewLoadedMsg struct {
	quotes map[string]api.MarketQuote
	err    error
}

func tickEvery(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// fetchPricesCmd requests quotes for every held asset. An empty portfolio
// never touches the network.
func (m *AppModel) fetchPricesCmd(manual bool) tea.Cmd {
	ids := m.Store.AssetIDs()
	client := m.Client
	return func() tea.Msg {
		if len(ids) == 0 {
			return pricesLoadedMsg{manual: manual, skipped: true}
		}
		quotes, err := client.SimplePrices(ids)
		return pricesLoadedMsg{quotes: quotes, err: err, manual: manual}
	}
}

func (m *AppModel) fetchMarketOverviewCmd() tea.Cmd {
	client := m.Client
	return func() tea.Msg {
		quotes, err := client.MarketPrices(MarketOverviewIDs)
		return marketOverviewLoadedMsg{quotes: quotes, err: err}
	}
}

func (m *AppModel) Init() tea.Cmd {
	return tea.Batch(
		m.fetchPricesCmd(false),
		m.fetchMarketOverviewCmd(),
		tickEvery(m.RefreshInterval),
	)
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case tickMsg:
		// Fixed-interval auto refresh of both fetchers, no backoff.
		return m, tea.Batch(
			m.fetchPricesCmd(false),
			m.fetchMarketOverviewCmd(),
			tickEvery(m.RefreshInterval),
		)

	case pricesLoadedMsg:
		return m.handlePricesLoaded(msg)

	case marketOverviewLoadedMsg:
		if msg.err != nil {
			// Overview failures are silent on screen; the panel keeps its
			// last known state.
			m.Logger.Warn().Err(msg.err).Msg("market overview fetch failed")
			return m, nil
		}
		m.MarketQuotes = msg.quotes
		m.MarketLoaded = true
		return m, nil

	case noticeExpiredMsg:
		m.expireNotice(msg.id)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	return m, nil
}

func (m *AppModel) handlePricesLoaded(msg pricesLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.manual {
		m.Refreshing = false
	}

	if msg.skipped {
		// An empty portfolio is worth exactly nothing, even when a prior
		// total is still cached from before the last holding was removed.
		m.TotalValue = 0
		if msg.manual {
			return m, m.notify("Prices updated successfully!", NoticeSuccess)
		}
		return m, nil
	}

	if msg.err != nil {
		m.Logger.Error().Err(msg.err).Msg("price fetch failed")
		return m, m.notify("Error fetching prices. Please try again later.", NoticeError)
	}

	for id, q := range msg.quotes {
		m.Quotes[id] = q
	}
	// The total only counts ids present in this cycle's response.
	m.TotalValue = TotalValue(m.Store.List(), msg.quotes)
	m.LastUpdated = time.Now()

	if msg.manual {
		return m, m.notify("Prices updated successfully!", NoticeSuccess)
	}
	return m, nil
}

func (m *AppModel) View() string {
	switch m.State {
	case StateAddAsset:
		return m.addAssetView()
	case StateConfirmRemove:
		return m.confirmRemoveView()
	default:
		return m.dashboardView()
	}
}
