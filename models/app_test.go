package models

import (
	"io"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sass-DEV/CryptoTrack/api"
	"github.com/Sass-DEV/CryptoTrack/config"
	"github.com/Sass-DEV/CryptoTrack/logging"
	"github.com/Sass-DEV/CryptoTrack/portfolio"
)

func newTestModel(t *testing.T) *AppModel {
	t.Helper()

	cfg := &config.Config{RefreshInterval: time.Minute}
	store := portfolio.NewStore(filepath.Join(t.TempDir(), "portfolio.json"))
	client := api.NewClient("")
	logger := logging.New("error", io.Discard)

	return NewAppModel(cfg, store, client, logger)
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestPricesLoadedUpdatesCacheAndTotal(t *testing.T) {
	m := newTestModel(t)
	require.NoError(t, m.Store.Add("bitcoin", 2, 0))
	require.NoError(t, m.Store.Add("ethereum", 1, 0))

	_, cmd := m.Update(pricesLoadedMsg{quotes: map[string]api.Quote{
		"bitcoin": {Price: 40000, Change24h: 1.2},
		// ethereum missing this cycle
	}})

	assert.Nil(t, cmd, "auto refresh success raises no notification")
	assert.InDelta(t, 80000, m.TotalValue, 1e-9)
	assert.Equal(t, 40000.0, m.Quotes["bitcoin"].Price)
	assert.False(t, m.LastUpdated.IsZero())
	assert.Empty(t, m.Notifications)
}

func TestPricesLoadedMergesIntoCache(t *testing.T) {
	m := newTestModel(t)
	require.NoError(t, m.Store.Add("bitcoin", 1, 0))
	m.Quotes["ethereum"] = api.Quote{Price: 2000}

	m.Update(pricesLoadedMsg{quotes: map[string]api.Quote{
		"bitcoin": {Price: 40000},
	}})

	// Previously cached quotes stay in place until overwritten.
	assert.Equal(t, 2000.0, m.Quotes["ethereum"].Price)
	assert.Equal(t, 40000.0, m.Quotes["bitcoin"].Price)
}

func TestPricesLoadedErrorKeepsStateAndNotifies(t *testing.T) {
	m := newTestModel(t)
	m.Quotes["bitcoin"] = api.Quote{Price: 40000}
	m.TotalValue = 40000

	_, cmd := m.Update(pricesLoadedMsg{err: errors.New("boom")})

	assert.NotNil(t, cmd, "error schedules the notification expiry")
	assert.Equal(t, 40000.0, m.Quotes["bitcoin"].Price)
	assert.Equal(t, 40000.0, m.TotalValue)
	require.Len(t, m.Notifications, 1)
	assert.Equal(t, NoticeError, m.Notifications[0].Kind)
}

func TestManualRefreshNotifiesAndClearsSpinner(t *testing.T) {
	m := newTestModel(t)
	require.NoError(t, m.Store.Add("bitcoin", 1, 0))
	m.Refreshing = true

	m.Update(pricesLoadedMsg{quotes: map[string]api.Quote{"bitcoin": {Price: 1}}, manual: true})

	assert.False(t, m.Refreshing)
	require.Len(t, m.Notifications, 1)
	assert.Equal(t, NoticeSuccess, m.Notifications[0].Kind)
}

func TestEmptyPortfolioFetchIsSkipped(t *testing.T) {
	m := newTestModel(t)
	// Unreachable base URL: the command must not touch the network.
	m.Client = api.NewClient("http://127.0.0.1:1")

	msg := m.fetchPricesCmd(false)()
	loaded, ok := msg.(pricesLoadedMsg)
	require.True(t, ok)
	assert.True(t, loaded.skipped)
	assert.NoError(t, loaded.err)
}

func TestRemovingLastHoldingResetsTotal(t *testing.T) {
	m := newTestModel(t)
	require.NoError(t, m.Store.Add("bitcoin", 1, 0))
	m.Update(pricesLoadedMsg{quotes: map[string]api.Quote{"bitcoin": {Price: 40000}}})
	require.InDelta(t, 40000, m.TotalValue, 1e-9)

	m.Update(keyMsg("d"))
	m.Update(keyMsg("y"))
	require.Equal(t, 0, m.Store.Len())

	// The fetch scheduled by the removal short-circuits on the now-empty
	// store; the displayed total must still drop to zero.
	m.Update(m.fetchPricesCmd(false)())

	assert.Equal(t, 0.0, m.TotalValue)
	view := m.dashboardView()
	assert.Contains(t, view, "$0.00")
	assert.NotContains(t, view, "$40000.00")
	assert.Contains(t, view, "No assets in portfolio")
}

func TestMarketOverviewErrorIsSilent(t *testing.T) {
	m := newTestModel(t)
	m.MarketQuotes = map[string]api.MarketQuote{"bitcoin": {Price: 40000}}
	m.MarketLoaded = true

	_, cmd := m.Update(marketOverviewLoadedMsg{err: errors.New("boom")})

	assert.Nil(t, cmd)
	assert.Empty(t, m.Notifications, "overview failures never notify")
	assert.Equal(t, 40000.0, m.MarketQuotes["bitcoin"].Price)
	assert.True(t, m.MarketLoaded)
}

func TestNoticeExpiryRemovesOnlyThatNotice(t *testing.T) {
	m := newTestModel(t)
	m.notify("first", NoticeInfo)
	m.notify("second", NoticeError)

	first := m.Notifications[0].ID
	m.Update(noticeExpiredMsg{id: first})

	require.Len(t, m.Notifications, 1)
	assert.Equal(t, "second", m.Notifications[0].Message)
}

func TestAddFlowThroughKeys(t *testing.T) {
	m := newTestModel(t)

	m.Update(keyMsg("a"))
	assert.Equal(t, StateAddAsset, m.State)

	// Select the first asset (bitcoin), enter amount 2, buy price 100.
	m.Update(keyMsg("enter"))
	assert.Equal(t, AddStepAmount, m.AddForm.Step)

	m.Update(keyMsg("2"))
	m.Update(keyMsg("enter"))
	assert.Equal(t, AddStepBuyPrice, m.AddForm.Step)

	m.Update(keyMsg("1"))
	m.Update(keyMsg("0"))
	m.Update(keyMsg("0"))
	_, cmd := m.Update(keyMsg("enter"))

	assert.NotNil(t, cmd)
	assert.Equal(t, StateDashboard, m.State)

	holdings := m.Store.List()
	require.Len(t, holdings, 1)
	assert.Equal(t, "bitcoin", holdings[0].AssetID)
	assert.Equal(t, 2.0, holdings[0].Amount)
	assert.Equal(t, 100.0, holdings[0].BuyPrice)

	require.Len(t, m.Notifications, 1)
	assert.Equal(t, NoticeSuccess, m.Notifications[0].Kind)
}

func TestAddFlowRejectsZeroAmount(t *testing.T) {
	m := newTestModel(t)

	m.Update(keyMsg("a"))
	m.Update(keyMsg("enter"))
	m.Update(keyMsg("0"))
	m.Update(keyMsg("enter"))
	m.Update(keyMsg("enter"))

	assert.Equal(t, StateAddAsset, m.State, "invalid amount keeps the form open")
	assert.Equal(t, 0, m.Store.Len())
	require.Len(t, m.Notifications, 1)
	assert.Equal(t, NoticeError, m.Notifications[0].Kind)
}

func TestRemoveFlowRequiresConfirmation(t *testing.T) {
	m := newTestModel(t)
	require.NoError(t, m.Store.Add("bitcoin", 1, 0))

	m.Update(keyMsg("d"))
	assert.Equal(t, StateConfirmRemove, m.State)
	assert.Equal(t, "bitcoin", m.RemoveTarget)

	// Declining leaves the holding in place.
	m.Update(keyMsg("n"))
	assert.Equal(t, StateDashboard, m.State)
	assert.Equal(t, 1, m.Store.Len())

	// Confirming removes and raises an info notification.
	m.Update(keyMsg("d"))
	m.Update(keyMsg("y"))
	assert.Equal(t, StateDashboard, m.State)
	assert.Equal(t, 0, m.Store.Len())
	require.Len(t, m.Notifications, 1)
	assert.Equal(t, NoticeInfo, m.Notifications[0].Kind)
}

func TestNumericInputAcceptsSingleDecimalPoint(t *testing.T) {
	assert.Equal(t, "1.5", appendNumeric(appendNumeric(appendNumeric("", "1"), "."), "5"))
	assert.Equal(t, "1.5", appendNumeric("1.5", "."))
	assert.Equal(t, "1", appendNumeric("1", "x"))
}
