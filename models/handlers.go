package models

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Sass-DEV/CryptoTrack/portfolio"
	"github.com/Sass-DEV/CryptoTrack/ui"
)

func (m *AppModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		// Always back out to the dashboard, discarding in-progress input.
		m.AddForm = AddForm{}
		m.RemoveTarget = ""
		m.State = StateDashboard
		return m, nil
	}

	switch m.State {
	case StateDashboard:
		return m.handleDashboardKeys(msg)
	case StateAddAsset:
		return m.handleAddAssetKeys(msg)
	case StateConfirmRemove:
		return m.handleConfirmRemoveKeys(msg)
	}

	return m, nil
}

func (m *AppModel) handleDashboardKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}

	case "down", "j":
		if m.Selected < m.Store.Len()-1 {
			m.Selected++
		}

	case "a":
		m.AddForm = AddForm{}
		m.State = StateAddAsset

	case "d", "x", "delete":
		holdings := m.Store.List()
		if m.Selected >= 0 && m.Selected < len(holdings) {
			m.RemoveTarget = holdings[m.Selected].AssetID
			m.State = StateConfirmRemove
		}

	case "r", "f5":
		// Manual refresh of both fetchers, independent of the interval
		// timer. The affordance stays disabled until the price fetch
		// resolves.
		if m.Refreshing {
			return m, nil
		}
		m.Refreshing = true
		return m, tea.Batch(
			m.fetchPricesCmd(true),
			m.fetchMarketOverviewCmd(),
		)

	case "c":
		return m, m.copySummary()
	}

	return m, nil
}

// copySummary puts a plain-text portfolio summary on the system clipboard.
func (m *AppModel) copySummary() tea.Cmd {
	holdings := m.Store.List()

	var sb strings.Builder
	sb.WriteString("CryptoTrack portfolio\n")
	for _, row := range BuildRows(holdings, m.Quotes) {
		if row.HasQuote {
			sb.WriteString(fmt.Sprintf("%s %.4f @ %s = %s\n",
				row.Symbol, row.Amount, ui.PriceText(row.Price), ui.USDText(row.Value)))
		} else {
			sb.WriteString(fmt.Sprintf("%s %.4f\n", row.Symbol, row.Amount))
		}
	}
	sb.WriteString(fmt.Sprintf("Total: %s\n", ui.USDText(m.TotalValue)))

	if err := clipboard.WriteAll(sb.String()); err != nil {
		return m.notify("Could not copy to clipboard", NoticeError)
	}
	return m.notify("Portfolio summary copied to clipboard", NoticeInfo)
}

func (m *AppModel) handleAddAssetKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.AddForm.Step {
	case AddStepAsset:
		return m.handleAddAssetSelection(msg)
	case AddStepAmount:
		return m.handleAddAmountInput(msg)
	case AddStepBuyPrice:
		return m.handleAddBuyPriceInput(msg)
	}
	return m, nil
}

func (m *AppModel) handleAddAssetSelection(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.AddForm.Cursor > 0 {
			m.AddForm.Cursor--
		}
	case "down", "j":
		if m.AddForm.Cursor < len(portfolio.AssetIDs)-1 {
			m.AddForm.Cursor++
		}
	case "enter":
		m.AddForm.AssetID = portfolio.AssetIDs[m.AddForm.Cursor]
		m.AddForm.Step = AddStepAmount
	}
	return m, nil
}

func (m *AppModel) handleAddAmountInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if m.AddForm.Amount != "" {
			m.AddForm.Step = AddStepBuyPrice
		}
	case "backspace":
		if len(m.AddForm.Amount) > 0 {
			m.AddForm.Amount = m.AddForm.Amount[:len(m.AddForm.Amount)-1]
		} else {
			m.AddForm.Step = AddStepAsset
		}
	default:
		m.AddForm.Amount = appendNumeric(m.AddForm.Amount, msg.String())
	}
	return m, nil
}

func (m *AppModel) handleAddBuyPriceInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		// Buy price is optional; an empty input means "not tracked".
		return m.submitAdd()
	case "backspace":
		if len(m.AddForm.BuyPrice) > 0 {
			m.AddForm.BuyPrice = m.AddForm.BuyPrice[:len(m.AddForm.BuyPrice)-1]
		} else {
			m.AddForm.Step = AddStepAmount
		}
	default:
		m.AddForm.BuyPrice = appendNumeric(m.AddForm.BuyPrice, msg.String())
	}
	return m, nil
}

// appendNumeric accepts digits and at most one decimal point.
func appendNumeric(current, key string) string {
	if len(key) != 1 {
		return current
	}
	c := key[0]
	if c >= '0' && c <= '9' {
		return current + key
	}
	if c == '.' && !strings.Contains(current, ".") {
		return current + key
	}
	return current
}

func (m *AppModel) submitAdd() (tea.Model, tea.Cmd) {
	amount, err := strconv.ParseFloat(m.AddForm.Amount, 64)
	if err != nil || amount <= 0 || m.AddForm.AssetID == "" {
		return m, m.notify("Please select a cryptocurrency and enter a valid amount", NoticeError)
	}

	buyPrice := 0.0
	if m.AddForm.BuyPrice != "" {
		if parsed, err := strconv.ParseFloat(m.AddForm.BuyPrice, 64); err == nil {
			buyPrice = parsed
		}
	}

	if err := m.Store.Add(m.AddForm.AssetID, amount, buyPrice); err != nil {
		return m, m.notify(err.Error(), NoticeError)
	}

	m.AddForm = AddForm{}
	m.State = StateDashboard
	m.clampSelection()

	return m, tea.Batch(
		m.notify("Cryptocurrency added successfully!", NoticeSuccess),
		m.fetchPricesCmd(false),
	)
}

func (m *AppModel) handleConfirmRemoveKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		target := m.RemoveTarget
		m.RemoveTarget = ""
		m.State = StateDashboard

		if err := m.Store.Remove(target); err != nil {
			return m, m.notify(err.Error(), NoticeError)
		}
		m.clampSelection()

		return m, tea.Batch(
			m.notify("Asset removed from portfolio", NoticeInfo),
			m.fetchPricesCmd(false),
		)

	case "n":
		m.RemoveTarget = ""
		m.State = StateDashboard
	}
	return m, nil
}

func (m *AppModel) clampSelection() {
	if max := m.Store.Len() - 1; m.Selected > max {
		m.Selected = max
	}
	if m.Selected < 0 {
		m.Selected = 0
	}
}
