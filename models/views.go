package models

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Sass-DEV/CryptoTrack/portfolio"
	"github.com/Sass-DEV/CryptoTrack/ui"
)

// dashboardView renders the portfolio table, summary and market overview.
func (m *AppModel) dashboardView() string {
	title := ui.HeaderStyle.Render("₿ CRYPTOTRACK — PORTFOLIO")

	var content strings.Builder

	content.WriteString(m.marketOverviewSection())
	content.WriteString("\n")

	content.WriteString("💰 YOUR PORTFOLIO\n")
	content.WriteString("═════════════════\n")
	content.WriteString(fmt.Sprintf("Total Value: %s", ui.ValueStyle.Render(ui.USDText(m.TotalValue))))
	if !m.LastUpdated.IsZero() {
		content.WriteString(ui.InfoStyle.Render(fmt.Sprintf("   (updated %s)", m.LastUpdated.Format("3:04:05 PM"))))
	}
	content.WriteString("\n\n")

	rows := BuildRows(m.Store.List(), m.Quotes)
	if len(rows) == 0 {
		content.WriteString(ui.NeutralStyle.Render("No assets in portfolio. Add some cryptocurrencies to get started!"))
		content.WriteString("\n")
	} else {
		content.WriteString(ui.TableHeaderStyle.Render(fmt.Sprintf(
			"  %-22s %-12s %-14s %-10s %-14s %s",
			"Asset", "Amount", "Price", "24h", "Value", "P&L")))
		content.WriteString("\n")
		content.WriteString(ui.InfoStyle.Render(strings.Repeat("─", 96)))
		content.WriteString("\n")

		for i, row := range rows {
			content.WriteString(m.holdingLine(i, row))
			content.WriteString("\n")
		}
	}

	footer := m.dashboardFooter()

	return fmt.Sprintf("%s\n%s%s\n%s",
		title,
		m.notificationsSection(),
		ui.PanelStyle.Render(content.String()),
		footer)
}

func (m *AppModel) holdingLine(i int, row HoldingRow) string {
	marker := "  "
	if i == m.Selected {
		marker = ui.SelectedStyle.Render("▸ ")
	}

	asset := fmt.Sprintf("%-22s", fmt.Sprintf("%s %s", row.Symbol, row.Name))
	asset = strings.Replace(asset, row.Symbol, ui.SymbolBadge(row.Symbol, row.Color), 1)

	amount := fmt.Sprintf("%-12s", fmt.Sprintf("%.4f", row.Amount))

	loading := ui.LoadingStyle.Render(fmt.Sprintf("%-14s", "…"))
	if !row.HasQuote {
		// No quote yet this session; everything derived stays a placeholder.
		return marker + asset + amount +
			loading +
			ui.LoadingStyle.Render(fmt.Sprintf("%-10s", "…")) +
			loading +
			ui.LoadingStyle.Render("…")
	}

	price := ui.ValueStyle.Render(fmt.Sprintf("%-14s", ui.PriceText(row.Price)))
	change := styleSigned(fmt.Sprintf("%-10s", ui.ChangeText(row.Change24h)), row.Change24h >= 0)
	value := ui.ValueStyle.Render(fmt.Sprintf("%-14s", ui.USDText(row.Value)))

	pl := ui.NeutralStyle.Render("—")
	if row.HasPL {
		pl = styleSigned(ui.PLText(row.PL, row.PLPercent), row.PL >= 0)
	}

	return marker + asset + amount + price + change + value + pl
}

// styleSigned pads first, then colors, so ANSI codes never skew the column
// widths.
func styleSigned(text string, positive bool) string {
	if positive {
		return ui.PositiveStyle.Render(text)
	}
	return ui.NegativeStyle.Render(text)
}

func (m *AppModel) marketOverviewSection() string {
	var content strings.Builder
	content.WriteString("🌐 MARKET OVERVIEW\n")
	content.WriteString("══════════════════\n")

	if !m.MarketLoaded {
		content.WriteString(ui.LoadingStyle.Render("Loading market data…"))
		content.WriteString("\n")
		return content.String()
	}

	cards := BuildCards(MarketOverviewIDs, m.MarketQuotes)
	rendered := make([]string, 0, len(cards))
	for _, card := range cards {
		var c strings.Builder
		c.WriteString(fmt.Sprintf("%s %s  %s\n",
			ui.SymbolBadge(card.Symbol, card.Color),
			card.Name,
			styleSigned(ui.ChangeText(card.Change24h), card.Change24h >= 0)))
		c.WriteString(ui.ValueStyle.Render(ui.USDText(card.Price)))
		c.WriteString("\n")
		c.WriteString(ui.InfoStyle.Render("Mkt Cap: " + ui.MarketCapText(card.MarketCap)))
		rendered = append(rendered, ui.CardStyle.Render(c.String()))
	}

	content.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
	content.WriteString("\n")
	return content.String()
}

func (m *AppModel) notificationsSection() string {
	if len(m.Notifications) == 0 {
		return ""
	}

	var content strings.Builder
	for _, n := range m.Notifications {
		var line string
		switch n.Kind {
		case NoticeSuccess:
			line = ui.NoticeSuccessStyle.Render("✔ " + n.Message)
		case NoticeError:
			line = ui.NoticeErrorStyle.Render("✖ " + n.Message)
		default:
			line = ui.NoticeInfoStyle.Render("ℹ " + n.Message)
		}
		content.WriteString(line)
		content.WriteString("\n")
	}
	return content.String()
}

func (m *AppModel) dashboardFooter() string {
	refresh := "'r'/F5 refresh"
	if m.Refreshing {
		refresh = ui.LoadingStyle.Render("⟳ Refreshing…")
	}
	return ui.InfoStyle.Render(fmt.Sprintf(
		"'a' add • 'd' remove • %s • 'c' copy summary • 'q' quit • Auto-refresh every %.0fs",
		refresh, m.RefreshInterval.Seconds()))
}

// addAssetView renders the three-step add form.
func (m *AppModel) addAssetView() string {
	title := ui.HeaderStyle.Render("➕ ADD CRYPTOCURRENCY")

	var content strings.Builder

	switch m.AddForm.Step {
	case AddStepAsset:
		content.WriteString("Select a cryptocurrency:\n\n")
		for i, id := range portfolio.AssetIDs {
			meta := portfolio.MetaFor(id)
			line := fmt.Sprintf("%s — %s", meta.Symbol, meta.Name)
			if i == m.AddForm.Cursor {
				content.WriteString(ui.SelectedStyle.Render("▸ " + line))
			} else {
				content.WriteString(ui.UnselectedStyle.Render("  " + line))
			}
			content.WriteString("\n")
		}

	case AddStepAmount:
		meta := portfolio.MetaFor(m.AddForm.AssetID)
		content.WriteString(fmt.Sprintf("Asset: %s %s\n\n", ui.SymbolBadge(meta.Symbol, meta.Color), meta.Name))
		content.WriteString("Amount:\n")
		content.WriteString(ui.InputStyle.Render(cursorInput(m.AddForm.Amount)))
		content.WriteString("\n")

	case AddStepBuyPrice:
		meta := portfolio.MetaFor(m.AddForm.AssetID)
		content.WriteString(fmt.Sprintf("Asset:  %s %s\n", ui.SymbolBadge(meta.Symbol, meta.Color), meta.Name))
		content.WriteString(fmt.Sprintf("Amount: %s\n\n", m.AddForm.Amount))
		content.WriteString("Buy price in USD (optional, Enter to skip):\n")
		content.WriteString(ui.InputStyle.Render(cursorInput(m.AddForm.BuyPrice)))
		content.WriteString("\n")
	}

	footer := ui.InfoStyle.Render("Enter to continue • Backspace to go back • Esc to cancel")

	return fmt.Sprintf("%s\n%s%s\n%s",
		title,
		m.notificationsSection(),
		ui.PanelStyle.Render(content.String()),
		footer)
}

func cursorInput(value string) string {
	return value + "│"
}

// confirmRemoveView renders the removal confirmation prompt.
func (m *AppModel) confirmRemoveView() string {
	title := ui.HeaderStyle.Render("🗑  REMOVE ASSET")

	meta := portfolio.MetaFor(m.RemoveTarget)
	var content strings.Builder
	content.WriteString(fmt.Sprintf(
		"Are you sure you want to remove %s (%s) from your portfolio?\n\n",
		meta.Name, meta.Symbol))
	content.WriteString(ui.NegativeStyle.Render("This cannot be undone."))
	content.WriteString("\n")

	footer := ui.InfoStyle.Render("'y' to remove • 'n' or Esc to cancel")

	return fmt.Sprintf("%s\n%s%s\n%s",
		title,
		m.notificationsSection(),
		ui.PanelStyle.Render(content.String()),
		footer)
}
