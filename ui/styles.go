package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Main styles
	PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#874BFD")).
		Padding(1, 2).
		MarginTop(1)

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444444")).
		Padding(0, 2).
		MarginRight(1)

	HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FAFAFA")).
		Background(lipgloss.Color("#7D56F4")).
		Padding(0, 1)

	InfoStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888888"))

	SelectedStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#EE6FF8")).
		Bold(true)

	UnselectedStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FAFAFA"))

	// Data display styles
	ValueStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FAFAFA"))

	PositiveStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#04B575")).
		Bold(true)

	NegativeStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF5F87")).
		Bold(true)

	NeutralStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888888"))

	LoadingStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFA500"))

	InputStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FAFAFA")).
		Background(lipgloss.Color("#874BFD")).
		Padding(0, 1)

	TableHeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#7D56F4"))

	// Notification styles by kind
	NoticeSuccessStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FAFAFA")).
		Background(lipgloss.Color("#04B575")).
		Padding(0, 1)

	NoticeErrorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FAFAFA")).
		Background(lipgloss.Color("#FF5F87")).
		Padding(0, 1)

	NoticeInfoStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FAFAFA")).
		Background(lipgloss.Color("#5F87FF")).
		Padding(0, 1)
)

// SymbolBadge renders an asset symbol in its accent color.
func SymbolBadge(symbol, color string) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(color)).
		Render(symbol)
}

// PriceText formats a USD price with 2 to 6 decimal places depending on
// magnitude, so small-cap coins stay readable.
func PriceText(value float64) string {
	if value < 1.0 {
		return fmt.Sprintf("$%.6f", value)
	} else if value < 10.0 {
		return fmt.Sprintf("$%.4f", value)
	}
	return fmt.Sprintf("$%.2f", value)
}

// USDText formats a USD amount with two decimal places.
func USDText(value float64) string {
	return fmt.Sprintf("$%.2f", value)
}

// ChangeText formats a 24h percent change as an arrow plus the absolute
// magnitude, e.g. "▲ 2.35%".
func ChangeText(pct float64) string {
	if pct >= 0 {
		return fmt.Sprintf("▲ %.2f%%", pct)
	}
	return fmt.Sprintf("▼ %.2f%%", -pct)
}

// PLText formats a profit/loss amount and percentage with explicit signs,
// e.g. "+$40.00 (+20.00%)".
func PLText(pl, pct float64) string {
	if pl >= 0 {
		return fmt.Sprintf("+$%.2f (+%.2f%%)", pl, pct)
	}
	return fmt.Sprintf("-$%.2f (-%.2f%%)", -pl, -pct)
}

// MarketCapText formats a market cap in billions, e.g. "$846.21B".
func MarketCapText(value float64) string {
	return fmt.Sprintf("$%.2fB", value/1e9)
}
