package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Sass-DEV/CryptoTrack/api"
	"github.com/Sass-DEV/CryptoTrack/config"
	"github.com/Sass-DEV/CryptoTrack/logging"
	"github.com/Sass-DEV/CryptoTrack/models"
	"github.com/Sass-DEV/CryptoTrack/portfolio"
)

func main() {
	cfg := config.Load()

	logger := logging.NewFileLogger(cfg.LogLevel, cfg.LogFile())
	logger.Info().Msg("starting cryptotrack")

	store := portfolio.NewStore(cfg.PortfolioFile())
	if err := store.Load(); err != nil {
		// A corrupt portfolio file starts empty instead of failing startup.
		logger.Warn().Err(err).Msg("portfolio file unreadable, starting with empty portfolio")
	}

	client := api.NewClient(cfg.APIBaseURL)

	model := models.NewAppModel(cfg, store, client, logger)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v", err)
		os.Exit(1)
	}
}
