package main

import (
	"context"
	"os"
	"strings"

	"med-schedule/internal/adapters/remote"
	"med-schedule/internal/config"
	"med-schedule/internal/domain/medicines"
	"med-schedule/internal/platform/httpclient"
	"med-schedule/internal/platform/logger"
	"med-schedule/internal/router"
	"med-schedule/internal/seed"
	"med-schedule/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	// la TUI ocupa stdout: solo errores y en JSON
	log := logger.New(logger.Options{Level: logger.Error, Format: logger.FormatJSON, App: "med-schedule-tui"})
	defer func() { _ = log.Sync() }()

	cfg, err := config.Load(os.Getenv("MEDSCHED_CONFIG"))
	if err != nil {
		log.Error("config error", map[string]any{"err": err})
		os.Exit(1)
	}

	backend, err := newBackend(cfg, log)
	if err != nil {
		log.Error("backend error", map[string]any{"err": err})
		os.Exit(1)
	}

	source := medicines.SourceCamera
	if v := strings.TrimSpace(os.Getenv("MEDSCHED_CAPTURE_SOURCE")); v != "" {
		source = v
	}

	model := tui.New(backend, tui.Options{
		Title:         "MedSchedule",
		CaptureSource: source,
		Timeout:       cfg.API.Timeout,
	})

	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		log.Error("tui error", map[string]any{"err": err})
		os.Exit(1)
	}
}

// newBackend usa la API si api.url está configurada; si no, un store en
// memoria propio sembrado igual que cmd/api.
func newBackend(cfg *config.Config, log logger.Logger) (tui.Backend, error) {
	if u := strings.TrimSpace(cfg.API.URL); u != "" {
		hc, err := httpclient.New(u, cfg.API.Timeout)
		if err != nil {
			return nil, err
		}
		return remote.New(hc), nil
	}

	svc, _ := router.NewServices(nil)
	if cfg.Seed.Enabled {
		records, err := seed.FromFileOrDefaults(cfg.Seed.File)
		if err != nil {
			return nil, err
		}
		if _, err := seed.Load(context.Background(), svc, records, log); err != nil {
			return nil, err
		}
	}
	return svc, nil
}
