package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"galleria/internal/catalog"
	"galleria/internal/config"
	"galleria/internal/eventbus"
	"galleria/internal/ui"
)

func main() {
	var apiURL string
	var rows int
	var configPath string
	flag.StringVar(&apiURL, "api", "", "Base URL of the artwork listing API")
	flag.IntVar(&rows, "rows", 0, "Rows per page")
	flag.StringVar(&configPath, "config", "", "Path to the config file")
	flag.Parse()

	// Set up logging. The terminal belongs to the TUI, so logs go to a
	// file next to the working directory.
	logFile, err := os.OpenFile("galleria.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Create event bus
	bus := eventbus.New()

	// Load configuration
	configSvc := config.NewServiceWithBus(bus)
	cfg := loadConfig(configSvc, configPath)

	// Flags override file values
	if apiURL != "" {
		cfg.API.BaseURL = apiURL
	}
	if rows >= config.MinPageSize && rows <= config.MaxPageSize {
		cfg.API.PageSize = rows
	} else if rows != 0 {
		fmt.Printf("rows must be between %d and %d\n", config.MinPageSize, config.MaxPageSize)
		os.Exit(1)
	}

	// Save page size changes made at runtime
	bus.Subscribe(eventbus.EventConfigChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ConfigChangedEvent); ok {
			cfg.API.PageSize = event.PageSize
			if err := saveConfig(configSvc, cfg, configPath); err != nil {
				log.Printf("Failed to save config: %v", err)
			}
		}
	})

	// Keep an activity trail in the log file
	bus.Subscribe(eventbus.EventPageLoaded, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.PageLoadedEvent); ok {
			log.Printf("Loaded page %d (%d records, total %d)", event.Page, event.Count, event.Total)
		}
	})
	bus.Subscribe(eventbus.EventPageLoadFailed, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.PageLoadFailedEvent); ok {
			log.Printf("Page %d failed: %v", event.Page, event.Err)
		}
	})
	bus.Subscribe(eventbus.EventBulkStarted, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.BulkStartedEvent); ok {
			log.Printf("Bulk selection started: target %d, needed %d", event.Target, event.Needed)
		}
	})
	bus.Subscribe(eventbus.EventBulkCompleted, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.BulkCompletedEvent); ok {
			log.Printf("Bulk selection completed: %d of %d selected", event.Selected, event.Target)
		}
	})
	bus.Subscribe(eventbus.EventBulkFailed, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.BulkFailedEvent); ok {
			log.Printf("Bulk selection failed at %d of %d: %v", event.Selected, event.Target, event.Err)
		}
	})

	// Catalog client
	fetcher := catalog.NewClient(cfg.API.BaseURL, time.Duration(cfg.API.TimeoutSeconds)*time.Second)

	// Create UI model and program
	uiModel := ui.NewModel(cfg, fetcher, bus)
	p := tea.NewProgram(uiModel, tea.WithAltScreen())

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		p.Quit()
	}()

	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig loads from the override path when given, otherwise from
// the default location, falling back to defaults on a missing file.
func loadConfig(svc config.Service, path string) *config.Config {
	if path == "" {
		cfg, err := svc.Load()
		if err != nil {
			log.Printf("Failed to load config, using defaults: %v", err)
			return config.Default()
		}
		return cfg
	}

	cfg, err := svc.LoadFromPath(path)
	if err != nil {
		log.Printf("Failed to load config %s, using defaults: %v", path, err)
		return config.Default()
	}
	return cfg
}

// saveConfig writes back to wherever the config was loaded from.
func saveConfig(svc config.Service, cfg *config.Config, path string) error {
	if path == "" {
		return svc.Save(cfg)
	}
	return svc.SaveToPath(cfg, path)
}
