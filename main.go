package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/askeland/termin/internal/appointment"
	"github.com/askeland/termin/internal/calendar"
	"github.com/askeland/termin/internal/config"
	"github.com/askeland/termin/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	// Parse command line flags
	var (
		configFile = flag.String("config", "", "Path to config file")
		dataFile   = flag.String("file", "", "Path to appointments file")
		listToday  = flag.Bool("list", false, "List today's appointments and exit")
		version    = flag.Bool("version", false, "Show version and exit")
	)
	flag.Parse()

	if *version {
		fmt.Println("Termin 0.1.0")
		return
	}

	// Load configuration
	var cfg *config.Config
	var err error
	if *configFile != "" {
		cfg, err = config.LoadConfigFile(*configFile)
	} else {
		cfg, err = config.LoadConfig()
	}
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *dataFile != "" {
		cfg.AppointmentsFile = *dataFile
	}

	// Open the appointment store
	store := appointment.Open(cfg.AppointmentsFile)

	// List mode
	if *listToday {
		listTodayAppointments(cfg, store)
		return
	}

	// Reload when the appointments file is edited externally
	watcher, err := appointment.NewFileWatcher(store)
	if err == nil {
		defer watcher.Close()
		if err := watcher.AddFile(cfg.AppointmentsFile); err != nil {
			log.Printf("Warning: cannot watch %s: %v", cfg.AppointmentsFile, err)
		}
	}

	mode, err := calendar.ParseViewMode(cfg.StartupView)
	if err != nil {
		mode = calendar.ViewMonth
	}
	nav := calendar.NewNavigator(time.Now(), mode)

	// Start TUI
	model := ui.NewModel(cfg, store, nav)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		log.Fatalf("Error running program: %v", err)
	}
}

func listTodayAppointments(cfg *config.Config, store *appointment.Store) {
	today := time.Now()
	appts := store.ForDate(today)

	fmt.Printf("Appointments for %s:\n", today.Format(cfg.DateFormat))
	if len(appts) == 0 {
		fmt.Println("No appointments found.")
		return
	}

	for _, a := range appts {
		fmt.Printf("  %s - %s  %s\n", a.StartTime, a.EndTime, a.Title)
		if a.Description != "" {
			fmt.Printf("    %s\n", a.Description)
		}
	}
}
