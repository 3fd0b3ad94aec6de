package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"pdfgrip/internal/config"
	"pdfgrip/internal/document"
	"pdfgrip/internal/eventbus"
	"pdfgrip/internal/render"
	"pdfgrip/internal/ui"
)

func main() {
	// Parse command line arguments
	var initialPage int
	flag.IntVar(&initialPage, "page", 1, "Page to open the document at")
	flag.IntVar(&initialPage, "p", 1, "Page to open the document at (shorthand)")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Println("Usage: pdfgrip [-p page] <file-or-url>")
		os.Exit(1)
	}
	ref := flag.Arg(0)

	// Set up logging
	logFile, err := os.OpenFile("pdfgrip.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Create event bus
	bus := eventbus.New()

	// Load configuration
	configSvc := config.NewConfigServiceWithBus(bus)
	cfg, err := configSvc.Load()
	if err != nil {
		log.Printf("Error loading config: %v", err)
		cfg = config.DefaultConfig()
	}

	// Initialize services
	docSvc := document.NewService(bus)
	pageRenderer := render.NewRenderer()

	// Create UI model
	uiModel := ui.NewModel(bus, cfg, configSvc, docSvc, pageRenderer, ref, initialPage)

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetProgram(p)

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		p.Quit()
	}()

	// Set up event forwarding to UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Println("Event channel full, dropping event")
		}
	}
	bus.Subscribe(eventbus.EventWarning, forward)
	bus.Subscribe(eventbus.EventLoadFailed, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.LoadFailedEvent); ok {
			log.Printf("Load failed for %s: %s", event.Ref, event.Message)
		}
		forward(e)
	})
	bus.Subscribe(eventbus.EventDocumentLoaded, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.DocumentLoadedEvent); ok {
			log.Printf("Loaded %s (%d pages)", event.Info.Ref, event.Info.PageCount)
		}
	})
	bus.Subscribe(eventbus.EventPageChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.PageChangedEvent); ok {
			log.Printf("Page changed: %d -> %d", event.OldPage, event.NewPage)
		}
	})

	// Start forwarding events to UI in background
	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	// Run the UI
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}

	// Cleanup
	close(eventChan)
}
