package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vanderheijden86/taskdeck/internal/api"
	"github.com/vanderheijden86/taskdeck/pkg/config"
	"github.com/vanderheijden86/taskdeck/pkg/store"
	"github.com/vanderheijden86/taskdeck/pkg/ui"
	"github.com/vanderheijden86/taskdeck/pkg/version"
)

func main() {
	serverURL := flag.String("server", "", "Task server base URL (overrides config)")
	help := flag.Bool("help", false, "Show help")
	versionFlag := flag.Bool("version", false, "Show version")
	flag.Parse()

	if *help {
		fmt.Println("Usage: td [options]")
		fmt.Println("\nA TUI task board backed by a task server.")
		flag.PrintDefaults()
		os.Exit(0)
	}

	if *versionFlag {
		fmt.Printf("td %s\n", version.Version)
		os.Exit(0)
	}

	appCfg, cfgErr := config.Load()
	if cfgErr != nil {
		// Non-fatal: continue without config
		appCfg = config.DefaultConfig()
	}

	// CLI flag overrides config file, config overrides the default.
	baseURL := api.DefaultBaseURL
	if appCfg.ServerURL != "" {
		baseURL = appCfg.ServerURL
	}
	if *serverURL != "" {
		baseURL = *serverURL
	}

	client := api.New(baseURL)
	s := store.New(client)

	m := ui.NewModel(s, appCfg)
	if err := runTUIProgram(m); err != nil {
		fmt.Printf("Error running task board: %v\n", err)
		os.Exit(1)
	}
}

func runTUIProgram(m ui.Model) error {
	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithoutSignalHandler(),
	)

	runDone := make(chan struct{})
	defer close(runDone)

	// Graceful shutdown on SIGINT/SIGTERM.
	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-runDone:
			return
		case <-sigCh:
		}

		p.Quit()

		select {
		case <-runDone:
			return
		case <-sigCh:
		case <-time.After(5 * time.Second):
		}

		p.Kill()
	}()

	// Optional auto-quit for automated tests: set TD_TUI_AUTOCLOSE_MS.
	if v := os.Getenv("TD_TUI_AUTOCLOSE_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			go func() {
				timer := time.NewTimer(time.Duration(ms) * time.Millisecond)
				defer timer.Stop()

				select {
				case <-runDone:
					return
				case <-timer.C:
				}

				p.Quit()

				select {
				case <-runDone:
					return
				case <-time.After(2 * time.Second):
				}

				p.Kill()
			}()
		}
	}

	_, err := p.Run()
	if err != nil && (errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, tea.ErrInterrupted)) {
		return nil
	}
	return err
}
