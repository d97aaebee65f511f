package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/docfusion/docfusion-tui/app"
	"github.com/docfusion/docfusion-tui/client"
	"github.com/docfusion/docfusion-tui/config"
	"github.com/docfusion/docfusion-tui/style"
)

var version = "dev"

func main() {
	urlFlag := flag.String("url", "", "Backend base URL (overrides config and DOCFUSION_URL)")
	noColor := flag.Bool("no-color", false, "Disable ANSI colors")
	showVersion := flag.Bool("version", false, "Show version and exit")
	flag.BoolVar(showVersion, "V", false, "Show version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("docfusion %s\n", version)
		os.Exit(0)
	}

	if *noColor {
		lipgloss.SetColorProfile(0)
	}

	profileDir := config.Dir()
	os.MkdirAll(profileDir, 0o755)
	cfg := config.Load(profileDir)

	baseURL := cfg.BackendURL
	if env := os.Getenv("DOCFUSION_URL"); env != "" {
		baseURL = env
	}
	if *urlFlag != "" {
		baseURL = *urlFlag
	}

	token := os.Getenv("DOCFUSION_TOKEN")
	tokenPath := config.TokenPath(profileDir)
	if token == "" {
		if data, err := os.ReadFile(tokenPath); err == nil {
			token = strings.TrimSpace(string(data))
		}
	}

	initLogging(profileDir)

	// The config theme wins; otherwise follow the terminal background.
	switch cfg.Theme {
	case "dark", "light":
		style.SetTheme(cfg.Theme)
	default:
		if lipgloss.HasDarkBackground() {
			style.SetTheme("dark")
		} else {
			style.SetTheme("light")
		}
	}

	c := client.New(baseURL)
	if token != "" {
		c.SetToken(token)
	}

	m := app.New(c, version, profileDir, tokenPath)

	opts := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}

	p := tea.NewProgram(m, opts...)

	go func() {
		p.Send(app.ProgramReady{Program: p})
	}()

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "docfusion: %v\n", err)
		os.Exit(1)
	}
}

// initLogging sends slog to a file under the profile dir. The terminal
// belongs to the TUI, so nothing is ever logged to stdout or stderr.
func initLogging(profileDir string) {
	var w io.Writer = io.Discard
	f, err := os.OpenFile(filepath.Join(profileDir, "docfusion.log"),
		os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err == nil {
		w = f
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})))
}
