package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/gst2tally/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/gst2tally/internal/config"
	"github.com/MrJamesThe3rd/gst2tally/internal/convert"
)

type model struct {
	convertService *convert.Service
	outputDir      string

	currentView View
	size        tea.WindowSizeMsg

	convertView view.ConvertModel
}

type View int

const (
	ViewMenu    View = 0
	ViewConvert View = 1
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	svc := convert.NewService(cfg.Convert.DefaultCompany)

	return model{
		convertService: svc,
		outputDir:      cfg.Convert.OutputDir,
		currentView:    ViewMenu,
		convertView:    view.NewConvertModel(svc, cfg.Convert.OutputDir),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.size = msg
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.currentView == ViewMenu {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewConvert
				m.convertView = view.NewConvertModel(m.convertService, m.outputDir)

				if m.size.Width > 0 {
					resized, _ := m.convertView.Update(m.size)
					m.convertView = resized.(view.ConvertModel)
				}

				return m, m.convertView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	if m.currentView == ViewConvert {
		var newModel tea.Model
		newModel, cmd = m.convertView.Update(msg)
		m.convertView = newModel.(view.ConvertModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"GSTR-2B to Tally\n\n" +
				"1. Convert GSTR-2B filing\n\n" +
				"q. Quit",
		)
	case ViewConvert:
		title := lipgloss.NewStyle().Bold(true).Padding(0, 1).Render(m.convertView.Title())
		help := lipgloss.NewStyle().Faint(true).Padding(0, 1).Render(m.convertView.ShortHelp())

		return lipgloss.JoinVertical(lipgloss.Left, title, m.convertView.View(), help)
	}

	return "Unknown View"
}

func main() {
	// The terminal belongs to bubbletea; keep library logs out of it.
	slog.SetLogLoggerLevel(slog.LevelError)

	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
