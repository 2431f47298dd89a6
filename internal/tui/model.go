// Package tui is the interactive torrent listing. It drives the render
// surface for layout and navigation and the torrent service for daemon
// calls.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/JeremPFT/transmission/internal/render"
	"github.com/JeremPFT/transmission/internal/torrent"
	"github.com/JeremPFT/transmission/internal/types"
)

const requestTimeout = 30 * time.Second

type styles struct {
	header   lipgloss.Style
	selected lipgloss.Style
	status   lipgloss.Style
	errLine  lipgloss.Style
	help     lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		header:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		selected: lipgloss.NewStyle().Reverse(true),
		status:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		errLine:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		help:     lipgloss.NewStyle().Faint(true),
	}
}

type refreshDoneMsg struct {
	torrents []types.Torrent
	err      error
}

type actionDoneMsg struct {
	status string
	err    error
}

type model struct {
	service *torrent.Service
	logger  *zap.Logger

	surface  *render.Surface
	torrents []types.Torrent

	adding bool
	input  textinput.Model

	refreshing bool
	statusLine string
	styles     styles
}

func newModel(service *torrent.Service, logger *zap.Logger) model {
	if logger == nil {
		logger = zap.NewNop()
	}
	input := textinput.New()
	input.Placeholder = "magnet link, URL, or file path"
	input.CharLimit = 0
	input.Width = 60

	return model{
		service:    service,
		logger:     logger,
		surface:    render.New(),
		input:      input,
		statusLine: "loading…",
		styles:     defaultStyles(),
	}
}

func (m model) Init() tea.Cmd {
	return m.refreshCmd()
}

func (m model) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		torrents, err := m.service.List(ctx)
		return refreshDoneMsg{torrents: torrents, err: err}
	}
}

func (m model) toggleCmd(t types.Torrent) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		if err := m.service.Toggle(ctx, t); err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{status: fmt.Sprintf("toggled %q", t.Name)}
	}
}

func (m model) addCmd(uri string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		added, err := m.service.Add(ctx, uri)
		if err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{status: fmt.Sprintf("added %q", added.Name)}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshDoneMsg:
		m.refreshing = false
		if msg.err != nil {
			m.logger.Warn("refresh failed", zap.Error(msg.err))
			m.statusLine = m.styles.errLine.Render(msg.err.Error())
			return m, nil
		}
		m.torrents = msg.torrents
		m.surface.Refresh(msg.torrents)
		m.statusLine = fmt.Sprintf("%d torrents", len(msg.torrents))
		return m, nil

	case actionDoneMsg:
		if msg.err != nil {
			m.logger.Warn("action failed", zap.Error(msg.err))
			m.statusLine = m.styles.errLine.Render(msg.err.Error())
			return m, nil
		}
		m.statusLine = msg.status
		return m, m.refreshCmd()

	case tea.KeyMsg:
		if m.adding {
			return m.updateAddPrompt(msg)
		}
		return m.updateListing(msg)
	}

	return m, nil
}

func (m model) updateAddPrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.adding = false
		m.input.Reset()
		m.statusLine = "add cancelled"
		return m, nil
	case "enter":
		uri := strings.TrimSpace(m.input.Value())
		m.adding = false
		m.input.Reset()
		if uri == "" {
			m.statusLine = "nothing to add"
			return m, nil
		}
		m.statusLine = "adding…"
		return m, m.addCmd(uri)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) updateListing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "n", "j", "down", "tab":
		if pos, ok := m.surface.Forward(m.surface.Cursor()); ok {
			m.surface.SetCursor(pos)
		}
		return m, nil

	case "p", "k", "up", "shift+tab":
		if pos, ok := m.surface.Backward(m.surface.Cursor()); ok {
			m.surface.SetCursor(pos)
		}
		return m, nil

	case "r":
		if m.refreshing {
			return m, nil
		}
		m.refreshing = true
		m.statusLine = "refreshing…"
		return m, m.refreshCmd()

	case "a":
		m.adding = true
		m.input.Focus()
		return m, textinput.Blink

	case "enter", " ":
		if t, ok := m.selected(); ok {
			m.statusLine = "toggling…"
			return m, m.toggleCmd(t)
		}
		return m, nil

	case "y":
		if t, ok := m.selected(); ok {
			if err := clipboard.WriteAll(t.Name); err != nil {
				m.statusLine = m.styles.errLine.Render(err.Error())
			} else {
				m.statusLine = fmt.Sprintf("copied %q", t.Name)
			}
		}
		return m, nil
	}

	return m, nil
}

// selected resolves the torrent under the cursor through the span
// annotations.
func (m model) selected() (types.Torrent, bool) {
	id, ok := m.surface.ItemAt(m.surface.Cursor())
	if !ok {
		return types.Torrent{}, false
	}
	for _, t := range m.torrents {
		if t.ID == id {
			return t, true
		}
	}
	return types.Torrent{}, false
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(m.styles.header.Render("Transmission"))
	b.WriteString("\n\n")
	b.WriteString(m.renderSurface())
	b.WriteString("\n")

	if m.adding {
		b.WriteString("add: " + m.input.View())
		b.WriteString("\n")
	} else {
		b.WriteString(m.styles.status.Render(m.statusLine))
		b.WriteString("\n")
		b.WriteString(m.styles.help.Render("n/p move · enter toggle · a add · r refresh · y yank · q quit"))
		b.WriteString("\n")
	}
	return b.String()
}

// renderSurface styles the surface text, highlighting the link span
// under the cursor. Spans carry byte offsets into the plain text, so
// styling is applied around them rather than baked in.
func (m model) renderSurface() string {
	text := m.surface.Text()
	if text == "" {
		return m.styles.help.Render("no torrents")
	}

	cursor := m.surface.Cursor()
	var b strings.Builder
	last := 0
	for _, sp := range m.surface.Spans() {
		if sp.Link && cursor >= sp.Start && cursor < sp.End {
			b.WriteString(text[last:sp.Start])
			b.WriteString(m.styles.selected.Render(text[sp.Start:sp.End]))
			last = sp.End
		}
	}
	b.WriteString(text[last:])
	return b.String()
}

// Run starts the interactive listing and blocks until it exits.
func Run(service *torrent.Service, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	program := tea.NewProgram(newModel(service, logger))
	_, err := program.Run()
	return err
}
