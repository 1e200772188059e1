package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

func NewApp() *Model {
	ti := textinput.New()
	ti.Placeholder = "ask about your wardrobe..."
	ti.Focus()
	ti.CharLimit = 0
	ti.Prompt = "> "
	ti.PromptStyle = lipgloss.NewStyle().Foreground(colorLightGray)
	ti.TextStyle = lipgloss.NewStyle().Foreground(colorWhite)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorPink)

	renderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(76),
	)

	return &Model{
		input:           ti,
		spinner:         sp,
		glamourRenderer: renderer,
		client:          NewStylistClient(),
		history:         []MessageModel{},
	}
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "ctrl+l":
			m.history = []MessageModel{}
			m.transcript = ""
			m.viewport.SetContent("")
			return m, nil

		case "enter":
			query := strings.TrimSpace(m.input.Value())
			if query == "" || m.isFetching {
				return m, nil
			}

			m.isFetching = true
			m.input.SetValue("")
			m.appendTranscript(youStyle.Render("you") + "  " + query)

			cmd := m.client.ChatCmd(query, m.history)
			m.history = append(m.history, MessageModel{Role: "user", Content: query})

			return m, tea.Batch(cmd, m.spinner.Tick)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - 8

		viewportHeight := msg.Height - 12
		if viewportHeight < 5 {
			viewportHeight = 5
		}

		if !m.ready {
			m.viewport = viewport.New(msg.Width-4, viewportHeight)
			m.viewport.SetContent(m.transcript)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = viewportHeight
		}

	case ChatResponseMsg:
		m.isFetching = false
		m.history = append(m.history, MessageModel{Role: "assistant", Content: msg.reply})
		m.appendTranscript(m.renderReply(msg))
		m.input.Focus()
		return m, nil

	case ChatErrorMsg:
		m.isFetching = false
		m.appendTranscript(errorStyle.Render("error") + "  " + msg.err.Error())
		m.input.Focus()
		return m, nil

	case spinner.TickMsg:
		if m.isFetching {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}

		return m, nil
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(logo))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("  [Enter: Send] [Ctrl+L: Clear] [Ctrl+C: Quit]"))
	b.WriteString("\n\n")

	if m.ready {
		b.WriteString(m.viewport.View())
	}

	b.WriteString("\n")
	b.WriteString(inputBorderStyle.Width(max(20, m.width-4)).Render(m.input.View()))
	b.WriteString("\n")

	if m.isFetching {
		b.WriteString(statusStyle.Render(m.spinner.View() + " consulting your stylist..."))
	}

	return b.String()
}

// renders one stylist answer: the reply through glamour, then any outfits
// as a plain list
func (m *Model) renderReply(msg ChatResponseMsg) string {
	var b strings.Builder

	reply := msg.reply

	if m.glamourRenderer != nil {
		if rendered, err := m.glamourRenderer.Render(reply); err == nil {
			reply = strings.TrimSpace(rendered)
		}
	}

	b.WriteString(stylistStyle.Render("stylist") + "  " + reply)

	for _, outfit := range msg.outfits {
		b.WriteString("\n")
		b.WriteString(outfitStyle.Render(fmt.Sprintf("· %s (%s) - %d pieces",
			outfit.Name, outfit.Occasion, len(outfit.ItemIDs))))

		if outfit.Notes != "" {
			b.WriteString("\n")
			b.WriteString(outfitStyle.Render("  " + outfit.Notes))
		}
	}

	return b.String()
}

func (m *Model) appendTranscript(line string) {
	if m.transcript != "" {
		m.transcript += "\n\n"
	}

	m.transcript += line

	m.viewport.SetContent(m.transcript)
	m.viewport.GotoBottom()
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
