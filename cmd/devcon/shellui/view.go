package shellui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	inputStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	outputStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "starting devcon..."
	}
	return m.viewport.View() + "\n" + m.textinput.View()
}

// refreshViewport re-renders the transcript into the viewport and scrolls to
// the bottom.
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderTranscript())
	m.viewport.GotoBottom()
}

func (m *Model) renderTranscript() string {
	var b strings.Builder
	for _, e := range m.transcript {
		switch e.kind {
		case entryInput:
			b.WriteString(inputStyle.Render(e.text))
		case entryError:
			b.WriteString(errorStyle.Render(e.text))
		case entryMarkdown:
			b.WriteString(m.renderMarkdown(e.text))
		default:
			b.WriteString(outputStyle.Render(e.text))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// renderMarkdown renders through glamour, falling back to the raw text when
// the renderer is unavailable (e.g. no TTY in tests).
func (m *Model) renderMarkdown(md string) string {
	if m.renderer == nil {
		return md
	}
	out, err := m.renderer.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}
