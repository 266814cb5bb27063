// Package bubbletea provides an interactive terminal viewer for parsed diffs.
package bubbletea

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/unidiff"
)

// Model is the bubbletea model for the diff pager.
type Model struct {
	diff      *unidiff.Diff
	renderer  *lipgloss.Renderer
	tokenizer unidiff.Tokenizer
	detector  unidiff.LanguageDetector

	viewport viewport.Model
	ready    bool

	content   string
	positions []int // first content line of each delta
	current   int   // delta most recently jumped to
}

// Option configures a Model.
type Option func(*Model)

// WithTokenizer enables syntax highlighting of context lines.
func WithTokenizer(t unidiff.Tokenizer) Option {
	return func(m *Model) { m.tokenizer = t }
}

// WithLanguageDetector sets the detector used to pick a language per delta.
func WithLanguageDetector(d unidiff.LanguageDetector) Option {
	return func(m *Model) { m.detector = d }
}

// WithRenderer sets the lipgloss renderer. Tests use this to pin the color
// profile without touching global state.
func WithRenderer(r *lipgloss.Renderer) Option {
	return func(m *Model) { m.renderer = r }
}

// NewModel creates a pager model for diff. Content and delta positions are
// computed eagerly since they do not depend on the terminal size.
func NewModel(diff *unidiff.Diff, opts ...Option) Model {
	m := Model{diff: diff, renderer: lipgloss.DefaultRenderer()}
	for _, opt := range opts {
		opt(&m)
	}
	m.content, m.positions = m.render()
	return m
}

// DeltaPositions returns the content line each delta starts on.
func (m Model) DeltaPositions() []int {
	return m.positions
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-1)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 1
		}
		m.viewport.SetContent(m.content)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "n":
			m.jump(1)
			return m, nil
		case "p":
			m.jump(-1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}
	return m.viewport.View() + "\n" + m.statusLine()
}

// jump scrolls the viewport to the next or previous delta.
func (m *Model) jump(dir int) {
	next := m.current + dir
	if next < 0 || next >= len(m.positions) {
		return
	}
	m.current = next
	m.viewport.SetYOffset(m.positions[next])
}

func (m Model) statusLine() string {
	style := m.renderer.NewStyle().Faint(true)
	return style.Render(fmt.Sprintf("%d files · n/p files · q quit", len(m.diff.Deltas)))
}

// render produces the styled pager content and the starting line of each
// delta within it.
func (m Model) render() (string, []int) {
	headerStyle := m.renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
	hunkStyle := m.renderer.NewStyle().Foreground(lipgloss.Color("6"))
	addStyle := m.renderer.NewStyle().Foreground(lipgloss.Color("2"))
	delStyle := m.renderer.NewStyle().Foreground(lipgloss.Color("1"))

	var lines []string
	var positions []int
	for _, delta := range m.diff.Deltas {
		positions = append(positions, len(lines))
		language := m.language(delta)
		for _, line := range splitLines(delta.FileHeader) {
			lines = append(lines, headerStyle.Render(expandTabs(line)))
		}
		for _, h := range delta.Hunks {
			lines = append(lines, hunkStyle.Render(expandTabs(h.Header)))
			for _, line := range splitLines(h.Content) {
				lines = append(lines, m.renderBodyLine(line, language, addStyle, delStyle))
			}
		}
	}
	return strings.Join(lines, "\n"), positions
}

// renderBodyLine styles one hunk body line. Added and removed lines get
// marker colors; context lines get syntax highlighting when a tokenizer and
// language are available.
func (m Model) renderBodyLine(line, language string, addStyle, delStyle lipgloss.Style) string {
	if line == "" {
		return ""
	}
	expanded := expandTabs(line)
	switch line[0] {
	case '+':
		return addStyle.Render(expanded)
	case '-':
		return delStyle.Render(expanded)
	}
	if m.tokenizer == nil || language == "" {
		return expanded
	}

	// Keep the marker column unstyled so alignment is preserved.
	marker, rest := expanded[:1], expanded[1:]
	tokens := m.tokenizer.Tokenize(language, rest)
	if tokens == nil {
		return expanded
	}
	var b strings.Builder
	b.WriteString(marker)
	for _, tok := range tokens {
		// Some lexers normalize a trailing newline into the last token.
		text := strings.TrimSuffix(tok.Text, "\n")
		if text == "" {
			continue
		}
		b.WriteString(m.styleFor(tok.Style).Render(text))
	}
	return b.String()
}

func (m Model) styleFor(s unidiff.Style) lipgloss.Style {
	style := m.renderer.NewStyle()
	if s.Foreground != "" {
		style = style.Foreground(lipgloss.Color(s.Foreground))
	}
	if s.Bold {
		style = style.Bold(true)
	}
	if s.Italic {
		style = style.Italic(true)
	}
	return style
}

// language picks the language for a delta from its new path, falling back to
// the old path for deletions.
func (m Model) language(delta unidiff.Delta) string {
	if m.detector == nil {
		return ""
	}
	path := strings.TrimPrefix(delta.NewFile, "b/")
	if path == "/dev/null" {
		path = strings.TrimPrefix(delta.OldFile, "a/")
	}
	return m.detector.DetectFromPath(path)
}

// splitLines splits newline-terminated text into lines without terminators.
func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
