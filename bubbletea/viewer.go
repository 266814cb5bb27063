package bubbletea

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/unidiff"
)

// Compile-time interface verification.
var _ unidiff.Viewer = (*Viewer)(nil)

// Viewer displays diffs in an interactive terminal pager.
type Viewer struct {
	opts []Option
}

// NewViewer creates a Viewer; opts are applied to each viewing session.
func NewViewer(opts ...Option) *Viewer {
	return &Viewer{opts: opts}
}

// View runs the pager and blocks until the user quits or ctx is cancelled.
func (v *Viewer) View(ctx context.Context, diff *unidiff.Diff) error {
	p := tea.NewProgram(NewModel(diff, v.opts...), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
