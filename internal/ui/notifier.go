package ui

import (
	"fmt"
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/hiit/internal/domain"
	"github.com/renato0307/hiit/internal/ports"
)

// ProgramNotifier forwards presentation updates to a running bubbletea program
type ProgramNotifier struct {
	mu      sync.Mutex
	program *tea.Program
}

// Verify interface compliance at compile time
var _ ports.Notifier = (*ProgramNotifier)(nil)

// Attach sets the program to notify. Updates before Attach are dropped.
func (n *ProgramNotifier) Attach(p *tea.Program) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.program = p
}

func (n *ProgramNotifier) Notify(update domain.PresentationUpdate) {
	n.mu.Lock()
	p := n.program
	n.mu.Unlock()
	if p != nil {
		p.Send(PresentationMsg(update))
	}
}

// LineNotifier prints each update on its own line, for headless runs
type LineNotifier struct {
	mu  sync.Mutex
	out io.Writer
}

// Verify interface compliance at compile time
var _ ports.Notifier = (*LineNotifier)(nil)

// NewLineNotifier creates a notifier writing to out
func NewLineNotifier(out io.Writer) *LineNotifier {
	return &LineNotifier{out: out}
}

func (n *LineNotifier) Notify(update domain.PresentationUpdate) {
	n.mu.Lock()
	defer n.mu.Unlock()
	fmt.Fprintln(n.out, update.Text)
}
