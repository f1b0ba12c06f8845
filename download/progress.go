package download

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/vidkit/vidkit/color"
	"github.com/vidkit/vidkit/icon"
	"github.com/vidkit/vidkit/style"
	"github.com/vidkit/vidkit/util"
	"github.com/vidkit/vidkit/video"
	"golang.org/x/term"
)

// Interactive reports whether stdout is a terminal the progress bar can draw on.
func Interactive() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

type state struct {
	mu      sync.RWMutex
	written int64
	total   int64
	started time.Time
	done    bool
	path    string
	err     error
	closed  chan struct{}
}

func (s *state) update(written, total int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.written, s.total = written, total
}

func (s *state) finish(path string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.path, s.err, s.done = path, err, true
	close(s.closed)
}

func (s *state) snapshot() (written, total int64, done bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.written, s.total, s.done
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

type model struct {
	name     string
	bar      progress.Model
	state    *state
	cancel   context.CancelFunc
	quitting bool
}

func (m model) Init() tea.Cmd {
	return tick()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.cancel()
			m.quitting = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.bar.Width = util.Min(msg.Width-4, 60)
		return m, nil
	case progress.FrameMsg:
		bar, cmd := m.bar.Update(msg)
		m.bar = bar.(progress.Model)
		return m, cmd
	case tickMsg:
		written, total, done := m.state.snapshot()
		if done {
			return m, tea.Quit
		}

		cmds := []tea.Cmd{tick()}
		if total > 0 {
			cmds = append(cmds, m.bar.SetPercent(float64(written)/float64(total)))
		}
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

func (m model) View() string {
	written, total, done := m.state.snapshot()
	if done || m.quitting {
		return ""
	}

	elapsed := time.Since(m.state.started).Seconds()
	var speed float64
	if elapsed > 0 {
		speed = float64(written) / elapsed
	}

	stats := formatBytes(written)
	if total > 0 {
		stats = fmt.Sprintf("%s / %s", stats, formatBytes(total))
	}

	return fmt.Sprintf(
		"\n  %s %s\n\n  %s\n\n  %s  %s\n\n%s\n",
		icon.Get(icon.Download),
		style.Fg(color.Purple)(m.name),
		m.bar.View(),
		stats,
		style.Faint(formatBytes(int64(speed))+"/s"),
		style.Faint("  Press q to cancel"),
	)
}

// SaveWithProgress is Save with a progress bar drawn on the terminal.
// It falls back to plain Save when stdout is not a terminal.
func SaveWithProgress(ctx context.Context, h *video.Handle, opts Options) (string, error) {
	if !Interactive() {
		return Save(ctx, h, opts)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	st := &state{started: time.Now(), total: -1, closed: make(chan struct{})}
	report := opts.Progress
	opts.Progress = func(written, total int64) {
		st.update(written, total)
		if report != nil {
			report(written, total)
		}
	}

	go func() {
		st.finish(Save(ctx, h, opts))
	}()

	m := model{
		name:   h.FullName(),
		bar:    progress.New(progress.WithDefaultGradient(), progress.WithWidth(50)),
		state:  st,
		cancel: cancel,
	}

	if _, err := tea.NewProgram(m).Run(); err != nil {
		return "", err
	}

	// Save may still be unwinding a cancellation triggered from the UI
	<-st.closed

	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.path, st.err
}

func formatBytes(b int64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}

	div, exp := int64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(b)/float64(div), "KMGTPE"[exp])
}
