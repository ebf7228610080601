package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/hanoi/internal/hanoi"
	"github.com/san-kum/hanoi/internal/player"
)

// MoveMsg is sent into the program for every applied move.
type MoveMsg struct {
	Move     hanoi.Move
	Snapshot [3][]int
	Count    int
}

// FinishedMsg is sent when a run reaches a terminal status.
type FinishedMsg struct {
	Status player.Status
	Err    error
}

// Model renders one puzzle board and forwards key presses to the player.
// The player paces itself on real timers; the view only reacts to MoveMsg
// and FinishedMsg.
type Model struct {
	pl    *player.Player
	disks int

	snapshot   [3][]int
	moveCount  int
	totalMoves int
	lastMove   *hanoi.Move
	finished   *player.Status
	finishErr  error

	showHelp      bool
	width, height int
}

// NewModel returns a view bound to the player's current board.
func NewModel(pl *player.Player, disks int) Model {
	m := Model{pl: pl, disks: disks, width: 80, height: 24}
	m.syncBoard()
	return m
}

func (m *Model) syncBoard() {
	m.snapshot = m.pl.Snapshot()
	m.moveCount = m.pl.MoveCount()
	m.totalMoves = m.pl.TotalMoves()
	if d := m.pl.Disks(); d > 0 {
		m.disks = d
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case MoveMsg:
		m.snapshot = msg.Snapshot
		m.moveCount = msg.Count
		m.totalMoves = m.pl.TotalMoves()
		mv := msg.Move
		m.lastMove = &mv
		m.finished = nil
	case FinishedMsg:
		st := msg.Status
		m.finished = &st
		m.finishErr = msg.Err
		if st != player.StatusSolved {
			m.lastMove = nil
		}
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "enter":
		m.finished = nil
		_ = m.pl.Start(m.disks)
	case " ":
		switch m.pl.Phase() {
		case player.PhaseRunning:
			m.pl.Pause()
		case player.PhasePaused:
			m.pl.Resume()
		default:
			m.finished = nil
			_ = m.pl.Start(m.disks)
		}
	case "r":
		_ = m.pl.Reset(m.disks)
		m.lastMove = nil
		m.finished = nil
		m.syncBoard()
	case "+", "=", "up", "k":
		m.adjustDisks(1)
	case "-", "_", "down", "j":
		m.adjustDisks(-1)
	case "1":
		m.pl.SetPacing(player.PacingSlow)
	case "2":
		m.pl.SetPacing(player.PacingNormal)
	case "3":
		m.pl.SetPacing(player.PacingFast)
	case "t":
		names := ThemeNames()
		for i, name := range names {
			if name == CurrentTheme.Name {
				SetTheme(names[(i+1)%len(names)])
				break
			}
		}
	case "?":
		m.showHelp = !m.showHelp
	}
	return m, nil
}

// adjustDisks changes the disk count between runs. Ignored while a run is
// in flight.
func (m *Model) adjustDisks(delta int) {
	phase := m.pl.Phase()
	if phase == player.PhaseRunning || phase == player.PhasePaused {
		return
	}
	disks := m.disks + delta
	if disks < hanoi.MinDisks || disks > hanoi.MaxDisks {
		return
	}
	m.disks = disks
	m.lastMove = nil
	m.finished = nil
	_ = m.pl.Reset(disks)
	m.syncBoard()
}

func (m Model) View() string {
	if m.showHelp {
		return m.viewHelp()
	}

	var b strings.Builder
	b.WriteString("\n  " + headerStyle.Render("TOWER OF HANOI") + "  " +
		dimStyle.Render(fmt.Sprintf("%d disks · %s", m.disks, m.pl.Pacing())) + "\n\n")

	b.WriteString(m.viewBoard())
	b.WriteString("\n")
	b.WriteString(m.viewStatus())
	b.WriteString("\n\n  " +
		keyHint("enter", "start  ") + keyHint("space", "pause  ") + keyHint("r", "reset  ") +
		keyHint("+/-", "disks  ") + keyHint("1/2/3", "speed  ") + keyHint("t", "theme  ") +
		keyHint("?", "help  ") + keyHint("q", "quit") + "\n")
	return b.String()
}

// viewBoard draws the three pegs side by side, disks as coloured bars whose
// width encodes their size. The disk moved last is drawn inverted, echoing
// the original's highlight border.
func (m Model) viewBoard() string {
	colWidth := 2*m.disks + 3
	rows := m.disks + 1
	pole := dimStyle.Render("│")

	var b strings.Builder
	for row := rows - 1; row >= 0; row-- {
		b.WriteString("  ")
		for _, role := range hanoi.Roles {
			sizes := m.snapshot[role]
			if row < len(sizes) {
				size := sizes[row]
				bar := strings.Repeat("█", 2*size+1)
				style := DiskStyle(size)
				if m.lastMove != nil && m.lastMove.Disk == size &&
					role == m.lastMove.To && row == len(sizes)-1 {
					style = style.Reverse(true)
				}
				b.WriteString(pad(style.Render(bar), 2*size+1, colWidth))
			} else {
				b.WriteString(pad(pole, 1, colWidth))
			}
			b.WriteString("  ")
		}
		b.WriteString("\n")
	}

	base := lipgloss.NewStyle().Foreground(CurrentTheme.Muted).Render(strings.Repeat("─", colWidth))
	b.WriteString("  " + base + "  " + base + "  " + base + "\n")

	b.WriteString("  ")
	for _, role := range hanoi.Roles {
		label := lipgloss.NewStyle().Foreground(CurrentTheme.Primary).Bold(true).Render(role.String())
		b.WriteString(pad(label, 1, colWidth) + "  ")
	}
	b.WriteString("\n")
	return b.String()
}

// pad centres rendered (already styled) content of known visible width
// inside a column.
func pad(content string, visible, colWidth int) string {
	left := (colWidth - visible) / 2
	right := colWidth - visible - left
	return strings.Repeat(" ", left) + content + strings.Repeat(" ", right)
}

func (m Model) viewStatus() string {
	var b strings.Builder

	remaining := m.totalMoves - m.moveCount
	b.WriteString("  " + labelStyle.Render("progress ") +
		valueStyle.Render(fmt.Sprintf("%d/%d", m.moveCount, m.totalMoves)) +
		dimStyle.Render(fmt.Sprintf(" (%d remaining)", remaining)) + "\n")

	percent := 0.0
	if m.totalMoves > 0 {
		percent = float64(m.moveCount) / float64(m.totalMoves)
	}
	b.WriteString("  " + ProgressBar(percent, 40) + "\n")

	if m.lastMove != nil && m.finished == nil {
		b.WriteString("  " + dimStyle.Render(m.lastMove.String()) + "\n")
	}

	switch {
	case m.finished != nil && *m.finished == player.StatusSolved:
		b.WriteString("  " + statusSolved.Render(fmt.Sprintf("Solved in %d moves!", m.moveCount)) + "\n")
	case m.finished != nil && *m.finished == player.StatusAborted:
		b.WriteString("  " + statusError.Render(fmt.Sprintf("aborted: %v", m.finishErr)) + "\n")
	case m.finished != nil && *m.finished == player.StatusHalted:
		b.WriteString("  " + statusPaused.Render("Solving stopped") + "\n")
	case m.pl.Phase() == player.PhaseRunning:
		b.WriteString("  " + statusRunning.Render("solving") + "\n")
	case m.pl.Phase() == player.PhasePaused:
		b.WriteString("  " + statusPaused.Render("paused") + "\n")
	default:
		b.WriteString("  " + dimStyle.Render("ready — press enter to start") + "\n")
	}
	return b.String()
}

func (m Model) viewHelp() string {
	var b strings.Builder
	b.WriteString("\n  " + headerStyle.Render("TOWER OF HANOI — HELP") + "\n\n")
	b.WriteString(helpStyle.Render(`  Objective:
    Move every disk from peg A to peg C.
      · one disk moves at a time
      · only the top disk of a stack may move
      · a larger disk never rests on a smaller one

    The optimal solution takes 2^n - 1 moves for n disks.

  Keys:
    enter   start solving
    space   pause / resume
    r       reset the puzzle
    + / -   disk count (between runs)
    1/2/3   slow / normal / fast
    t       cycle colour theme
    ?       close this help
    q       quit`))
	b.WriteString("\n")
	return b.String()
}

// RunLive starts the player on real timers and runs the animation until
// the user quits.
func RunLive(disks int, pacing player.Pacing, theme string) error {
	SetTheme(theme)

	pl := player.New(player.TimerScheduler{})
	pl.SetPacing(pacing)
	if err := pl.Reset(disks); err != nil {
		return err
	}

	p := tea.NewProgram(NewModel(pl, disks), tea.WithAltScreen())
	pl.OnMove(func(mv hanoi.Move, snap [3][]int, count int) {
		p.Send(MoveMsg{Move: mv, Snapshot: snap, Count: count})
	})
	pl.OnFinished(func(st player.Status, err error) {
		p.Send(FinishedMsg{Status: st, Err: err})
	})

	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
