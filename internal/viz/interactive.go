package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/hanoi/internal/hanoi"
	"github.com/san-kum/hanoi/internal/player"
)

const (
	stateConfig = iota
	statePlay
)

// app is the interactive entry point: a small config screen, then the
// animation.
type app struct {
	state  int
	cursor int

	disks    int
	speedIdx int
	themeIdx int

	pl   *player.Player
	live Model

	width, height int
}

var configFields = []string{"disks", "speed", "theme"}

func newApp(pl *player.Player, disks int, pacing player.Pacing, theme string) app {
	speedIdx := 0
	for i, name := range player.PacingNames() {
		if name == pacing.String() {
			speedIdx = i
		}
	}
	themeIdx := 0
	for i, name := range ThemeNames() {
		if name == theme {
			themeIdx = i
		}
	}
	return app{
		state:    stateConfig,
		disks:    disks,
		speedIdx: speedIdx,
		themeIdx: themeIdx,
		pl:       pl,
		width:    80, height: 24,
	}
}

func (a app) Init() tea.Cmd { return nil }

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKey(msg)
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		if a.state == statePlay {
			newLive, cmd := a.live.Update(msg)
			a.live = newLive.(Model)
			return a, cmd
		}
	default:
		if a.state == statePlay {
			newLive, cmd := a.live.Update(msg)
			a.live = newLive.(Model)
			return a, cmd
		}
	}
	return a, nil
}

func (a app) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.state == statePlay {
		if msg.String() == "esc" {
			_ = a.pl.Reset(a.disks)
			a.state = stateConfig
			return a, nil
		}
		newLive, cmd := a.live.Update(msg)
		a.live = newLive.(Model)
		return a, cmd
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
	case "down", "j":
		if a.cursor < len(configFields)-1 {
			a.cursor++
		}
	case "left", "h":
		a.adjust(-1)
	case "right", "l":
		a.adjust(1)
	case "enter", "s", " ":
		return a.startPlay()
	}
	return a, nil
}

func (a *app) adjust(delta int) {
	switch configFields[a.cursor] {
	case "disks":
		d := a.disks + delta
		if d >= hanoi.MinDisks && d <= hanoi.MaxDisks {
			a.disks = d
		}
	case "speed":
		n := len(player.PacingNames())
		a.speedIdx = (a.speedIdx + delta + n) % n
	case "theme":
		n := len(ThemeNames())
		a.themeIdx = (a.themeIdx + delta + n) % n
	}
}

func (a app) startPlay() (tea.Model, tea.Cmd) {
	pacing, err := player.ParsePacing(player.PacingNames()[a.speedIdx])
	if err != nil {
		pacing = player.PacingNormal
	}
	SetTheme(ThemeNames()[a.themeIdx])

	a.pl.SetPacing(pacing)
	if err := a.pl.Reset(a.disks); err != nil {
		return a, nil
	}
	a.live = NewModel(a.pl, a.disks)
	a.state = statePlay
	_ = a.pl.Start(a.disks)
	return a, nil
}

func (a app) View() string {
	if a.state == statePlay {
		return a.live.View()
	}

	var b strings.Builder
	sub := dimStyle
	b.WriteString("\n\n    " + headerStyle.Render("TOWER OF HANOI") + "\n    " +
		sub.Render("visual solver") + "\n    " +
		sub.Render("─────────────────────────") + "\n\n")

	values := []string{
		fmt.Sprintf("%d", a.disks),
		player.PacingNames()[a.speedIdx],
		ThemeNames()[a.themeIdx],
	}
	for i, name := range configFields {
		if i == a.cursor {
			b.WriteString(fmt.Sprintf("    %s %s %s\n",
				keyStyle.Render("▸"),
				valueStyle.Bold(true).Render(fmt.Sprintf("%-8s", name)),
				headerStyle.Render(values[i])))
		} else {
			b.WriteString(fmt.Sprintf("      %s %s\n",
				dimStyle.Render(fmt.Sprintf("%-8s", name)),
				dimStyle.Render(values[i])))
		}
	}

	b.WriteString("\n    " + keyHint("j/k", "select  ") + keyHint("h/l", "adjust  ") +
		keyHint("enter", "solve  ") + keyHint("q", "quit") + "\n")
	return b.String()
}

// RunInteractive opens the config screen and drives the animation from it.
func RunInteractive(disks int, pacing player.Pacing, theme string) error {
	pl := player.New(player.TimerScheduler{})
	pl.SetPacing(pacing)

	p := tea.NewProgram(newApp(pl, disks, pacing, theme), tea.WithAltScreen())
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
