package player

import (
	"errors"
	"fmt"
	"sync"

	"github.com/san-kum/hanoi/internal/hanoi"
)

// Phase is the playback state machine position.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhasePaused
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseFinished:
		return "finished"
	}
	return "unknown"
}

// Status is the terminal outcome of a playback run.
type Status int

const (
	// StatusSolved: the full sequence applied cleanly and the board is solved.
	StatusSolved Status = iota
	// StatusAborted: a generated move was rejected by the board, or the
	// sequence ran out before the board was solved. Either way the solver
	// and the board disagreed, which is a defect, not a user action.
	StatusAborted
	// StatusHalted: the user reset the run before it finished.
	StatusHalted
)

func (s Status) String() string {
	switch s {
	case StatusSolved:
		return "solved"
	case StatusAborted:
		return "aborted"
	case StatusHalted:
		return "halted"
	}
	return "unknown"
}

// ErrExhausted reports a sequence that ran dry before the board solved.
var ErrExhausted = errors.New("player: sequence exhausted before board solved")

// MoveFunc observes a successfully applied move with the resulting peg
// snapshot and the updated move count.
type MoveFunc func(mv hanoi.Move, snapshot [3][]int, moveCount int)

// FinishFunc observes the terminal status. err is non-nil only for
// StatusAborted and then carries the offending move.
type FinishFunc func(status Status, err error)

// Player owns one board and one move sequence per run and steps them under
// the configured pacing. All methods are safe to call from the goroutine a
// Scheduler fires on.
type Player struct {
	mu     sync.Mutex
	sched  Scheduler
	pacing Pacing

	phase  Phase
	board  *hanoi.Board
	seq    *hanoi.Sequence
	gen    int
	cancel func()

	onMove     MoveFunc
	onFinished FinishFunc
}

// New returns an idle player with normal pacing.
func New(sched Scheduler) *Player {
	return &Player{sched: sched, pacing: PacingNormal}
}

// OnMove registers the per-move observer. Call before Start.
func (p *Player) OnMove(fn MoveFunc) {
	p.mu.Lock()
	p.onMove = fn
	p.mu.Unlock()
}

// OnFinished registers the terminal observer. Call before Start.
func (p *Player) OnFinished(fn FinishFunc) {
	p.mu.Lock()
	p.onFinished = fn
	p.mu.Unlock()
}

// SetPacing changes the delay preset. A step already scheduled keeps its
// old delay; the new one applies from the next step.
func (p *Player) SetPacing(pacing Pacing) {
	p.mu.Lock()
	p.pacing = pacing
	p.mu.Unlock()
}

// Pacing returns the current delay preset.
func (p *Player) Pacing() Pacing {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pacing
}

// Phase returns the state machine position.
func (p *Player) Phase() Phase {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.phase
}

// Snapshot returns the current peg contents, or the zero value before the
// first Start/Reset.
func (p *Player) Snapshot() [3][]int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.board == nil {
		return [3][]int{}
	}
	return p.board.Snapshot()
}

// MoveCount returns applied moves in the current run.
func (p *Player) MoveCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.board == nil {
		return 0
	}
	return p.board.MoveCount()
}

// TotalMoves returns the optimal length for the current disk count.
func (p *Player) TotalMoves() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.board == nil {
		return 0
	}
	return p.board.TotalMoves()
}

// Disks returns the current disk count, 0 before the first Start/Reset.
func (p *Player) Disks() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.board == nil {
		return 0
	}
	return p.board.NumDisks()
}

// Start begins a fresh run from Idle or Finished, creating a new board and
// sequence and applying the first move immediately. From Paused it resumes
// instead of resetting. While Running it is a no-op.
func (p *Player) Start(disks int) error {
	p.mu.Lock()
	switch p.phase {
	case PhaseRunning:
		p.mu.Unlock()
		return nil
	case PhasePaused:
		p.phase = PhaseRunning
		gen := p.bumpLocked()
		p.mu.Unlock()
		p.step(gen)
		return nil
	}

	if err := validateDisks(disks); err != nil {
		p.mu.Unlock()
		return err
	}
	p.board = hanoi.NewBoard(disks)
	p.seq = hanoi.NewSequence(disks)
	p.phase = PhaseRunning
	gen := p.bumpLocked()
	p.mu.Unlock()

	p.step(gen)
	return nil
}

// Pause suspends a running playback and cancels the pending step. A no-op
// in any other phase.
func (p *Player) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.phase != PhaseRunning {
		return
	}
	p.phase = PhasePaused
	p.bumpLocked()
}

// Resume continues a paused playback with the next unapplied move. A no-op
// in any other phase.
func (p *Player) Resume() {
	p.mu.Lock()
	if p.phase != PhasePaused {
		p.mu.Unlock()
		return
	}
	p.phase = PhaseRunning
	gen := p.bumpLocked()
	p.mu.Unlock()
	p.step(gen)
}

// Reset cancels any pending step, discards the current run and rebuilds a
// fresh board with the given disk count, returning to Idle. A run reset
// mid-flight reports StatusHalted. Valid from every phase.
func (p *Player) Reset(disks int) error {
	p.mu.Lock()
	if err := validateDisks(disks); err != nil {
		p.mu.Unlock()
		return err
	}

	halted := p.phase == PhaseRunning || p.phase == PhasePaused
	p.bumpLocked()
	p.board = hanoi.NewBoard(disks)
	p.seq = nil
	p.phase = PhaseIdle
	finish := p.onFinished
	p.mu.Unlock()

	if halted && finish != nil {
		finish(StatusHalted, nil)
	}
	return nil
}

// bumpLocked cancels the pending step and invalidates callbacks scheduled
// against the previous generation. Caller holds p.mu.
func (p *Player) bumpLocked() int {
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	p.gen++
	return p.gen
}

// step applies the next move for generation gen. Timer callbacks from a
// cancelled or superseded run fail the gen check and do nothing.
func (p *Player) step(gen int) {
	p.mu.Lock()
	if p.phase != PhaseRunning || gen != p.gen {
		p.mu.Unlock()
		return
	}

	mv, ok := p.seq.Next()
	if !ok {
		p.phase = PhaseFinished
		solved := p.board.Solved()
		finish := p.onFinished
		p.mu.Unlock()
		if finish != nil {
			if solved {
				finish(StatusSolved, nil)
			} else {
				finish(StatusAborted, ErrExhausted)
			}
		}
		return
	}

	index := p.seq.Index() - 1
	if err := p.board.Apply(mv); err != nil {
		p.phase = PhaseFinished
		finish := p.onFinished
		p.mu.Unlock()
		if finish != nil {
			finish(StatusAborted, &hanoi.MoveError{Index: index, Move: mv, Wrapped: err})
		}
		return
	}

	snapshot := p.board.Snapshot()
	count := p.board.MoveCount()
	observe := p.onMove

	if p.board.Solved() {
		p.phase = PhaseFinished
		finish := p.onFinished
		p.mu.Unlock()
		if observe != nil {
			observe(mv, snapshot, count)
		}
		if finish != nil {
			finish(StatusSolved, nil)
		}
		return
	}

	p.cancel = p.sched.Schedule(p.pacing.Interval(), func() { p.step(gen) })
	p.mu.Unlock()

	if observe != nil {
		observe(mv, snapshot, count)
	}
}

func validateDisks(disks int) error {
	if disks < hanoi.MinDisks || disks > hanoi.MaxDisks {
		return fmt.Errorf("disks must be between %d and %d, got %d: %w",
			hanoi.MinDisks, hanoi.MaxDisks, disks, hanoi.ErrDiskCount)
	}
	return nil
}
