package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/arcadelab/snaketui/internal/audio"
	"github.com/arcadelab/snaketui/internal/config"
	"github.com/arcadelab/snaketui/internal/core"
	"github.com/arcadelab/snaketui/internal/game"
	"github.com/arcadelab/snaketui/internal/storage"
)

// Model is the Bubble Tea model running a game session.
type Model struct {
	g          *game.Game
	screen     *core.Screen
	store      *storage.Store
	sound      *audio.Player
	rt         core.RuntimeConfig
	inputFrame core.InputFrame
	keys       *KeyMapper
	highScore  int
	startedAt  time.Time
	scoreSaved bool
	quitting   bool
}

// NewModel creates a new Bubble Tea model for a game session.
// store and sound may be nil; the session then runs without persistence
// or audio.
func NewModel(cfg config.Config, rt core.RuntimeConfig, store *storage.Store, sound *audio.Player) Model {
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	g := game.New(cfg)
	g.Reset(rt)

	m := Model{
		g:          g,
		screen:     core.NewScreen(rt.ScreenW, rt.ScreenH),
		store:      store,
		sound:      sound,
		rt:         rt,
		inputFrame: core.NewInputFrame(),
		keys:       NewKeyMapper(),
		startedAt:  time.Now(),
	}

	if store != nil {
		if high, err := store.HighScore(); err == nil {
			m.highScore = high
		}
	}

	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.rt.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.rt.ScreenW = msg.Width
		m.rt.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Directional keys go straight into the
// engine's turn buffer so the last key pressed between two moves wins; other
// actions are latched in the input frame and applied on the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if _, ok := action.Direction(); ok {
		m.g.HandleInput(action)
		return m, nil
	}

	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleTick runs one simulation frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) {
		m.g.HandleInput(core.ActionRestart)
		m.scoreSaved = false
		m.startedAt = time.Now()
	}
	if m.inputFrame.Has(core.ActionPause) {
		m.g.HandleInput(core.ActionPause)
	}
	m.inputFrame.Clear()

	result := m.g.Step()

	for _, ev := range result.Events {
		m.playEvent(ev)
	}

	// Save the run once when it ends
	if result.State.GameOver && !m.scoreSaved {
		m.saveResult(result.State)
		m.scoreSaved = true
	}

	return m, tickCmd(m.rt.TickRate)
}

// playEvent triggers the sound effect for a game event.
func (m Model) playEvent(ev core.Event) {
	if m.sound == nil {
		return
	}
	switch ev {
	case core.EventAppleEaten:
		m.sound.PlayEat()
	case core.EventDied:
		m.sound.PlayDeath()
	case core.EventWon:
		m.sound.PlayWin()
	}
}

// saveResult persists a finished run, best effort.
func (m *Model) saveResult(state core.GameState) {
	if state.Score > m.highScore {
		m.highScore = state.Score
	}
	if m.store == nil || state.Score <= 0 {
		return
	}

	snap := m.g.Snapshot()
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveResult(storage.Result{
		Score:        state.Score,
		SnakeLength:  len(snap.Segments),
		DurationSecs: int(time.Since(m.startedAt).Seconds()),
		Won:          state.Won,
	})
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.renderGame(m.screen)
	return RenderScreen(m.screen)
}

// renderGame draws the full frame: HUD, playfield, snake, apple, overlays.
func (m Model) renderGame(dst *core.Screen) {
	dst.Clear()

	snap := m.g.Snapshot()

	// Playfield box: board plus a one-cell border, centered below the HUD.
	boxW := snap.Board.Width + 2
	boxH := snap.Board.Height + 2
	if dst.Width() < boxW || dst.Height() < boxH+2 {
		m.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	m.renderHUD(dst, snap)

	offX := (dst.Width() - boxW) / 2
	offY := 2 + (dst.Height()-2-boxH)/2

	box := core.NewRect(offX, offY, boxW, boxH)
	dst.DrawBox(box, core.ColorGray)

	// Checkerboard backdrop inside the border
	for y := 0; y < snap.Board.Height; y++ {
		for x := 0; x < snap.Board.Width; x++ {
			if (x+y)%2 == 0 {
				dst.SetCell(offX+1+x, offY+1+y, '·', core.ColorDarkGreen)
			}
		}
	}

	if snap.HasApple {
		dst.SetCell(offX+1+snap.Apple.X, offY+1+snap.Apple.Y, '*', core.ColorRed)
	}

	for i, seg := range snap.Segments {
		if i == 0 {
			dst.SetCell(offX+1+seg.X, offY+1+seg.Y, 'O', core.ColorBrightGreen) // Head
		} else {
			dst.SetCell(offX+1+seg.X, offY+1+seg.Y, 'o', core.ColorGreen) // Body
		}
	}

	switch {
	case snap.State == game.StateWon:
		m.renderOverlay(dst, "YOU WIN!", fmt.Sprintf("Final Score: %d", snap.Score), "(R)estart  (Q)uit")
	case snap.State == game.StateDead:
		m.renderOverlay(dst, "GAME OVER", fmt.Sprintf("Score: %d", snap.Score), "(R)estart  (Q)uit")
	case snap.Paused:
		m.renderOverlay(dst, "PAUSED", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (m Model) renderHUD(dst *core.Screen, snap game.Snapshot) {
	hud := fmt.Sprintf(" SCORE %d", snap.Score)
	dst.DrawTextColored(0, 0, hud, core.ColorWhite)

	if m.highScore > 0 {
		high := fmt.Sprintf("HIGH %d ", m.highScore)
		dst.DrawTextColored(dst.Width()-len(high), 0, high, core.ColorYellow)
	}

	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorGray)
}

// renderOverlay draws a centered boxed message over the playfield.
func (m Model) renderOverlay(dst *core.Screen, lines ...string) {
	maxLen := 0
	for _, l := range lines {
		if len(l) > maxLen {
			maxLen = len(l)
		}
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)

	for i, l := range lines {
		c := core.ColorBrightWhite
		if i > 0 {
			c = core.ColorWhite
		}
		dst.DrawTextCentered(boxY+1+i, l, c)
	}
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(cfg config.Config, rt core.RuntimeConfig, store *storage.Store, sound *audio.Player) error {
	model := NewModel(cfg, rt, store, sound)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
