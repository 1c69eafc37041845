package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-reflex/internal/core"
	"github.com/vovakirdan/tui-reflex/internal/reflex"
	"github.com/vovakirdan/tui-reflex/internal/storage"
)

// Model is the Bubble Tea model for playing a reflex session.
type Model struct {
	engine    *reflex.Engine
	screen    *core.Screen
	store     *storage.Store
	config    core.RuntimeConfig
	keyMapper *KeyMapper

	sessionPreset uint16
	player        string // empty for local play, SSH user for remote

	pressed      uint8 // buttons collected since the last frame
	out          reflex.Output
	paused       bool
	resetQueued  bool
	sessionSaved bool // Whether the session has been saved for current game over
	quitting     bool
}

// NewModel creates a new Bubble Tea model running a fresh engine.
func NewModel(gameCfg reflex.Config, store *storage.Store, cfg core.RuntimeConfig, player string) Model {
	preset := gameCfg.SessionPreset
	if preset == 0 {
		preset = reflex.DefaultSessionPreset
	}

	return Model{
		engine:        reflex.New(gameCfg),
		screen:        core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:         store,
		config:        cfg,
		keyMapper:     NewKeyMapper(),
		sessionPreset: preset,
		player:        player,
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.FPS)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	buttons, ctrl := m.keyMapper.MapKey(msg)

	switch ctrl {
	case ControlQuit:
		m.quitting = true
		return m, tea.Quit
	case ControlPause:
		m.paused = !m.paused
		return m, nil
	case ControlReset:
		m.resetQueued = true
		return m, nil
	}

	m.pressed |= buttons
	return m, nil
}

// handleResize processes window resize events. The engine keeps running;
// only the render buffer changes size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick runs one frame's worth of engine ticks.
// Collected button presses are delivered as a one-tick pulse on the first
// engine tick of the frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.resetQueued {
		m.out = m.engine.Tick(reflex.Input{Reset: true})
		m.resetQueued = false
		m.pressed = 0
		m.sessionSaved = false
		return m, tickCmd(m.config.FPS)
	}

	ticks := m.config.TicksPerFrame()
	for i := 0; i < ticks; i++ {
		in := reflex.Input{Enable: !m.paused}
		if i == 0 {
			in.Buttons = m.pressed
		}
		m.out = m.engine.Tick(in)
	}
	m.pressed = 0

	// Save the session when the countdown runs out (once)
	if m.out.SessionOver && !m.sessionSaved {
		if m.store != nil {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveSession(storage.SessionRecord{
				Score:         int(m.out.Score),
				PeakTier:      m.engine.PeakTier(),
				RoundsWon:     m.engine.RoundsWon(),
				RoundsMissed:  m.engine.RoundsMissed(),
				DurationTicks: int64(m.engine.TickCount()),
				Player:        m.player,
			})
		}
		m.sessionSaved = true
	}

	return m, tickCmd(m.config.FPS)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.render()
	return RenderScreen(m.screen)
}

// render draws the full play view into the screen buffer.
func (m Model) render() {
	s := m.screen
	s.Clear()

	s.DrawTextCentered(1, "R E F L E X")

	// Seven-segment display, centered
	seg, dp := reflex.EncodeDisplay(m.out.ActivePattern, m.out.SessionOver, m.out.Score)
	litColor := core.ColorBrightGreen
	if m.out.SessionOver {
		litColor = core.ColorBrightYellow
	}
	glyphX := (s.Width() - SegWidth) / 2
	glyphY := 3
	DrawSevenSeg(s, glyphX, glyphY, seg, dp, litColor)

	// Key legend to the left of the display
	legendX := glyphX - SegWidth - 6
	if legendX >= 0 {
		DrawSegKeyLegend(s, legendX, glyphY)
	}

	hudY := glyphY + SegHeight + 1
	m.renderHUD(hudY)
}

// renderHUD draws score, tier, timers and status lines below the display.
func (m Model) renderHUD(y int) {
	s := m.screen
	tickHz := m.config.TickHz
	if tickHz <= 0 {
		tickHz = 1
	}

	score := fmt.Sprintf("Score %d", m.out.Score)
	tier := fmt.Sprintf("Tier %d/%d (%d targets)",
		m.out.TierIndex+1, m.engine.TierCount(), m.out.Targets)
	s.DrawTextCentered(y, score+"    "+tier)

	sessionSec := float64(m.out.SessionLeft) / float64(tickHz)
	roundSec := float64(m.out.RoundLeft) / float64(tickHz)
	s.DrawTextCentered(y+1, fmt.Sprintf("Session %5.1fs    Round %5.2fs", sessionSec, roundSec))

	// Session countdown bar
	barWidth := core.Min(s.Width()-4, 60)
	if barWidth > 0 && m.sessionPreset > 0 {
		filled := int(float64(barWidth) * float64(m.out.SessionLeft) / float64(m.sessionPreset))
		barX := (s.Width() - barWidth) / 2
		s.DrawHLine(barX, y+2, barWidth, '·')
		color := core.ColorGreen
		if sessionSec < 10 {
			color = core.ColorBrightRed
		}
		for i := 0; i < filled; i++ {
			s.SetColored(barX+i, y+2, '━', color)
		}
	}

	switch {
	case m.out.SessionOver:
		s.DrawTextCentered(y+4, "TIME UP  final score on display  [r] restart  [q] quit")
	case m.paused:
		s.DrawTextCentered(y+4, "PAUSED  [p] resume")
	case m.out.LockoutMask != 0:
		line := "MISFIRE  locked keys:"
		for bit := 0; bit < 8; bit++ {
			if m.out.LockoutMask&(1<<bit) != 0 {
				line += fmt.Sprintf(" %d", bit+1)
			}
		}
		x := (s.Width() - len(line)) / 2
		s.DrawTextColored(x, y+4, line, core.ColorBrightRed)
	default:
		s.DrawTextCentered(y+4, "[1-7] press lit segments  [p] pause  [r] reset  [q] quit")
	}
}

// Run starts the Bubble Tea program with the given configuration.
func Run(gameCfg reflex.Config, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(gameCfg, store, cfg, "")

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
