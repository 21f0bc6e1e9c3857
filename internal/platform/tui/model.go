package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lunarbyte/shellstorm/internal/audio"
	"github.com/lunarbyte/shellstorm/internal/config"
	"github.com/lunarbyte/shellstorm/internal/core"
	"github.com/lunarbyte/shellstorm/internal/game"
	"github.com/lunarbyte/shellstorm/internal/netplay"
	"github.com/lunarbyte/shellstorm/internal/storage"
)

// Options carries the optional collaborators a session can run with.
type Options struct {
	Store     *storage.Store // nil disables the leaderboard
	Audio     *audio.Player  // nil disables sound cues
	Hub       *netplay.Hub   // nil disables the spectator feed
	Username  string         // Prefills the name-entry field
	Character string         // Preselected character ID, empty for the default
}

// Model is the Bubble Tea model for one shellstorm session. It drives the
// simulation state machine and owns everything the pure core must not
// touch: wall clock, keyboard, audio, storage, and the spectator feed.
type Model struct {
	game    *game.Game
	screen  *core.Screen
	gameCfg config.Config
	config  core.RuntimeConfig
	opts    Options

	keys      *KeyMapper
	intents   IntentTracker
	gameState core.GameState

	roster  []game.Character
	charIdx int

	nameInput textinput.Model
	entering  bool // Name entry active on the game-over screen
	saved     bool

	lastTick time.Time
	quitting bool
}

// NewModel creates a session model.
func NewModel(gameCfg config.Config, rt core.RuntimeConfig, opts Options) Model {
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	ti := textinput.New()
	ti.Placeholder = "anonymous"
	ti.CharLimit = 16
	ti.SetValue(opts.Username)

	m := Model{
		gameCfg:   gameCfg,
		config:    rt,
		opts:      opts,
		keys:      NewKeyMapper(),
		roster:    game.Characters(),
		nameInput: ti,
	}
	for i, c := range m.roster {
		if c.ID == opts.Character {
			m.charIdx = i
		}
	}
	m.rebuildGame(rt.Seed)
	return m
}

// rebuildGame creates a fresh simulation with the given seed, keeping the
// selected character.
func (m *Model) rebuildGame(seed int64) {
	rt := m.config
	rt.Seed = seed
	g := game.New(m.gameCfg, rt)
	//nolint:errcheck // Roster indices are always valid character IDs
	g.SelectCharacter(m.roster[m.charIdx].ID)
	m.game = g
	m.screen = core.NewScreen(m.config.ScreenW, m.config.ScreenH)
	m.gameState = g.State()
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey routes keyboard input by simulation state.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.entering {
		return m.handleNameKey(msg)
	}

	action, isQuit := m.keys.MapAction(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.gameState.Status {
	case core.StatusIdle:
		switch {
		case action == core.ActionConfirm:
			m.intents.Clear()
			m.game.Start()
			m.gameState = m.game.State()
		case msg.String() == "c" || msg.String() == "tab":
			m.charIdx = (m.charIdx + 1) % len(m.roster)
			//nolint:errcheck // Roster indices are always valid character IDs
			m.game.SelectCharacter(m.roster[m.charIdx].ID)
		}

	case core.StatusPlaying:
		if action == core.ActionPause || action == core.ActionBack {
			m.intents.Clear()
			m.game.TogglePause()
			m.gameState = m.game.State()
			return m, nil
		}
		m.intents.Press(msg, time.Now())

	case core.StatusLevelUp:
		switch action {
		case core.ActionSelect1:
			m.game.ChooseSkill(0)
		case core.ActionSelect2:
			m.game.ChooseSkill(1)
		case core.ActionSelect3:
			m.game.ChooseSkill(2)
		}
		m.gameState = m.game.State()

	case core.StatusGameOver:
		switch action {
		case core.ActionConfirm:
			if m.opts.Store != nil && !m.saved {
				m.entering = true
				m.nameInput.Focus()
				return m, textinput.Blink
			}
		case core.ActionRestart:
			m.restart()
		}
	}

	return m, nil
}

// handleNameKey routes input while the name-entry field is focused.
func (m Model) handleNameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "esc":
		m.entering = false
		m.nameInput.Blur()
		return m, nil
	case "enter":
		name := m.nameInput.Value()
		if name == "" {
			name = m.nameInput.Placeholder
		}
		//nolint:errcheck // Best-effort save, session continues regardless
		m.opts.Store.SaveRun(m.game.Result(name))
		m.saved = true
		m.entering = false
		m.nameInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

// restart launches a fresh run with a new seed, keeping the character.
func (m *Model) restart() {
	m.rebuildGame(time.Now().UnixNano())
	m.saved = false
	m.intents.Clear()
	m.game.Start()
	m.gameState = m.game.State()
}

// handleResize adapts to a new terminal size. Mid-run the playfield keeps
// its dimensions and only the view buffer changes; outside a run the
// simulation is rebuilt for the new dimensions.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if m.gameState.Status == core.StatusIdle {
		m.rebuildGame(time.Now().UnixNano())
	}

	return m, nil
}

// handleTick advances the simulation by the real elapsed time.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := 1.0 / float64(m.config.TickRate)
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
	}
	m.lastTick = now

	in := m.intents.Frame(now)
	result := m.game.Step(&in, dt)
	m.intents.Sync(&in)
	m.gameState = result.State

	if m.opts.Audio != nil {
		m.opts.Audio.PlayAll(result.Cues)
	}
	if m.opts.Hub != nil {
		m.opts.Hub.Broadcast(result.State, m.game.Snapshot())
	}

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.entering {
		m.drawNamePrompt()
	}
	return RenderScreen(m.screen)
}

// drawNamePrompt overlays the name-entry field on the game-over screen.
func (m *Model) drawNamePrompt() {
	w := m.screen.Width()
	y := m.screen.Height()/2 + 4

	text := "Name: " + m.nameInput.Value() + "_"
	x := (w - len(text)) / 2
	m.screen.FillRect(x-1, y, len(text)+2, 1, ' ')
	m.screen.DrawTextColored(x, y, text, core.ColorBrightCyan)
}

// Run starts a local Bubble Tea session with the given collaborators.
func Run(gameCfg config.Config, rt core.RuntimeConfig, opts Options) error {
	model := NewModel(gameCfg, rt, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
