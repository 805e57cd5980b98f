package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/skovand/dragon-cave/internal/config"
	"github.com/skovand/dragon-cave/internal/storage"
	"github.com/skovand/dragon-cave/pkg/level"
	"github.com/skovand/dragon-cave/pkg/session"
	"github.com/skovand/dragon-cave/pkg/sim"
)

const (
	// Arrow keys latch for a few ticks because terminals deliver
	// repeats, not key-up events.
	keyHoldTicks = 8

	noticeTicks = sim.TicksPerSecond * 2

	topScoreCount = 5
)

var titleCaser = cases.Title(language.English)

// GameUI is the BubbleTea model that runs the game.
// https://github.com/charmbracelet/bubbletea
type GameUI struct {
	cfg    *config.Config
	store  storage.Storage
	log    *slog.Logger
	levels []level.Level

	sess  *session.Session
	world *sim.World

	scoresViewport viewport.Model
	topScores      []storage.HighScore

	width  int
	height int
	ready  bool

	// Input latches, decremented each tick
	leftHeld   int
	rightHeld  int
	jumpQueued bool
	rockQueued bool

	notice     string
	noticeLeft int

	showQuitModal bool
	copied        bool
	err           error
}

type tickMsg time.Time

type scoresLoadedMsg struct {
	scores []storage.HighScore
	err    error
}

type sessionSavedMsg struct {
	err error
}

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")). // gold
			Bold(true)

	hudStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	hudDimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	treasureStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("226")) // yellow

	dragonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // red

	dragonSleepStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("62")) // muted purple

	caverStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")). // teal
			Bold(true)

	rockStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("246")) // grey

	caveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("94")) // brown

	exitStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")). // green
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // red

	noticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")) // purple

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2).
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("255"))

	modalTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true).
			Align(lipgloss.Center)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("214")).
			Bold(true)
)

func NewGameUI(cfg *config.Config, store storage.Storage, levels []level.Level, log *slog.Logger) GameUI {
	vp := viewport.New(50, 12)
	return GameUI{
		cfg:            cfg,
		store:          store,
		log:            log,
		levels:         levels,
		sess:           session.New(cfg.Dragons),
		scoresViewport: vp,
	}
}

func (m GameUI) Init() tea.Cmd {
	return m.loadTopScores()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/sim.TicksPerSecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m GameUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.showQuitModal {
		return m.updateQuitModal(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.scoresViewport.Width = min(60, m.width-4)
		m.scoresViewport.Height = max(6, m.height-18)

	case scoresLoadedMsg:
		if msg.err != nil {
			m.log.Warn("Failed to load high scores", "error", msg.err.Error())
		} else {
			m.topScores = msg.scores
		}
		m.scoresViewport.SetContent(m.renderStartPanel())

	case sessionSavedMsg:
		if msg.err != nil {
			m.log.Warn("Failed to persist session", "error", msg.err.Error())
		}

	case tickMsg:
		return m.updateTick()

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	var cmd tea.Cmd
	m.scoresViewport, cmd = m.scoresViewport.Update(msg)
	return m, cmd
}

func (m GameUI) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.showQuitModal = true
		return m, nil
	}

	switch m.sess.Status {
	case session.StatusStart:
		return m.updateStartKey(msg)
	case session.StatusPlaying:
		return m.updatePlayingKey(msg)
	case session.StatusLevelComplete:
		switch msg.String() {
		case "enter", " ":
			return m.enterLevel()
		case "q", "esc":
			m.showQuitModal = true
		}
	case session.StatusGameOver, session.StatusWon:
		return m.updateEndKey(msg)
	}
	return m, nil
}

func (m GameUI) updateStartKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "+", "k":
		if m.sess.DragonCount < level.MaxDragons {
			m.sess.DragonCount++
		}
	case "down", "-", "j":
		if m.sess.DragonCount > 1 {
			m.sess.DragonCount--
		}
	case "enter", " ":
		return m.enterLevel()
	case "q", "esc":
		m.showQuitModal = true
	}
	return m, nil
}

func (m GameUI) updatePlayingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "a":
		m.leftHeld = keyHoldTicks
	case "right", "d":
		m.rightHeld = keyHoldTicks
	case "up", " ", "w":
		m.jumpQueued = true
	case "x", "r":
		m.rockQueued = true
	case "esc", "q":
		m.showQuitModal = true
	}
	return m, nil
}

func (m GameUI) updateEndKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "r", "enter":
		m.sess.Restart()
		m.copied = false
		m.notice = ""
		return m, m.loadTopScores()
	case "c":
		if err := clipboard.WriteAll(m.sess.Summary(len(m.levels))); err != nil {
			m.log.Warn("Clipboard copy failed", "error", err.Error())
		} else {
			m.copied = true
		}
	case "q", "esc":
		m.showQuitModal = true
	}
	return m, nil
}

// enterLevel builds the simulation for the session's current level and
// starts the tick loop.
func (m GameUI) enterLevel() (tea.Model, tea.Cmd) {
	if m.sess.LevelIndex >= len(m.levels) {
		m.err = fmt.Errorf("no level at index %d", m.sess.LevelIndex)
		return m, nil
	}
	lvl := m.levels[m.sess.LevelIndex]

	world, err := sim.NewWorld(&lvl, m.sess.DragonCount, nil)
	if err != nil {
		m.err = fmt.Errorf("failed to build level: %w", err)
		return m, nil
	}

	m.world = world
	m.sess.StartLevel()
	m.leftHeld, m.rightHeld = 0, 0
	m.jumpQueued, m.rockQueued = false, false
	m.notice = ""
	m.log.Info("Level started",
		"session", m.sess.ID.String(),
		"level", lvl.Name,
		"dragons", m.sess.DragonCount)
	return m, tea.Batch(tick(), m.saveSession())
}

func (m GameUI) updateTick() (tea.Model, tea.Cmd) {
	if m.sess.Status != session.StatusPlaying || m.world == nil {
		return m, nil
	}

	in := sim.Input{
		Left:     m.leftHeld > 0,
		Right:    m.rightHeld > 0,
		Jump:     m.jumpQueued,
		DropRock: m.rockQueued,
	}
	m.jumpQueued, m.rockQueued = false, false
	if m.leftHeld > 0 {
		m.leftHeld--
	}
	if m.rightHeld > 0 {
		m.rightHeld--
	}

	events := m.world.Step(in)
	for _, ev := range events {
		m.applyEvent(ev)
	}
	if m.noticeLeft > 0 {
		m.noticeLeft--
		if m.noticeLeft == 0 {
			m.notice = ""
		}
	}

	switch m.world.Outcome {
	case sim.OutcomeComplete:
		m.sess.CompleteLevel(len(m.levels))
		m.log.Info("Level complete",
			"session", m.sess.ID.String(),
			"banked", m.sess.TotalScore)
		if m.sess.Status == session.StatusWon {
			return m, tea.Batch(m.saveSession(), m.recordScore(), m.loadTopScores())
		}
		return m, m.saveSession()

	case sim.OutcomeDead:
		m.sess.Lose()
		m.log.Info("Run ended",
			"session", m.sess.ID.String(),
			"level", m.sess.LevelIndex+1,
			"total", m.sess.TotalScore)
		return m, tea.Batch(m.saveSession(), m.recordScore(), m.loadTopScores())
	}

	return m, tick()
}

func (m *GameUI) applyEvent(ev sim.Event) {
	switch ev.Kind {
	case sim.EventTreasure:
		m.sess.CollectTreasure()
	case sim.EventBigTreasure:
		m.sess.CollectBigTreasure()
		m.setNotice("The dragon's hoard! Treasure doubled!")
	case sim.EventBigTreasureSpawn:
		m.setNotice("A great treasure glimmers at the exit...")
	case sim.EventDragonWake:
		m.setNotice("The dragon stirs!")
	case sim.EventDragonDistracted:
		m.setNotice("The dragon turns toward the noise.")
	case sim.EventDragonResumed:
		m.setNotice("The dragon remembers you.")
	case sim.EventRockDropped:
		// No banner; the rock is visible on screen.
	}
}

func (m *GameUI) setNotice(text string) {
	m.notice = text
	m.noticeLeft = noticeTicks
}

func (m GameUI) saveSession() tea.Cmd {
	sess := *m.sess
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return sessionSavedMsg{err: m.store.SaveSession(ctx, &sess)}
	}
}

func (m GameUI) recordScore() tea.Cmd {
	sess := *m.sess
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return sessionSavedMsg{err: m.store.RecordScore(ctx, &sess)}
	}
}

func (m GameUI) loadTopScores() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		scores, err := m.store.TopScores(ctx, topScoreCount)
		return scoresLoadedMsg{scores: scores, err: err}
	}
}

func (m GameUI) updateQuitModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "y", "Y", "enter", "ctrl+c":
			return m, tea.Quit
		case "n", "N", "esc":
			m.showQuitModal = false
			if m.sess.Status == session.StatusPlaying {
				return m, tick()
			}
		}
	}
	return m, nil
}

func (m GameUI) View() string {
	if m.showQuitModal {
		return m.renderQuitModal()
	}
	if !m.ready {
		return "\n  Initializing..."
	}
	if m.err != nil {
		return errorStyle.Render("Error: "+m.err.Error()) + "\n\nPress Ctrl+C to quit.\n"
	}

	switch m.sess.Status {
	case session.StatusStart:
		return m.renderStartScreen()
	case session.StatusPlaying:
		return m.renderPlaying()
	case session.StatusLevelComplete:
		return m.renderLevelComplete()
	case session.StatusGameOver, session.StatusWon:
		return m.renderEndScreen()
	}
	return ""
}

func (m GameUI) renderStartPanel() string {
	var b strings.Builder

	wrapWidth := max(20, m.scoresViewport.Width-2)
	b.WriteString(wordwrap.String(
		"Cross the cave, grab every treasure and reach the exit. "+
			"Dragons sleep until you come close or make noise. "+
			"Drop rocks to lure an angry dragon away.", wrapWidth))
	b.WriteString("\n\n")

	b.WriteString(hudDimStyle.Render("←/→ or a/d move   ↑/space jump   x drop rock") + "\n")
	b.WriteString(hudDimStyle.Render("esc quit") + "\n\n")

	b.WriteString(titleStyle.Render("High Scores") + "\n")
	if len(m.topScores) == 0 {
		b.WriteString(hudDimStyle.Render("No scores yet.") + "\n")
	}
	for i, hs := range m.topScores {
		id := hs.SessionID
		if len(id) > 8 {
			id = id[:8]
		}
		b.WriteString(fmt.Sprintf("%d. %s %s\n",
			i+1,
			treasureStyle.Render(fmt.Sprintf("%3d", hs.Score)),
			hudDimStyle.Render(id)))
	}
	return b.String()
}

func (m GameUI) renderStartScreen() string {
	var b strings.Builder

	b.WriteString("\n  " + titleStyle.Render("DRAGON CAVE ADVENTURE") + "\n\n")
	b.WriteString(fmt.Sprintf("  Levels: %d\n\n", len(m.levels)))

	b.WriteString("  Dragons per level:\n")
	for n := level.MaxDragons; n >= 1; n-- {
		label := fmt.Sprintf("  %d dragon", n)
		if n > 1 {
			label += "s"
		}
		if n == m.sess.DragonCount {
			b.WriteString("  " + selectedStyle.Render("▶"+label+" ") + "\n")
		} else {
			b.WriteString("   " + hudStyle.Render(label) + "\n")
		}
	}
	b.WriteString("\n" + hudDimStyle.Render("  ↑/↓ choose difficulty, Enter to descend") + "\n\n")

	m2 := m
	m2.scoresViewport.SetContent(m.renderStartPanel())
	b.WriteString(lipgloss.NewStyle().PaddingLeft(2).Render(m2.scoresViewport.View()))
	return b.String()
}

func (m GameUI) renderLevelComplete() string {
	lvl := m.levels[m.sess.LevelIndex-1]

	var b strings.Builder
	b.WriteString("\n  " + titleStyle.Render("LEVEL COMPLETE") + "\n\n")
	b.WriteString(fmt.Sprintf("  %s cleared.\n", titleCaser.String(lvl.Name)))
	b.WriteString(fmt.Sprintf("  Treasure banked: %s\n\n",
		treasureStyle.Render(fmt.Sprintf("%d", m.sess.TotalScore))))
	b.WriteString(fmt.Sprintf("  Next: level %d of %d — %s\n\n",
		m.sess.LevelIndex+1, len(m.levels),
		titleCaser.String(m.levels[m.sess.LevelIndex].Name)))
	b.WriteString(hudDimStyle.Render("  Press Enter to continue, q to quit") + "\n")
	return b.String()
}

func (m GameUI) renderEndScreen() string {
	var b strings.Builder

	if m.sess.Status == session.StatusWon {
		b.WriteString("\n  " + titleStyle.Render("YOU ESCAPED THE CAVES") + "\n\n")
	} else {
		b.WriteString("\n  " + dragonStyle.Render("THE DRAGON GOT YOU") + "\n\n")
	}

	wrapWidth := max(20, min(70, m.width-4))
	summary := wordwrap.String(m.sess.Summary(len(m.levels)), wrapWidth)
	b.WriteString(lipgloss.NewStyle().PaddingLeft(2).Render(summary) + "\n\n")

	b.WriteString(titleStyle.Render("  High Scores") + "\n")
	if len(m.topScores) == 0 {
		b.WriteString(hudDimStyle.Render("  No scores recorded.") + "\n")
	}
	for i, hs := range m.topScores {
		marker := "  "
		if hs.SessionID == m.sess.ID.String() {
			marker = caverStyle.Render("▶ ")
		}
		b.WriteString(fmt.Sprintf("  %s%d. %s\n", marker, i+1,
			treasureStyle.Render(fmt.Sprintf("%d treasures", hs.Score))))
	}
	b.WriteString("\n")

	if m.copied {
		b.WriteString(noticeStyle.Render("  Summary copied to clipboard.") + "\n")
	}
	b.WriteString(hudDimStyle.Render("  r play again   c copy summary   q quit") + "\n")
	return b.String()
}

func (m GameUI) renderQuitModal() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("Leave the Cave?"))
	content.WriteString("\n\n")
	content.WriteString("Unbanked treasure will be lost.")
	content.WriteString("\n\n")
	content.WriteString(hudDimStyle.Render("Press Y to quit, N to keep playing"))

	modal := modalStyle.Width(44).Render(content.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal,
		lipgloss.WithWhitespaceChars(" "))
}
