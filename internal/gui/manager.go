package gui

import (
	"sync/atomic"

	"blackjack/internal/debug"
	"blackjack/internal/game"
	"blackjack/internal/gui/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

// Manager owns the window content: one screen per game.Screen, switched by
// Render. All widget access happens on the fyne UI goroutine.
type Manager struct {
	window     fyne.Window
	debugCoord debug.Coordinator
	logger     debug.Logger
	isShutdown atomic.Bool

	menu   *components.MenuScreen
	table  *components.TableScreen
	result *components.ResultScreen
	root   *fyne.Container

	screen       game.Screen
	eventHandler func(game.Event)
}

func NewManager(window fyne.Window, debugCoord debug.Coordinator) *Manager {
	logger := debugCoord.Logger()

	menu := components.NewMenuScreen()
	table := components.NewTableScreen()
	result := components.NewResultScreen()

	background := canvas.NewRectangle(components.FeltGreen)
	root := container.NewStack(
		background,
		menu.GetContainer(),
		table.GetContainer(),
		result.GetContainer(),
	)

	manager := &Manager{
		window:     window,
		debugCoord: debugCoord,
		logger:     logger,
		menu:       menu,
		table:      table,
		result:     result,
		root:       root,
	}

	menu.SetStartHandler(manager.send(game.EventStart))
	table.SetHitHandler(manager.send(game.EventHit))
	table.SetStandHandler(manager.send(game.EventStand))
	result.SetNextRoundHandler(manager.send(game.EventNextRound))
	result.SetQuitHandler(manager.send(game.EventQuit))

	manager.apply(game.Snapshot{Screen: game.ScreenMenu})

	logger.Info("GUIManager", "initialized", map[string]interface{}{
		"card_width":  components.CardWidth,
		"card_height": components.CardHeight,
	})

	return manager
}

func (m *Manager) GetMainContainer() *fyne.Container {
	return m.root
}

func (m *Manager) GetWindow() fyne.Window {
	return m.window
}

// SetEventHandler receives every input event produced by buttons and keys.
func (m *Manager) SetEventHandler(handler func(game.Event)) {
	m.eventHandler = handler
}

// HandleKey maps H and S to hit and stand; other keys are ignored.
func (m *Manager) HandleKey(ev *fyne.KeyEvent) {
	switch ev.Name {
	case fyne.KeyH:
		m.dispatch(game.EventHit)
	case fyne.KeyS:
		m.dispatch(game.EventStand)
	}
}

// Render schedules snap to be drawn on the UI goroutine.
func (m *Manager) Render(snap game.Snapshot) {
	fyne.Do(func() {
		m.apply(snap)
	})
}

func (m *Manager) apply(snap game.Snapshot) {
	if m.isShutdown.Load() {
		return
	}

	if snap.Screen != m.screen {
		m.logger.Debug("GUIManager", "screen changed", map[string]interface{}{
			"from": m.screen.String(),
			"to":   snap.Screen.String(),
		})
	}
	m.screen = snap.Screen

	switch snap.Screen {
	case game.ScreenMenu:
		m.show(m.menu.GetContainer())
	case game.ScreenTable:
		m.table.Update(snap)
		m.show(m.table.GetContainer())
	case game.ScreenResult:
		m.result.Update(snap)
		m.show(m.result.GetContainer())
	}
}

func (m *Manager) show(screen *fyne.Container) {
	for _, c := range []*fyne.Container{m.menu.GetContainer(), m.table.GetContainer(), m.result.GetContainer()} {
		if c == screen {
			c.Show()
		} else {
			c.Hide()
		}
	}
}

// Screen reports the screen currently displayed.
func (m *Manager) Screen() game.Screen {
	return m.screen
}

func (m *Manager) send(ev game.Event) func() {
	return func() {
		// buttons keep focus after a click, which would swallow H/S
		if m.window != nil {
			m.window.Canvas().Unfocus()
		}
		m.dispatch(ev)
	}
}

func (m *Manager) dispatch(ev game.Event) {
	if m.eventHandler == nil || m.isShutdown.Load() {
		return
	}
	m.logger.Debug("GUIManager", "input", map[string]interface{}{
		"event": ev.String(),
	})
	m.eventHandler(ev)
}

func (m *Manager) Shutdown() {
	if m.isShutdown.Swap(true) {
		return
	}

	m.logger.Info("GUIManager", "shutdown initiated", nil)
}
