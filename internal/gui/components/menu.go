package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

const (
	GameTitle   = "Blackjack"
	StartLabel  = "Start Game"
	titleSize   = 60
	headingSize = 40
)

// MenuScreen is the top-level screen shown before a game starts.
type MenuScreen struct {
	container   *fyne.Container
	StartButton *widget.Button

	startHandler func()
}

func NewMenuScreen() *MenuScreen {
	ms := &MenuScreen{}

	title := canvas.NewText(GameTitle, Gold)
	title.TextSize = titleSize
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Alignment = fyne.TextAlignCenter

	ms.StartButton = widget.NewButton(StartLabel, ms.onStart)
	ms.StartButton.Importance = widget.HighImportance

	ms.container = container.NewVBox(
		layout.NewSpacer(),
		title,
		container.NewCenter(container.NewGridWrap(fyne.NewSize(ButtonWidth, ButtonHigh), ms.StartButton)),
		layout.NewSpacer(),
	)
	return ms
}

func (ms *MenuScreen) GetContainer() *fyne.Container {
	return ms.container
}

func (ms *MenuScreen) SetStartHandler(handler func()) {
	ms.startHandler = handler
}

func (ms *MenuScreen) onStart() {
	if ms.startHandler != nil {
		ms.startHandler()
	}
}
