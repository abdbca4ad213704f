package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"blackjack/internal/game"
)

const (
	NextRoundLabel = "Next Round"
	QuitLabel      = "Quit Game"
	messageSize    = 48
)

// ResultScreen shows the outcome of a finished round.
type ResultScreen struct {
	container  *fyne.Container
	message    *canvas.Text
	winsText   *canvas.Text
	PlayerHand *HandView
	DealerHand *HandView
	NextButton *widget.Button
	QuitButton *widget.Button

	nextHandler func()
	quitHandler func()
}

func NewResultScreen() *ResultScreen {
	rs := &ResultScreen{}

	rs.message = canvas.NewText("", Gold)
	rs.message.TextSize = messageSize
	rs.message.TextStyle = fyne.TextStyle{Bold: true}
	rs.message.Alignment = fyne.TextAlignCenter

	rs.winsText = canvas.NewText(WinsLabel(0), OffWhite)
	rs.winsText.TextSize = CardText
	rs.winsText.Alignment = fyne.TextAlignCenter

	rs.PlayerHand = NewHandView("Your Hand:")
	rs.DealerHand = NewHandView("Dealer's Hand:")

	rs.NextButton = widget.NewButton(NextRoundLabel, rs.onNext)
	rs.NextButton.Importance = widget.HighImportance
	rs.QuitButton = widget.NewButton(QuitLabel, rs.onQuit)

	buttonSize := fyne.NewSize(ButtonWidth, ButtonHigh)
	rs.container = container.NewPadded(container.NewVBox(
		rs.message,
		rs.winsText,
		container.NewHBox(rs.PlayerHand.GetContainer(), layout.NewSpacer(), rs.DealerHand.GetContainer()),
		container.NewCenter(container.NewVBox(
			container.NewGridWrap(buttonSize, rs.NextButton),
			container.NewGridWrap(buttonSize, rs.QuitButton),
		)),
	))
	return rs
}

func (rs *ResultScreen) GetContainer() *fyne.Container {
	return rs.container
}

func (rs *ResultScreen) SetNextRoundHandler(handler func()) {
	rs.nextHandler = handler
}

func (rs *ResultScreen) SetQuitHandler(handler func()) {
	rs.quitHandler = handler
}

func (rs *ResultScreen) Update(snap game.Snapshot) {
	rs.message.Text = snap.Message
	rs.message.Refresh()
	rs.winsText.Text = WinsLabel(snap.Wins)
	rs.winsText.Refresh()
	rs.PlayerHand.SetCards(snap.Player, false, snap.PlayerValue, snap.PlayerSoft)
	rs.DealerHand.SetCards(snap.Dealer, false, snap.DealerValue, false)
}

func (rs *ResultScreen) Message() string {
	return rs.message.Text
}

func (rs *ResultScreen) onNext() {
	if rs.nextHandler != nil {
		rs.nextHandler()
	}
}

func (rs *ResultScreen) onQuit() {
	if rs.quitHandler != nil {
		rs.quitHandler()
	}
}
