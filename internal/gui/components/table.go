package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"blackjack/internal/game"
)

const (
	Instructions = "Press H (Hit) and S (Stop)"
	HitLabel     = "Hit"
	StandLabel   = "Stand"
)

// TableScreen shows both hands while a round is in play.
type TableScreen struct {
	container   *fyne.Container
	winsText    *canvas.Text
	statusText  *canvas.Text
	deckText    *canvas.Text
	PlayerHand  *HandView
	DealerHand  *HandView
	HitButton   *widget.Button
	StandButton *widget.Button

	hitHandler   func()
	standHandler func()
}

func NewTableScreen() *TableScreen {
	ts := &TableScreen{}

	title := canvas.NewText(GameTitle, Gold)
	title.TextSize = headingSize
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Alignment = fyne.TextAlignCenter

	ts.winsText = canvas.NewText(WinsLabel(0), OffWhite)
	ts.winsText.TextSize = CardText
	instructions := canvas.NewText(Instructions, OffWhite)
	instructions.TextSize = CardText
	ts.statusText = canvas.NewText("", Gold)
	ts.statusText.TextSize = CardText
	ts.deckText = canvas.NewText("", OffWhite)
	ts.deckText.TextSize = CardText - 6

	ts.PlayerHand = NewHandView("Your Hand:")
	ts.DealerHand = NewHandView("Dealer's Hand:")

	ts.HitButton = widget.NewButton(HitLabel, ts.onHit)
	ts.StandButton = widget.NewButton(StandLabel, ts.onStand)

	buttons := container.NewHBox(
		container.NewGridWrap(fyne.NewSize(120, 40), ts.HitButton),
		container.NewGridWrap(fyne.NewSize(120, 40), ts.StandButton),
		ts.statusText,
	)

	ts.container = container.NewPadded(container.NewVBox(
		title,
		ts.winsText,
		instructions,
		ts.PlayerHand.GetContainer(),
		ts.DealerHand.GetContainer(),
		buttons,
		ts.deckText,
	))
	return ts
}

func (ts *TableScreen) GetContainer() *fyne.Container {
	return ts.container
}

func (ts *TableScreen) SetHitHandler(handler func()) {
	ts.hitHandler = handler
}

func (ts *TableScreen) SetStandHandler(handler func()) {
	ts.standHandler = handler
}

// Update applies a frame of display data.
func (ts *TableScreen) Update(snap game.Snapshot) {
	ts.winsText.Text = WinsLabel(snap.Wins)
	ts.winsText.Refresh()
	ts.statusText.Text = snap.Message
	ts.statusText.Refresh()
	ts.deckText.Text = fmt.Sprintf("Cards left: %d", snap.DeckSize)
	ts.deckText.Refresh()

	ts.PlayerHand.SetCards(snap.Player, false, snap.PlayerValue, snap.PlayerSoft)
	ts.DealerHand.SetCards(snap.Dealer, snap.HideHoleCard, snap.DealerValue, false)

	if snap.Phase == game.PhasePlayerTurn {
		ts.HitButton.Enable()
		ts.StandButton.Enable()
	} else {
		ts.HitButton.Disable()
		ts.StandButton.Disable()
	}
}

func (ts *TableScreen) Status() string {
	return ts.statusText.Text
}

func (ts *TableScreen) Wins() string {
	return ts.winsText.Text
}

func (ts *TableScreen) onHit() {
	if ts.hitHandler != nil {
		ts.hitHandler()
	}
}

func (ts *TableScreen) onStand() {
	if ts.standHandler != nil {
		ts.standHandler()
	}
}

func WinsLabel(wins int) string {
	return fmt.Sprintf("Player Wins: %d", wins)
}
