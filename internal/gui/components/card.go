package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"blackjack/internal/cards"
)

const HiddenLabel = "Hidden"

// CardView draws a single card face up, or face down when hidden.
type CardView struct {
	container *fyne.Container
	rank      *canvas.Text
	suit      *canvas.Text
}

func NewCardView(card cards.Card, hidden bool) *CardView {
	background := canvas.NewRectangle(CardFace)
	background.StrokeColor = CardBorder
	background.StrokeWidth = 2
	background.CornerRadius = CardRadius
	background.SetMinSize(fyne.NewSize(CardWidth, CardHeight))

	var rank, suit *canvas.Text
	var face fyne.CanvasObject
	if hidden {
		background.FillColor = CardBack
		background.StrokeColor = InkBlack
		rank = canvas.NewText(HiddenLabel, OffWhite)
		rank.TextSize = CardText
		face = container.NewCenter(rank)
	} else {
		ink := InkBlack
		if card.Suit.Red() {
			ink = InkRed
		}
		rank = canvas.NewText(card.Rank.String(), ink)
		rank.TextSize = CardText
		rank.TextStyle = fyne.TextStyle{Bold: true}
		suit = canvas.NewText(card.Suit.Symbol()+" "+card.Suit.String(), ink)
		suit.TextSize = CardText - 4
		face = container.NewPadded(container.NewVBox(rank, suit))
	}

	return &CardView{
		container: container.NewStack(background, face),
		rank:      rank,
		suit:      suit,
	}
}

func (cv *CardView) GetContainer() *fyne.Container {
	return cv.container
}

// Label returns the text shown on the card.
func (cv *CardView) Label() string {
	if cv.suit == nil {
		return cv.rank.Text
	}
	return cv.rank.Text + "\n" + cv.suit.Text
}
