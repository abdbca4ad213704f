package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"blackjack/internal/cards"
	"blackjack/internal/gui/layout"
)

// HandView shows a titled row of cards and the hand total.
type HandView struct {
	container *fyne.Container
	title     string
	heading   *canvas.Text
	row       *fyne.Container
	views     []*CardView
}

func NewHandView(title string) *HandView {
	heading := canvas.NewText(title, OffWhite)
	heading.TextSize = CardText

	row := container.New(layout.NewCardRowLayout(fyne.NewSize(CardWidth, CardHeight), CardStride))

	return &HandView{
		container: container.NewVBox(heading, row),
		title:     title,
		heading:   heading,
		row:       row,
	}
}

func (hv *HandView) GetContainer() *fyne.Container {
	return hv.container
}

// SetCards redraws the hand. With hideSecond the second card is drawn face
// down. value is shown next to the title; soft adds a "soft" marker.
func (hv *HandView) SetCards(hand []cards.Card, hideSecond bool, value int, soft bool) {
	hv.views = hv.views[:0]
	objects := make([]fyne.CanvasObject, 0, len(hand))
	for i, c := range hand {
		view := NewCardView(c, hideSecond && i == 1)
		hv.views = append(hv.views, view)
		objects = append(objects, view.GetContainer())
	}
	hv.row.Objects = objects
	hv.row.Refresh()

	switch {
	case len(hand) == 0:
		hv.heading.Text = hv.title
	case soft:
		hv.heading.Text = fmt.Sprintf("%s (soft %d)", hv.title, value)
	default:
		hv.heading.Text = fmt.Sprintf("%s (%d)", hv.title, value)
	}
	hv.heading.Refresh()
}

// Labels returns the text of each card in display order.
func (hv *HandView) Labels() []string {
	labels := make([]string, 0, len(hv.views))
	for _, v := range hv.views {
		labels = append(labels, v.Label())
	}
	return labels
}

func (hv *HandView) Heading() string {
	return hv.heading.Text
}
