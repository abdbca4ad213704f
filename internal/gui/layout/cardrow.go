package layout

import (
	"fyne.io/fyne/v2"
)

// CardRowLayout places every object at a fixed stride so a hand keeps its
// geometry as cards are added.
type CardRowLayout struct {
	cardSize fyne.Size
	stride   float32
}

func NewCardRowLayout(cardSize fyne.Size, stride float32) *CardRowLayout {
	return &CardRowLayout{
		cardSize: cardSize,
		stride:   stride,
	}
}

func (crl *CardRowLayout) Layout(objects []fyne.CanvasObject, containerSize fyne.Size) {
	x := float32(0)
	for _, obj := range objects {
		obj.Resize(crl.cardSize)
		obj.Move(fyne.NewPos(x, 0))
		x += crl.stride
	}
}

func (crl *CardRowLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	if len(objects) == 0 {
		return fyne.NewSize(0, crl.cardSize.Height)
	}

	width := crl.stride*float32(len(objects)-1) + crl.cardSize.Width
	return fyne.NewSize(width, crl.cardSize.Height)
}
