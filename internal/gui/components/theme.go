package components

import "image/color"

var (
	FeltGreen  = color.NRGBA{R: 0, G: 117, B: 44, A: 255}
	Gold       = color.NRGBA{R: 255, G: 203, B: 0, A: 255}
	OffWhite   = color.NRGBA{R: 245, G: 245, B: 245, A: 255}
	CardFace   = color.NRGBA{R: 200, G: 200, B: 200, A: 255}
	CardBack   = color.NRGBA{R: 80, G: 80, B: 80, A: 255}
	CardBorder = color.NRGBA{R: 80, G: 80, B: 80, A: 255}
	InkBlack   = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	InkRed     = color.NRGBA{R: 190, G: 33, B: 55, A: 255}
)

const (
	CardWidth   = 100
	CardHeight  = 140
	CardStride  = 120
	CardRadius  = 10
	CardText    = 20
	ButtonWidth = 200
	ButtonHigh  = 50
)
