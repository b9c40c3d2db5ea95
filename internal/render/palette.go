package render

import (
	"image/color"

	"github.com/pspoerri/isea/internal/isea"
)

// Palette assigns a color to every face.
type Palette [isea.NumberOfFaces]color.RGBA

// DefaultPalette colors the four rings of faces in distinct hues. Adjacent
// faces of a ring alternate in lightness.
var DefaultPalette = Palette{
	// north cap
	{0x1f, 0x77, 0xb4, 0xff}, {0x6b, 0xae, 0xd6, 0xff}, {0x1f, 0x77, 0xb4, 0xff}, {0x6b, 0xae, 0xd6, 0xff}, {0x31, 0x82, 0xbd, 0xff},
	// northern belt
	{0x2c, 0xa0, 0x2c, 0xff}, {0x98, 0xdf, 0x8a, 0xff}, {0x2c, 0xa0, 0x2c, 0xff}, {0x98, 0xdf, 0x8a, 0xff}, {0x41, 0xab, 0x5d, 0xff},
	// southern belt
	{0xff, 0x7f, 0x0e, 0xff}, {0xff, 0xbb, 0x78, 0xff}, {0xff, 0x7f, 0x0e, 0xff}, {0xff, 0xbb, 0x78, 0xff}, {0xfd, 0x8d, 0x3c, 0xff},
	// south cap
	{0x94, 0x67, 0xbd, 0xff}, {0xc5, 0xb0, 0xd5, 0xff}, {0x94, 0x67, 0xbd, 0xff}, {0xc5, 0xb0, 0xd5, 0xff}, {0x80, 0x7d, 0xba, 0xff},
}

// EdgeColor is drawn on pixels whose right or lower neighbor lies on
// another face.
var EdgeColor = color.RGBA{0x20, 0x20, 0x20, 0xff}

// shade darkens c by factor in [0, 1].
func shade(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}
