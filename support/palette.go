// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package support

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/js-arias/blind"
	"golang.org/x/image/colornames"
)

// A Palette returns the color of a support tier.
type Palette interface {
	Color(t Tier) color.Color
}

// Named is the palette of the tier names,
// using the SVG color keywords.
type Named struct{}

func (n Named) Color(t Tier) color.Color {
	if c, ok := colornames.Map[t.String()]; ok {
		return c
	}
	return colornames.Black
}

// A Gradienter is a color gradient
// defined between 0 and 1.
type Gradienter interface {
	Gradient(v float64) color.Color
}

// Scale is a palette that maps tiers
// into a color gradient,
// Yellow at 0 and Green at 1.
type Scale struct {
	Gradienter
}

func (s Scale) Color(t Tier) color.Color {
	return s.Gradient(float64(t-Yellow) / float64(Green-Yellow))
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Gray returns a gray scale
// between 200 (light gray)
// and 0 (black).
type Gray struct{}

func (g Gray) Gradient(v float64) color.Color {
	c := 200 - uint8(clamp(v)*200)
	return color.RGBA{c, c, c, 255}
}

// Blind is the default color-blind safe gradient
// of the blind package.
type Blind struct{}

func (b Blind) Gradient(v float64) color.Color {
	return blind.Gradient(clamp(v))
}

// Incandescent is the incandescent color scheme
// of Paul Tol
// <https://personal.sron.nl/~pault/#fig:scheme_incandescent>.
type Incandescent struct{}

func (i Incandescent) Gradient(v float64) color.Color {
	return blind.Sequential(blind.Incandescent, clamp(v))
}

// Iridescent is the iridescent color scheme
// of Paul Tol
// <https://personal.sron.nl/~pault/#fig:scheme_iridescent>.
type Iridescent struct{}

func (i Iridescent) Gradient(v float64) color.Color {
	return blind.Sequential(blind.Iridescent, clamp(v))
}

// RainbowPurpleToRed is the rainbow color scheme
// of Paul Tol
// <https://personal.sron.nl/~pault/#fig:scheme_rainbow_smooth>
// starting at purple and ending at red.
type RainbowPurpleToRed struct{}

func (r RainbowPurpleToRed) Gradient(v float64) color.Color {
	return blind.Sequential(blind.RainbowPurpleToRed, clamp(v))
}

// PaletteNames are the valid palette names.
var PaletteNames = []string{
	"named",
	"blind",
	"gray",
	"incandescent",
	"iridescent",
	"rainbow",
}

// ParsePalette returns a palette from its name.
// An empty name returns the Named palette.
func ParsePalette(name string) (Palette, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "named":
		return Named{}, nil
	case "blind":
		return Scale{Blind{}}, nil
	case "gray":
		return Scale{Gray{}}, nil
	case "incandescent":
		return Scale{Incandescent{}}, nil
	case "iridescent":
		return Scale{Iridescent{}}, nil
	case "rainbow":
		return Scale{RainbowPurpleToRed{}}, nil
	}
	return nil, fmt.Errorf("unknown palette %q", name)
}
