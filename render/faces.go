// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"image/color"

	"github.com/js-arias/swisstree/support"
	"github.com/js-arias/swisstree/taxa"
	"github.com/js-arias/swisstree/tree"
	"golang.org/x/image/colornames"
)

// Position is the place of a face
// in relation to a terminal.
type Position int

// Face positions.
const (
	// BranchRight faces are placed
	// at the tip of the terminal branch.
	BranchRight Position = iota

	// Aligned faces are placed in a column
	// after all branch-right faces.
	Aligned
)

// A Face is a text label of a node.
type Face struct {
	Text     string
	Color    color.Color
	Italic   bool
	Position Position

	// Margins in scene pixels
	MarginLeft  float64
	MarginRight float64
}

// Style is the style of a node.
type Style struct {
	// Color of the branch
	// and the line that connects the descendants
	LineColor color.Color

	// Width of the lines, in scene pixels
	LineWidth float64

	Faces []Face

	// Tier of the node,
	// only defined for internal nodes
	Tier support.Tier
}

var (
	codeColor    = colornames.Grey
	speciesColor = color.RGBA{0x44, 0x44, 0x44, 0xff}
)

// NodeStyle returns the drawing style of a node.
//
// Terminals are labeled with the species code
// (at the tip of the branch)
// and the species name
// (in italics, aligned);
// and their branches use the color of the best supported tier.
// Internal nodes use the color of the tier
// of their support value.
func NodeStyle(n *tree.Node, opt Options) (Style, error) {
	pal := opt.Palette
	if pal == nil {
		pal = support.Named{}
	}
	st := Style{
		LineWidth: opt.LineWidth,
	}

	if n.IsLeaf() {
		name, err := taxa.ParseName(n.Name)
		if err != nil {
			return Style{}, err
		}
		st.LineColor = pal.Color(support.Green)
		st.Tier = support.Green
		st.Faces = []Face{
			{
				Text:        name.Code,
				Color:       codeColor,
				Position:    BranchRight,
				MarginLeft:  4,
				MarginRight: 4,
			},
			{
				Text:     name.Display,
				Color:    speciesColor,
				Italic:   true,
				Position: Aligned,
			},
		}
		return st, nil
	}

	key := opt.Key
	if key == "" {
		key = tree.SupportKey
	}
	b, err := n.Support(key)
	if err != nil {
		return Style{}, fmt.Errorf("while styling node: %v", err)
	}
	st.Tier = support.TierOf(b)
	st.LineColor = pal.Color(st.Tier)
	return st, nil
}
