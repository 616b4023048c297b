// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package render implements drawing of species trees,
// with branches colored by support,
// as PNG, PDF, or SVG images.
//
// A tree is drawn in scene units
// (one unit is a pixel of the scene)
// and the scene is then scaled
// to the requested image width,
// so line widths and font sizes
// keep their proportions with the tree.
package render

import (
	"fmt"
	"math"

	"github.com/js-arias/swisstree/style"
	"github.com/js-arias/swisstree/support"
	"github.com/js-arias/swisstree/tree"
)

// Mode is a drawing mode.
type Mode string

// Valid drawing modes.
const (
	Circular    Mode = "c"
	Rectangular Mode = "r"
)

// ParseMode returns a drawing mode from its name.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "c", "circular":
		return Circular, nil
	case "r", "rectangular":
		return Rectangular, nil
	}
	return "", fmt.Errorf("unknown drawing mode %q", s)
}

// Options are the parameters of a drawing.
type Options struct {
	Mode Mode

	// Width of the image, in pixels
	Width int

	// Resolution of raster images
	DPI int

	// Scene pixels per unit of branch length
	Scale float64

	// Start and span of circular drawings,
	// in degrees
	ArcStart float64
	ArcSpan  float64

	// Width of branches, in scene pixels
	LineWidth float64

	// Size of terminal labels, in scene pixels
	FontSize float64

	// Palette for the support tiers
	Palette support.Palette

	// NHX attribute with the support value
	Key string
}

// NewOptions returns the drawing options
// of a style for a given drawing mode.
func NewOptions(s style.Style, m Mode) (Options, error) {
	p, err := support.ParsePalette(s.Palette)
	if err != nil {
		return Options{}, err
	}
	return Options{
		Mode:      m,
		Width:     s.Width,
		DPI:       s.DPI,
		Scale:     s.Scale,
		ArcStart:  s.ArcStart,
		ArcSpan:   s.ArcSpan,
		LineWidth: s.LineWidth,
		FontSize:  s.FontSize,
		Palette:   p,
		Key:       s.Key,
	}, nil
}

// node is a node of the drawing.
type node struct {
	n     *tree.Node
	style Style

	depth float64 // distance from the root
	pos   float64 // terminal position

	anc  *node
	desc []*node
}

func copyTree(t *tree.Tree, opt Options) (root *node, leaves []*node, err error) {
	var cp func(n *tree.Node, anc *node) (*node, error)
	cp = func(n *tree.Node, anc *node) (*node, error) {
		st, err := NodeStyle(n, opt)
		if err != nil {
			return nil, err
		}
		nd := &node{
			n:     n,
			style: st,
			anc:   anc,
		}
		if anc != nil {
			nd.depth = anc.depth + n.Dist
		}

		if n.IsLeaf() {
			nd.pos = float64(len(leaves))
			leaves = append(leaves, nd)
			return nd, nil
		}

		for _, c := range n.Children {
			d, err := cp(c, nd)
			if err != nil {
				return nil, err
			}
			nd.desc = append(nd.desc, d)
		}
		// midpoint between first and last descendant
		nd.pos = (nd.desc[0].pos + nd.desc[len(nd.desc)-1].pos) / 2
		return nd, nil
	}

	root, err = cp(t.Root(), nil)
	if err != nil {
		return nil, nil, err
	}
	return root, leaves, nil
}

func maxDepth(leaves []*node) float64 {
	var max float64
	for _, l := range leaves {
		max = math.Max(max, l.depth)
	}
	return max
}
