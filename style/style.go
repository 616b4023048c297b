// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package style implements reading and writing
// of tree style files.
//
// A style file is a TOML file
// with the parameters used to draw a tree.
package style

import (
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/js-arias/swisstree/support"
	"github.com/js-arias/swisstree/tree"
)

// A Style is a set of parameters
// used to draw trees.
type Style struct {
	// Width of the image, in pixels
	Width int `toml:"width"`

	// Resolution of raster images, in dots per inch
	DPI int `toml:"dpi"`

	// Pixels per unit of branch length
	Scale float64 `toml:"scale"`

	// Angle, in degrees,
	// of the first terminal in circular drawings
	ArcStart float64 `toml:"arc-start"`

	// Angular span, in degrees,
	// used by circular drawings
	ArcSpan float64 `toml:"arc-span"`

	// Width of branch lines, in pixels
	LineWidth float64 `toml:"line-width"`

	// Size of terminal labels, in points
	FontSize float64 `toml:"font-size"`

	// Name of the support palette
	Palette string `toml:"palette"`

	// NHX attribute with the support values
	Key string `toml:"key"`

	// Minimum support of the nodes kept
	// in collapsed trees
	Threshold float64 `toml:"threshold"`

	// Distance between the root and the terminals
	// in ultrametric trees
	Length float64 `toml:"length"`

	// Drawing modes ("c" or "r")
	Modes []string `toml:"modes"`

	// Output formats ("png", "pdf", or "svg")
	Formats []string `toml:"formats"`
}

// Default returns the default style.
func Default() Style {
	return Style{
		Width:     1080,
		DPI:       300,
		Scale:     4,
		ArcStart:  0,
		ArcSpan:   340,
		LineWidth: 2,
		FontSize:  12,
		Palette:   "named",
		Key:       tree.SupportKey,
		Threshold: 90,
		Length:    100,
		Modes:     []string{"c", "r"},
		Formats:   []string{"png", "pdf", "svg"},
	}
}

// Read reads a style from a TOML file.
// Undefined values are taken from the default style.
//
// Here is an example file:
//
//	# swisstree style
//	width = 1080
//	dpi = 300
//	arc-span = 340
//	palette = "blind"
//	threshold = 90
//	formats = ["png", "svg"]
func Read(r io.Reader) (Style, error) {
	s := Default()
	md, err := toml.NewDecoder(r).Decode(&s)
	if err != nil {
		return Style{}, err
	}
	if un := md.Undecoded(); len(un) > 0 {
		return Style{}, fmt.Errorf("unknown style key %q", un[0].String())
	}
	if err := s.Validate(); err != nil {
		return Style{}, err
	}
	return s, nil
}

// Write writes a style as a TOML file.
func (s Style) Write(w io.Writer) error {
	fmt.Fprintf(w, "# swisstree style\n")
	return toml.NewEncoder(w).Encode(s)
}

var validFormats = map[string]bool{
	"png": true,
	"pdf": true,
	"svg": true,
}

// Validate returns an error
// if a style parameter is invalid.
func (s Style) Validate() error {
	if s.Width <= 0 {
		return fmt.Errorf("invalid width %d", s.Width)
	}
	if s.DPI <= 0 {
		return fmt.Errorf("invalid dpi %d", s.DPI)
	}
	if s.Scale <= 0 {
		return fmt.Errorf("invalid scale %.6f", s.Scale)
	}
	if s.ArcSpan <= 0 || s.ArcSpan > 360 {
		return fmt.Errorf("invalid arc span %.6f", s.ArcSpan)
	}
	if s.LineWidth <= 0 {
		return fmt.Errorf("invalid line width %.6f", s.LineWidth)
	}
	if s.FontSize <= 0 {
		return fmt.Errorf("invalid font size %.6f", s.FontSize)
	}
	if s.Threshold < 0 {
		return fmt.Errorf("invalid threshold %.6f", s.Threshold)
	}
	if s.Length <= 0 {
		return fmt.Errorf("invalid ultrametric length %.6f", s.Length)
	}
	if s.Key == "" {
		return fmt.Errorf("undefined support key")
	}
	if _, err := support.ParsePalette(s.Palette); err != nil {
		return err
	}
	for _, m := range s.Modes {
		if m != "c" && m != "r" {
			return fmt.Errorf("invalid drawing mode %q", m)
		}
	}
	for _, f := range s.Formats {
		if !validFormats[strings.ToLower(f)] {
			return fmt.Errorf("invalid image format %q", f)
		}
	}
	return nil
}
