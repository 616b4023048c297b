// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package render

import (
	"fmt"

	"github.com/go-fonts/liberation/liberationsansitalic"
	"golang.org/x/image/font/opentype"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/font/liberation"
	"gonum.org/v1/plot/text"
)

// Typeface and variants of the labels.
//
// The italic face is stored as a variant with a normal style,
// as the PDF canvas registers every font
// without a style.
const (
	typeface      = "Liberation"
	sansVariant   = "Sans"
	italicVariant = "SansItalic"
)

// textHandler draws the labels
// using the Liberation fonts
// and the italic species face.
var textHandler = text.Plain{Fonts: newFontCache()}

func newFontCache() *font.Cache {
	coll := liberation.Collection()

	it, err := opentype.Parse(liberationsansitalic.TTF)
	if err != nil {
		panic(fmt.Sprintf("unable to parse italic font: %v", err))
	}
	coll = append(coll, font.Face{
		Font: font.Font{
			Typeface: typeface,
			Variant:  italicVariant,
		},
		Face: it,
	})
	return font.NewCache(coll)
}

// labelFont returns the font of a face.
func labelFont(italic bool, size float64) font.Font {
	fnt := font.Font{
		Typeface: typeface,
		Variant:  sansVariant,
		Size:     font.Length(size),
	}
	if italic {
		fnt.Variant = italicVariant
	}
	return fnt
}
