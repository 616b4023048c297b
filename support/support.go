// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package support implements the classification
// of node support values
// (for example, bootstrap percentages)
// into color tiers.
package support

import "fmt"

// A Tier is a support class.
// Tiers are ordered,
// so a better supported tier has a larger value.
type Tier int

// Support tiers.
const (
	Yellow Tier = iota
	Red
	Pink
	DarkBlue
	Blue
	Green
)

// Tiers returns all the tiers,
// from the most to the least supported.
func Tiers() []Tier {
	return []Tier{Green, Blue, DarkBlue, Pink, Red, Yellow}
}

// thresholds are the minimum support value of each tier.
var thresholds = [...]float64{
	Green:    90,
	Blue:     70,
	DarkBlue: 50,
	Pink:     30,
	Red:      10,
}

// TierOf returns the tier of a support value.
// Thresholds are tested from the largest to the smallest,
// and the first match is used:
//
//	B >= 90       green
//	70 <= B < 90  blue
//	50 <= B < 70  dark blue
//	30 <= B < 50  pink
//	10 <= B < 30  red
//	B < 10        yellow
func TierOf(b float64) Tier {
	for _, t := range Tiers() {
		if t == Yellow {
			break
		}
		if b >= thresholds[t] {
			return t
		}
	}
	return Yellow
}

// Min returns the minimum support value of the tier.
// For Yellow it returns zero,
// although any value below Red is yellow.
func (t Tier) Min() float64 {
	if t <= Yellow || t > Green {
		return 0
	}
	return thresholds[t]
}

var names = [...]string{
	Yellow:   "yellow",
	Red:      "red",
	Pink:     "pink",
	DarkBlue: "darkblue",
	Blue:     "blue",
	Green:    "green",
}

// String returns the color name of the tier.
func (t Tier) String() string {
	if t < Yellow || t > Green {
		return fmt.Sprintf("tier(%d)", int(t))
	}
	return names[t]
}
