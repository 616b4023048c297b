// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package support_test

import (
	"image/color"
	"math"
	"testing"

	"github.com/js-arias/swisstree/support"
	"golang.org/x/image/colornames"
)

func TestTierOf(t *testing.T) {
	tests := []struct {
		b    float64
		want support.Tier
	}{
		{100, support.Green},
		{90, support.Green},
		{89.999, support.Blue},
		{70, support.Blue},
		{69.999, support.DarkBlue},
		{50, support.DarkBlue},
		{49.999, support.Pink},
		{30, support.Pink},
		{29.999, support.Red},
		{10, support.Red},
		{9.999, support.Yellow},
		{0, support.Yellow},
		{-5, support.Yellow},
		{250, support.Green},
	}

	for _, test := range tests {
		if got := support.TierOf(test.b); got != test.want {
			t.Errorf("support %.3f: got %v, want %v", test.b, got, test.want)
		}
	}
}

func TestTierMonotonic(t *testing.T) {
	prev := support.TierOf(-1)
	for b := -1.0; b <= 101; b += 0.25 {
		tr := support.TierOf(b)
		if tr < prev {
			t.Fatalf("support %.2f: tier %v is lower than %v", b, tr, prev)
		}
		prev = tr
	}

	for _, tr := range support.Tiers() {
		if got := support.TierOf(tr.Min()); got != tr {
			t.Errorf("tier %v: minimum %.2f has tier %v", tr, tr.Min(), got)
		}
	}
}

func TestTierString(t *testing.T) {
	want := []string{"green", "blue", "darkblue", "pink", "red", "yellow"}
	for i, tr := range support.Tiers() {
		if tr.String() != want[i] {
			t.Errorf("tier %d: got %q, want %q", i, tr.String(), want[i])
		}
	}
}

func TestPalette(t *testing.T) {
	p, err := support.ParsePalette("")
	if err != nil {
		t.Fatalf("default palette: %v", err)
	}
	tests := map[support.Tier]color.RGBA{
		support.Green:    colornames.Green,
		support.Blue:     colornames.Blue,
		support.DarkBlue: colornames.Darkblue,
		support.Pink:     colornames.Pink,
		support.Red:      colornames.Red,
		support.Yellow:   colornames.Yellow,
	}
	for tr, want := range tests {
		if got := p.Color(tr); got != want {
			t.Errorf("tier %v: got %v, want %v", tr, got, want)
		}
	}

	for _, name := range support.PaletteNames {
		p, err := support.ParsePalette(name)
		if err != nil {
			t.Errorf("palette %q: %v", name, err)
			continue
		}
		for _, tr := range support.Tiers() {
			if p.Color(tr) == nil {
				t.Errorf("palette %q: tier %v: nil color", name, tr)
			}
		}
	}

	if _, err := support.ParsePalette("sepia"); err == nil {
		t.Errorf("unknown palette: expecting error")
	}
}

func TestSummarize(t *testing.T) {
	s := support.Summarize([]float64{100, 95, 40, 75, 5})

	if s.N != 5 {
		t.Errorf("n: got %d, want %d", s.N, 5)
	}
	counts := map[support.Tier]int{
		support.Green:  2,
		support.Blue:   1,
		support.Pink:   1,
		support.Yellow: 1,
	}
	for _, tr := range support.Tiers() {
		if s.Count[tr] != counts[tr] {
			t.Errorf("tier %v: got %d, want %d", tr, s.Count[tr], counts[tr])
		}
	}
	if math.Abs(s.Mean-63) > 1e-9 {
		t.Errorf("mean: got %.4f, want %.4f", s.Mean, 63.0)
	}
	if s.Median != 75 {
		t.Errorf("median: got %.4f, want %.4f", s.Median, 75.0)
	}
	if s.Min != 5 || s.Max != 100 {
		t.Errorf("range: got [%.2f, %.2f], want [%.2f, %.2f]", s.Min, s.Max, 5.0, 100.0)
	}

	if e := support.Summarize(nil); e.N != 0 {
		t.Errorf("empty: got %d values", e.N)
	}
}
