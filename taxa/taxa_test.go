// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package taxa_test

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/js-arias/swisstree/taxa"
)

func TestParseName(t *testing.T) {
	tests := map[string]taxa.Name{
		"HUMAN__Homo_sapiens":            {Code: "HUMAN", Display: "Homo sapiens"},
		"MOUSE__Mus_musculus":            {Code: "MOUSE", Display: "Mus musculus"},
		" ECOLI __Escherichia_coli_K-12": {Code: "ECOLI", Display: "Escherichia coli K-12"},
		"YEAST__Saccharomyces":           {Code: "YEAST", Display: "Saccharomyces"},
	}

	for label, want := range tests {
		got, err := taxa.ParseName(label)
		if err != nil {
			t.Errorf("label %q: unexpected error: %v", label, err)
			continue
		}
		if got != want {
			t.Errorf("label %q: got %+v, want %+v", label, got, want)
		}
	}
}

func TestParseNameErrors(t *testing.T) {
	for _, label := range []string{
		"HUMAN",
		"Homo_sapiens",
		"HUMAN__Homo__sapiens",
		"__Homo_sapiens",
		"",
	} {
		_, err := taxa.ParseName(label)
		if !errors.Is(err, taxa.ErrMalformedName) {
			t.Errorf("label %q: got error %v, want %v", label, err, taxa.ErrMalformedName)
		}
	}
}

func TestSet(t *testing.T) {
	s := taxa.NewSet("MOUSE", "HUMAN", " CHICK ", "")
	if s.Len() != 3 {
		t.Errorf("len: got %d, want %d", s.Len(), 3)
	}
	if !s.Has("CHICK") {
		t.Errorf("code %q not found", "CHICK")
	}
	if s.Has("RAT") {
		t.Errorf("code %q found", "RAT")
	}

	want := []string{"CHICK", "HUMAN", "MOUSE"}
	if got := s.Codes(); !reflect.DeepEqual(got, want) {
		t.Errorf("codes: got %v, want %v", got, want)
	}
}

func TestReadTSV(t *testing.T) {
	in := `# species for the reduced tree
species	code
Homo sapiens	HUMAN
Mus musculus	MOUSE
# a comment
Gallus gallus	CHICK
Unknown
`
	s, err := taxa.ReadTSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unable to read data: %v", err)
	}

	want := []string{"CHICK", "HUMAN", "MOUSE"}
	if got := s.Codes(); !reflect.DeepEqual(got, want) {
		t.Errorf("codes: got %v, want %v", got, want)
	}

	if _, err := taxa.ReadTSV(strings.NewReader("taxon\nHUMAN\n")); err == nil {
		t.Errorf("missing field: expecting error")
	}
}
