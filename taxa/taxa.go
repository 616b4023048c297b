// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package taxa implements the parsing of terminal labels
// into species codes and species names,
// and sets of species codes.
package taxa

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
)

// Separator is the string that separates
// the species code from the species name
// in a terminal label.
const Separator = "__"

// ErrMalformedName is returned when a terminal label
// can not be split into a species code and a species name.
var ErrMalformedName = errors.New("malformed terminal name")

// A Name is a parsed terminal label.
type Name struct {
	// Code is the species code,
	// for example "HUMAN".
	Code string

	// Display is the species name,
	// for example "Homo sapiens".
	Display string
}

// ParseName parses a terminal label
// of the form <code>__<species_name>,
// for example "HUMAN__Homo_sapiens".
// Underscores in the species name are replaced by spaces.
func ParseName(label string) (Name, error) {
	fields := strings.Split(label, Separator)
	if len(fields) != 2 {
		return Name{}, fmt.Errorf("%w: %q: got %d fields, want 2", ErrMalformedName, label, len(fields))
	}

	code := strings.TrimSpace(fields[0])
	if code == "" {
		return Name{}, fmt.Errorf("%w: %q: empty code", ErrMalformedName, label)
	}
	return Name{
		Code:    code,
		Display: strings.ReplaceAll(fields[1], "_", " "),
	}, nil
}

// A Set is a set of species codes.
type Set map[string]bool

// NewSet creates a new set
// with the indicated codes.
func NewSet(codes ...string) Set {
	s := make(Set, len(codes))
	for _, c := range codes {
		s.Add(c)
	}
	return s
}

// Add adds a code to the set.
func (s Set) Add(code string) {
	code = strings.TrimSpace(code)
	if code == "" {
		return
	}
	s[code] = true
}

// Has returns true if the code is in the set.
func (s Set) Has(code string) bool {
	return s[code]
}

// Codes returns the codes in the set,
// sorted alphabetically.
func (s Set) Codes() []string {
	codes := make([]string, 0, len(s))
	for c := range s {
		codes = append(codes, c)
	}
	slices.Sort(codes)
	return codes
}

// Len returns the number of codes in the set.
func (s Set) Len() int {
	return len(s)
}

// ReadTSV reads a set of species codes
// from a TSV file.
//
// The TSV file must contain the field "code",
// other fields will be ignored.
//
// Here is an example file:
//
//	# species for the reduced tree
//	code	species
//	HUMAN	Homo sapiens
//	MOUSE	Mus musculus
//	CHICK	Gallus gallus
func ReadTSV(r io.Reader) (Set, error) {
	tab := csv.NewReader(r)
	tab.Comma = '\t'
	tab.Comment = '#'
	tab.FieldsPerRecord = -1

	head, err := tab.Read()
	if err != nil {
		return nil, fmt.Errorf("while reading header: %v", err)
	}
	fields := make(map[string]int, len(head))
	for i, h := range head {
		h = strings.ToLower(strings.TrimSpace(h))
		fields[h] = i
	}
	f := "code"
	if _, ok := fields[f]; !ok {
		return nil, fmt.Errorf("expecting field %q", f)
	}

	s := make(Set)
	for {
		row, err := tab.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tab.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}
		if len(row) <= fields[f] {
			continue
		}
		s.Add(row[fields[f]])
	}
	return s, nil
}
