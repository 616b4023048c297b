// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package views builds the different views of a species tree
// (complete or pruned to a set of species,
// with all branches or collapsed by support)
// and writes them as images.
package views

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/js-arias/swisstree/render"
	"github.com/js-arias/swisstree/style"
	"github.com/js-arias/swisstree/taxa"
	"github.com/js-arias/swisstree/tree"
)

// A View is a version of a tree
// prepared for drawing.
type View struct {
	// Name of the view,
	// for example "allbranches" or "collapsed90".
	Name string

	Tree *tree.Tree

	// Number of nodes removed by the collapse
	Collapsed int
}

// CollapsedName returns the name of a collapsed view.
func CollapsedName(threshold float64) string {
	return fmt.Sprintf("collapsed%g", threshold)
}

// Build returns the views of a tree.
//
// The tree is ladderized and made ultrametric
// (this is the "allbranches" view),
// then all nodes with a support below the style threshold
// are collapsed
// (the "collapsed<threshold>" view).
//
// If codes is not nil,
// the same views are built
// for a copy of the tree pruned
// to the species in the set,
// with a "pruned_" prefix.
//
// The source tree is not modified.
func Build(t *tree.Tree, st style.Style, codes taxa.Set) ([]View, error) {
	full := t.Clone()
	full.Ladderize()
	full.Ultrametric(st.Length)

	vs, err := build("", full, st)
	if err != nil {
		return nil, err
	}
	if codes == nil {
		return vs, nil
	}

	pruned, err := Prune(full, codes)
	if err != nil {
		return nil, err
	}
	pruned.Ultrametric(st.Length)
	pv, err := build("pruned_", pruned, st)
	if err != nil {
		return nil, err
	}
	return append(vs, pv...), nil
}

func build(prefix string, t *tree.Tree, st style.Style) ([]View, error) {
	all := View{
		Name: prefix + "allbranches",
		Tree: t,
	}

	c := t.Clone()
	n, err := c.Collapse(st.Key, st.Threshold)
	if err != nil {
		return nil, fmt.Errorf("tree %q: %v", t.Name(), err)
	}
	c.Ultrametric(st.Length)
	col := View{
		Name:      prefix + CollapsedName(st.Threshold),
		Tree:      c,
		Collapsed: n,
	}
	return []View{all, col}, nil
}

// Prune returns a copy of a tree
// with only the terminals with a species code
// in the given set.
func Prune(t *tree.Tree, codes taxa.Set) (*tree.Tree, error) {
	var parseErr error
	p := t.Clone()
	err := p.Prune(func(n *tree.Node) bool {
		name, err := taxa.ParseName(n.Name)
		if err != nil {
			if parseErr == nil {
				parseErr = err
			}
			return false
		}
		return codes.Has(name.Code)
	})
	if parseErr != nil {
		return nil, parseErr
	}
	if err != nil {
		return nil, fmt.Errorf("tree %q: pruned to %d species: %w", t.Name(), codes.Len(), err)
	}
	return p, nil
}

// FileName returns the name of the image file
// of a view.
func FileName(prefix, view string, m render.Mode, format string) string {
	return fmt.Sprintf("%s_%s_%s.%s", prefix, view, m, format)
}

// Write draws the views
// in each drawing mode and format
// defined in the style,
// and returns the names of the written files.
func Write(vs []View, st style.Style, prefix string, logger *log.Logger) ([]string, error) {
	if logger == nil {
		logger = log.Default()
	}

	var files []string
	for _, v := range vs {
		logger.Info("drawing view", "view", v.Name, "terminals", len(v.Tree.Leaves()), "nodes", v.Tree.Len())
		for _, ms := range st.Modes {
			m, err := render.ParseMode(ms)
			if err != nil {
				return files, err
			}
			opt, err := render.NewOptions(st, m)
			if err != nil {
				return files, err
			}
			img, err := render.New(v.Tree, opt)
			if err != nil {
				return files, fmt.Errorf("view %s: %v", v.Name, err)
			}
			for _, f := range st.Formats {
				name := FileName(prefix, v.Name, m, f)
				if err := img.WriteFile(name); err != nil {
					return files, err
				}
				w, h := img.Size()
				logger.Debug("image written", "file", name, "width", w, "height", h)
				files = append(files, name)
			}
		}
	}
	return files, nil
}
