// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/js-arias/swisstree/style"
	"github.com/js-arias/swisstree/taxa"
	"github.com/js-arias/swisstree/tree"
)

// Tree reads the tree file
// as defined in a project.
// The name of the tree is the file name
// without its extension.
func (p *Project) Tree() (*tree.Tree, error) {
	name := p.TreePath()

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tn := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	t, err := tree.ReadNHX(f, tn)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	return t, nil
}

// Taxa reads the species codes file
// as defined in a project.
// If the project does not define a taxa file,
// it returns a nil set.
func (p *Project) Taxa() (taxa.Set, error) {
	name := p.Path(Taxa)
	if name == "" {
		return nil, nil
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := taxa.ReadTSV(f)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	return s, nil
}

// Style reads the style file
// as defined in a project.
// If the project does not define a style file,
// it returns the default style.
func (p *Project) Style() (style.Style, error) {
	name := p.Path(Style)
	if name == "" {
		return style.Default(), nil
	}

	f, err := os.Open(name)
	if err != nil {
		return style.Style{}, err
	}
	defer f.Close()

	s, err := style.Read(f)
	if err != nil {
		return style.Style{}, fmt.Errorf("on file %q: %v", name, err)
	}
	return s, nil
}
