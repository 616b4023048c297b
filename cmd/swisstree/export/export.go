// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package export implements a command to write
// a view of a species tree
// as an NHX or a time-calibrated tree file.
package export

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/js-arias/command"
	"github.com/js-arias/swisstree/project"
	"github.com/js-arias/swisstree/taxa"
	"github.com/js-arias/swisstree/tree"
	"github.com/js-arias/swisstree/views"
	"github.com/js-arias/timetree"
)

var Command = &command.Command{
	Usage: `export [--collapse] [--threshold <value>] [--key <attribute>]
	[--prune] [--format nhx|tsv] [<project-file>]`,
	Short: "export a view of a species tree",
	Long: `
Command export reads the species tree of a swisstree project and writes the
ultrametric, ladderized tree used to draw the images in the standard output.

The argument of the command is the name of the project file. If no project is
given, the tree will be read from the file 'swisstree_speciestree.nhx' in the
current directory.

By default, the complete tree is written. Use the flag --collapse to write the
tree with the nodes with support below the threshold collapsed. The threshold
is defined in the style file of the project (by default 90), use the flag
--threshold to set a different value. Use the flag --key to read the support
from a different NHX attribute.

If the flag --prune is set, the tree will be pruned to the species of the taxa
file of the project.

By default the tree is written in NHX format, keeping the node attributes. Use
the flag --format with 'tsv' to write the tree as a time-calibrated tree
tab-delimited file, in which the age of the root is the ultrametric length of
the style (by default 100 million years), and terminals are named with the
species name.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var collapseFlag bool
var pruneFlag bool
var threshold float64
var supportKey string
var format string

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&collapseFlag, "collapse", false, "")
	c.Flags().BoolVar(&pruneFlag, "prune", false, "")
	c.Flags().Float64Var(&threshold, "threshold", 0, "")
	c.Flags().StringVar(&supportKey, "key", "", "")
	c.Flags().StringVar(&format, "format", "nhx", "")
}

// millionYears is the number of years in a million years.
const millionYears = 1_000_000

func run(c *command.Command, args []string) error {
	format = strings.ToLower(format)
	if format != "nhx" && format != "tsv" {
		return c.UsageError(fmt.Sprintf("unknown format %q", format))
	}

	p := project.New()
	if len(args) > 0 {
		var err error
		p, err = project.Read(args[0])
		if err != nil {
			return err
		}
	}

	st, err := p.Style()
	if err != nil {
		return err
	}
	c.Flags().Visit(func(f *flag.Flag) {
		if f.Name == "threshold" {
			st.Threshold = threshold
		}
	})
	if supportKey != "" {
		st.Key = supportKey
	}
	if err := st.Validate(); err != nil {
		return c.UsageError(err.Error())
	}

	t, err := p.Tree()
	if err != nil {
		return err
	}

	var codes taxa.Set
	if pruneFlag {
		codes, err = p.Taxa()
		if err != nil {
			return err
		}
		if codes == nil {
			msg := fmt.Sprintf("taxa file not defined in project %q", p.Name())
			return c.UsageError(msg)
		}
	}

	vs, err := views.Build(t, st, codes)
	if err != nil {
		return err
	}
	name := "allbranches"
	if collapseFlag {
		name = views.CollapsedName(st.Threshold)
	}
	if pruneFlag {
		name = "pruned_" + name
	}
	var v views.View
	for _, x := range vs {
		if x.Name == name {
			v = x
			break
		}
	}

	if format == "tsv" {
		return writeTSV(c.Stdout(), v, st.Length)
	}
	return v.Tree.WriteNHX(c.Stdout())
}

func writeTSV(w io.Writer, v views.View, length float64) error {
	var buf bytes.Buffer
	if err := v.Tree.WriteNewick(&buf, speciesLabel); err != nil {
		return err
	}

	tn := v.Tree.Name() + "_" + v.Name
	tc, err := timetree.Newick(&buf, tn, int64(length*millionYears))
	if err != nil {
		return fmt.Errorf("tree %q: %v", tn, err)
	}
	return tc.TSV(w)
}

// speciesLabel returns the species name of a terminal,
// with spaces replaced by underscores.
func speciesLabel(n *tree.Node) string {
	if !n.IsLeaf() {
		return ""
	}
	name, err := taxa.ParseName(n.Name)
	if err != nil {
		return n.Name
	}
	return strings.ReplaceAll(name.Display, " ", "_")
}
