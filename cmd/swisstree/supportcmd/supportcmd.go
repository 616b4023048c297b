// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package supportcmd implements a command to print
// a summary of the node support values
// of a species tree.
package supportcmd

import (
	"fmt"
	"io"

	"github.com/js-arias/command"
	"github.com/js-arias/swisstree/project"
	"github.com/js-arias/swisstree/support"
	"github.com/js-arias/swisstree/tree"
)

var Command = &command.Command{
	Usage: "support [--key <attribute>] [--nodes] [<project-file>]",
	Short: "print a summary of node support values",
	Long: `
Command support reads the species tree of a swisstree project and prints the
number of internal nodes in each support color class, as well as the mean,
median, and 95% interval of the support values.

The argument of the command is the name of the project file. If no project is
given, the tree will be read from the file 'swisstree_speciestree.nhx' in the
current directory.

By default the support is read from the NHX attribute 'B'. Use the flag --key
to use a different attribute. Nodes without the attribute have a support of
100.

If the flag --nodes is set, the support and the color class of each internal
node will be printed, using as node name the labels of its two first
terminals.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var supportKey string
var nodesFlag bool

func setFlags(c *command.Command) {
	c.Flags().StringVar(&supportKey, "key", "", "")
	c.Flags().BoolVar(&nodesFlag, "nodes", false, "")
}

func run(c *command.Command, args []string) error {
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
	key := st.Key
	if supportKey != "" {
		key = supportKey
	}

	t, err := p.Tree()
	if err != nil {
		return err
	}

	var values []float64
	for _, n := range t.Nodes() {
		if n.IsLeaf() {
			continue
		}
		b, err := n.Support(key)
		if err != nil {
			return fmt.Errorf("tree %q: %v", t.Name(), err)
		}
		values = append(values, b)
		if nodesFlag {
			fmt.Fprintf(c.Stdout(), "%s\t%.2f\t%s\n", nodeName(n), b, support.TierOf(b))
		}
	}
	if nodesFlag {
		fmt.Fprintf(c.Stdout(), "\n")
	}

	printSummary(c.Stdout(), t.Name(), support.Summarize(values))
	return nil
}

func nodeName(n *tree.Node) string {
	var terms []string
	var walk func(n *tree.Node)
	walk = func(n *tree.Node) {
		if len(terms) >= 2 {
			return
		}
		if n.IsLeaf() {
			terms = append(terms, n.Name)
			return
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(n)
	if len(terms) < 2 {
		return terms[0]
	}
	return terms[0] + "+" + terms[1]
}

func printSummary(w io.Writer, name string, s support.Summary) {
	fmt.Fprintf(w, "Tree: %s\n", name)
	fmt.Fprintf(w, "\tinternal nodes: %d\n", s.N)
	if s.N == 0 {
		return
	}
	for _, t := range support.Tiers() {
		fmt.Fprintf(w, "\t%-9s [>= %5.1f]: %d\n", t, t.Min(), s.Count[t])
	}
	fmt.Fprintf(w, "\tmean: %.2f\n", s.Mean)
	fmt.Fprintf(w, "\tmedian: %.2f [95%%: %.2f-%.2f]\n", s.Median, s.Low, s.High)
	fmt.Fprintf(w, "\trange: %.2f-%.2f\n", s.Min, s.Max)
}
