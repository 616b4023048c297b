// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package terms implements a command to print
// the list of the terminals of a species tree.
package terms

import (
	"fmt"

	"github.com/js-arias/command"
	"github.com/js-arias/swisstree/project"
	"github.com/js-arias/swisstree/taxa"
	"golang.org/x/exp/slices"
)

var Command = &command.Command{
	Usage: "terms [--taxa] [--sort] [<project-file>]",
	Short: "print a list of tree terminals",
	Long: `
Command terms reads the species tree of a swisstree project and prints the
species code and the species name of each terminal in the standard output.

The argument of the command is the name of the project file. If no project is
given, the tree will be read from the file 'swisstree_speciestree.nhx' in the
current directory.

By default, the terminals are printed in tree order. Use the flag --sort to
sort them by species code.

If the flag --taxa is set, only the terminals with a species code in the taxa
file of the project will be printed.

Terminals with malformed names (names that can not be split into a code and a
species name) are reported as an error.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var taxaFlag bool
var sortFlag bool

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&taxaFlag, "taxa", false, "")
	c.Flags().BoolVar(&sortFlag, "sort", false, "")
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

	t, err := p.Tree()
	if err != nil {
		return err
	}

	var codes taxa.Set
	if taxaFlag {
		codes, err = p.Taxa()
		if err != nil {
			return err
		}
		if codes == nil {
			msg := fmt.Sprintf("taxa file not defined in project %q", p.Name())
			return c.UsageError(msg)
		}
	}

	var names []taxa.Name
	for _, n := range t.Leaves() {
		name, err := taxa.ParseName(n.Name)
		if err != nil {
			return fmt.Errorf("tree %q: %v", t.Name(), err)
		}
		if codes != nil && !codes.Has(name.Code) {
			continue
		}
		names = append(names, name)
	}
	if sortFlag {
		slices.SortStableFunc(names, func(a, b taxa.Name) int {
			switch {
			case a.Code < b.Code:
				return -1
			case a.Code > b.Code:
				return 1
			}
			return 0
		})
	}

	fmt.Fprintf(c.Stdout(), "code\tspecies\n")
	for _, n := range names {
		fmt.Fprintf(c.Stdout(), "%s\t%s\n", n.Code, n.Display)
	}
	return nil
}
