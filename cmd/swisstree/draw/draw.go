// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package draw implements a command to draw
// a species tree as PNG, PDF, and SVG images.
package draw

import (
	"flag"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/js-arias/command"
	"github.com/js-arias/swisstree/project"
	"github.com/js-arias/swisstree/style"
	"github.com/js-arias/swisstree/taxa"
	"github.com/js-arias/swisstree/views"
)

var Command = &command.Command{
	Usage: `draw [--threshold <value>] [--key <attribute>]
	[--modes <mode-list>] [--formats <format-list>]
	[--nopruned] [-o|--output <out-prefix>]
	[-v|--verbose]
	[<project-file>]`,
	Short: "draw a species tree",
	Long: `
Command draw reads the species tree of a swisstree project and draws it as
images, with branches colored by their support.

The argument of the command is the name of the project file. If no project is
given, the tree will be read from the file 'swisstree_speciestree.nhx' in the
current directory, and the default style will be used.

Terminals must be named with a species code and a species name, separated by
two underscores, for example 'HUMAN__Homo_sapiens'. The code will be printed
at the tip of the branch, and the species name (in italics) will be aligned at
the right of the tree. Internal nodes are colored by its support (the NHX
attribute 'B'):

	B >= 90       green
	70 <= B < 90  blue
	50 <= B < 70  dark blue
	30 <= B < 50  pink
	10 <= B < 30  red
	B < 10        yellow

Nodes without support are assumed to have a support of 100. Use the flag --key
to read the support from a different NHX attribute.

Two views of the tree are drawn: the complete tree ('allbranches'), and a tree
in which all nodes with support below 90 are collapsed ('collapsed90'). Use
the flag --threshold to define a different minimum support value. In both
views the tree is drawn as ultrametric.

If the project defines a taxa file, the two views will be also drawn for the
tree pruned to the species in the file ('pruned_allbranches' and
'pruned_collapsed90'). Use the flag --nopruned to ignore the taxa file.

Each view is drawn in circular ('c') and rectangular ('r') modes, and in PNG,
PDF, and SVG formats. Use the flag --modes with a comma separated list to set
the drawing modes, and the flag --formats with a comma separated list to set
the output formats. The other drawing parameters are defined in the style file
of the project (see 'swisstree help style-files').

By default, the output files will be prefixed with 'swisstree_species', and
named with the view and the mode, for example:
'swisstree_species_collapsed90_c.png'. Use the flag -o, or --output, to define
a different prefix.

By default, only warnings and errors are reported. Use the flag -v, or
--verbose, to report each written image.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var threshold float64
var supportKey string
var modesFlag string
var formatsFlag string
var noPruned bool
var outPrefix string
var verbose bool

func setFlags(c *command.Command) {
	c.Flags().Float64Var(&threshold, "threshold", 0, "")
	c.Flags().StringVar(&supportKey, "key", "", "")
	c.Flags().StringVar(&modesFlag, "modes", "", "")
	c.Flags().StringVar(&formatsFlag, "formats", "", "")
	c.Flags().BoolVar(&noPruned, "nopruned", false, "")
	c.Flags().StringVar(&outPrefix, "output", "swisstree_species", "")
	c.Flags().StringVar(&outPrefix, "o", "swisstree_species", "")
	c.Flags().BoolVar(&verbose, "verbose", false, "")
	c.Flags().BoolVar(&verbose, "v", false, "")
}

func run(c *command.Command, args []string) error {
	p, err := openProject(args)
	if err != nil {
		return err
	}

	st, err := p.Style()
	if err != nil {
		return err
	}
	set := make(map[string]bool)
	c.Flags().Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	if err := setStyle(&st, set); err != nil {
		return c.UsageError(err.Error())
	}

	t, err := p.Tree()
	if err != nil {
		return err
	}

	codes, err := p.Taxa()
	if err != nil {
		return err
	}
	if noPruned {
		codes = nil
	}

	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(c.Stderr(), log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})

	vs, err := views.Build(t, st, codes)
	if err != nil {
		return err
	}
	for _, v := range vs {
		if v.Collapsed > 0 {
			logger.Info("collapsed nodes", "view", v.Name, "removed", v.Collapsed)
		}
	}
	if codes != nil {
		if missing := missingCodes(vs, codes.Codes()); len(missing) > 0 {
			logger.Warn("species not found in tree", "codes", strings.Join(missing, ","))
		}
	}

	files, err := views.Write(vs, st, outPrefix, logger)
	if err != nil {
		return err
	}
	logger.Info("done", "images", len(files))
	return nil
}

func openProject(args []string) (*project.Project, error) {
	if len(args) == 0 {
		return project.New(), nil
	}
	p, err := project.Read(args[0])
	if err != nil {
		return nil, fmt.Errorf("unable to open project %q: %v", args[0], err)
	}
	return p, nil
}

// setStyle overrides the style values
// with the flags in set.
func setStyle(st *style.Style, set map[string]bool) error {
	if set["threshold"] {
		st.Threshold = threshold
	}
	if supportKey != "" {
		st.Key = supportKey
	}
	if modesFlag != "" {
		st.Modes = splitList(modesFlag)
	}
	if formatsFlag != "" {
		st.Formats = splitList(formatsFlag)
	}
	return st.Validate()
}

func splitList(s string) []string {
	var ls []string
	for _, v := range strings.Split(s, ",") {
		v = strings.ToLower(strings.TrimSpace(v))
		if v == "" {
			continue
		}
		ls = append(ls, v)
	}
	return ls
}

// missingCodes returns the species codes
// not found in the pruned views.
func missingCodes(vs []views.View, codes []string) []string {
	var pruned *views.View
	for i, v := range vs {
		if strings.HasPrefix(v.Name, "pruned_") {
			pruned = &vs[i]
			break
		}
	}
	if pruned == nil {
		return nil
	}

	found := make(map[string]bool)
	for _, n := range pruned.Tree.Leaves() {
		name, err := taxa.ParseName(n.Name)
		if err != nil {
			continue
		}
		found[name.Code] = true
	}

	var missing []string
	for _, c := range codes {
		if !found[c] {
			missing = append(missing, c)
		}
	}
	return missing
}
