// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package prj implements a command to create or update
// a swisstree project
// and print its basic information.
package prj

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/swisstree/project"
	"github.com/js-arias/swisstree/style"
	"github.com/js-arias/swisstree/support"
)

var Command = &command.Command{
	Usage: `project [--tree <tree-file>] [--taxa <taxa-file>]
	[--style <style-file>] <project-file>`,
	Short: "create or update a project, and print its information",
	Long: `
Command project reads a swisstree project and prints the information of the
different project elements into the standard output.

The argument of the command is the name of the project file. If the flags
--tree, --taxa, or --style are used, the project will be updated (or created,
if it does not exist) with the given files:

	--tree   sets the species tree file, in NHX format
	--taxa   sets the taxa file, with the species codes used to prune the
	         tree
	--style  sets the style file, in TOML format. If the file does not
	         exist, a style file with the default values will be created.

Use an empty value (for example --taxa "") to remove a file from the project.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var treeFile string
var taxaFile string
var styleFile string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&treeFile, "tree", "", "")
	c.Flags().StringVar(&taxaFile, "taxa", "", "")
	c.Flags().StringVar(&styleFile, "style", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := openProject(args[0])
	if err != nil {
		return err
	}

	update := false
	c.Flags().Visit(func(f *flag.Flag) {
		switch f.Name {
		case "tree":
			p.Add(project.Trees, treeFile)
		case "taxa":
			p.Add(project.Taxa, taxaFile)
		case "style":
			p.Add(project.Style, styleFile)
		default:
			return
		}
		update = true
	})
	if update {
		if sf := p.Path(project.Style); sf != "" {
			if err := newStyle(sf); err != nil {
				return err
			}
		}
		if err := p.Write(); err != nil {
			return err
		}
	}

	st, err := p.Style()
	if err != nil {
		return err
	}
	if err := printTree(c.Stdout(), p, st.Key); err != nil {
		return err
	}
	if err := printTaxa(c.Stdout(), p); err != nil {
		return err
	}
	printStyle(c.Stdout(), p.Path(project.Style), st)
	return nil
}

func openProject(name string) (*project.Project, error) {
	p, err := project.Read(name)
	if errors.Is(err, os.ErrNotExist) {
		p := project.New()
		p.SetName(name)
		return p, nil
	}
	if err != nil {
		return nil, fmt.Errorf("unable to open project %q: %v", name, err)
	}
	return p, nil
}

// newStyle writes the default style
// if the style file does not exist.
func newStyle(name string) (err error) {
	if _, err := os.Stat(name); err == nil {
		return nil
	}

	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	if err := style.Default().Write(f); err != nil {
		return fmt.Errorf("while writing to %q: %v", name, err)
	}
	return nil
}

func printTree(w io.Writer, p *project.Project, key string) error {
	t, err := p.Tree()
	if err != nil {
		return err
	}

	var internal int
	low := 0
	for _, n := range t.Nodes() {
		if n.IsLeaf() {
			continue
		}
		internal++
		b, err := n.Support(key)
		if err != nil {
			return fmt.Errorf("tree %q: %v", t.Name(), err)
		}
		if support.TierOf(b) != support.Green {
			low++
		}
	}

	fmt.Fprintf(w, "Species tree:\n")
	fmt.Fprintf(w, "\tfile: %s\n", p.TreePath())
	fmt.Fprintf(w, "\tterminals: %d\n", len(t.Leaves()))
	fmt.Fprintf(w, "\tinternal nodes: %d [support < %.0f: %d]\n", internal, support.Green.Min(), low)
	fmt.Fprintf(w, "\n")
	return nil
}

func printTaxa(w io.Writer, p *project.Project) error {
	codes, err := p.Taxa()
	if err != nil {
		return err
	}
	if codes == nil {
		return nil
	}

	fmt.Fprintf(w, "Taxa:\n")
	fmt.Fprintf(w, "\tfile: %s\n", p.Path(project.Taxa))
	fmt.Fprintf(w, "\tspecies codes: %d\n", codes.Len())
	fmt.Fprintf(w, "\n")
	return nil
}

func printStyle(w io.Writer, name string, st style.Style) {
	if name == "" {
		name = "default"
	}
	fmt.Fprintf(w, "Style:\n")
	fmt.Fprintf(w, "\tfile: %s\n", name)
	fmt.Fprintf(w, "\timage: %d pixels at %d dpi\n", st.Width, st.DPI)
	fmt.Fprintf(w, "\tpalette: %s\n", st.Palette)
	fmt.Fprintf(w, "\tcollapse: %s < %g\n", st.Key, st.Threshold)
	fmt.Fprintf(w, "\n")
}
