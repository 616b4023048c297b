// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// SwissTree is a tool to draw species trees
// with branches colored by their support.
package main

import (
	"github.com/js-arias/command"
	"github.com/js-arias/swisstree/cmd/swisstree/draw"
	"github.com/js-arias/swisstree/cmd/swisstree/export"
	"github.com/js-arias/swisstree/cmd/swisstree/prj"
	"github.com/js-arias/swisstree/cmd/swisstree/supportcmd"
	"github.com/js-arias/swisstree/cmd/swisstree/terms"
)

var app = &command.Command{
	Usage: "swisstree <command> [<argument>...]",
	Short: "a tool to draw species trees",
}

func init() {
	app.Add(draw.Command)
	app.Add(export.Command)
	app.Add(prj.Command)
	app.Add(supportcmd.Command)
	app.Add(terms.Command)
}

func main() {
	app.Main()
}
