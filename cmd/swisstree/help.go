// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package main

import "github.com/js-arias/command"

func init() {
	app.Add(projectsGuide)
	app.Add(styleFilesGuide)
	app.Add(taxaFilesGuide)
	app.Add(treeFilesGuide)
}

var projectsGuide = &command.Command{
	Usage: "projects",
	Short: "about project files",
	Long: `
SwissTree uses a project file to hold the reference of the files used to draw
a species tree. This guide explains the structure of the file, but most of the
time, the best way to edit or view this file is by using the command
'swisstree project'.

A project file is a tab-delimited file with the following fields:

	- dataset  for the kind of file
	- path     for the path of the file

Here is an example file:

	# swisstree project files
	dataset	path
	style	style.toml
	taxa	reduced-species.tab
	trees	swisstree_speciestree.nhx

The valid file types are:

- Species trees. Defined by the dataset keyword "trees". This file contains
  the species tree in NHX format (see 'swisstree help tree-files'). If no tree
  file is defined, the file 'swisstree_speciestree.nhx' in the current
  directory will be used.
- Taxa files. Defined by the dataset keyword "taxa". This file contains the
  species codes used to prune the tree (see 'swisstree help taxa-files'). If
  no taxa file is defined, the pruned views of the tree will not be drawn.
- Style files. Defined by the dataset keyword "style". This file contains the
  parameters used to draw the tree (see 'swisstree help style-files'). If no
  style file is defined, the default style will be used.
	`,
}

var treeFilesGuide = &command.Command{
	Usage: "tree-files",
	Short: "about species tree files",
	Long: `
SwissTree reads species trees in newick format, with node attributes in NHX
comments. For example:

	((HUMAN__Homo_sapiens:1,PANTR__Pan_troglodytes:1):1[&&NHX:B=95],
	MOUSE__Mus_musculus:2):0[&&NHX:B=100];

Terminals must be named with a species code and the species name, separated by
two underscores. Underscores in the species name are drawn as spaces, so the
terminal 'HUMAN__Homo_sapiens' has the code 'HUMAN' and the species name
'Homo sapiens'. Terminals that can not be split in this way are reported as an
error.

The support of a node is read from the NHX attribute 'B' (a different
attribute can be defined in the style file, or with the flag --key). Nodes
without the attribute have a support of 100. Other comments are ignored.

Branch lengths are read, but trees are always drawn as ultrametric trees, so
only the topology is used.
	`,
}

var taxaFilesGuide = &command.Command{
	Usage: "taxa-files",
	Short: "about taxa files",
	Long: `
A taxa file contains the species codes of the species that will be kept when
a tree is pruned. It is a tab-delimited file with at least the field 'code'.
Other fields are ignored. Lines starting with '#' are comments. Here is an
example file:

	# reduced species list
	code	species
	HUMAN	Homo sapiens
	MOUSE	Mus musculus
	CHICK	Gallus gallus

Codes in the file that are not found in the tree are reported as a warning by
the command 'swisstree draw'.
	`,
}

var styleFilesGuide = &command.Command{
	Usage: "style-files",
	Short: "about style files",
	Long: `
A style file defines the parameters used to draw a species tree. It is a TOML
file with the following keys:

	width       width of the image, in pixels (default 1080)
	dpi         resolution of the image (default 300)
	scale       spacing between terminals, in pixels (default 4)
	arc-start   starting angle of circular trees, in degrees (default 0)
	arc-span    angle covered by circular trees, in degrees (default 340)
	line-width  width of the branches, in pixels (default 2)
	font-size   size of the labels, in points (default 12)
	palette     color palette of the support classes (default "named")
	key         NHX attribute with the node support (default "B")
	threshold   minimum support of collapsed trees (default 90)
	length      root to tip length of ultrametric trees (default 100)
	modes       drawing modes, "c" for circular and "r" for rectangular
	formats     image formats, "png", "pdf", or "svg"

Keys not defined in the file take the default value. Unknown keys are reported
as an error. Here is an example file:

	width = 2160
	palette = "blind"
	threshold = 70
	modes = ["r"]
	formats = ["pdf"]

Valid palettes are:

	named         green, blue, dark blue, pink, red, and yellow
	gray          gray scale
	blind         a color blind safe gradient
	incandescent  a color blind safe sequential palette
	iridescent    a color blind safe sequential palette
	rainbow       a color blind safe rainbow, from purple to red

The command 'swisstree project --style <file> <project-file>' will create a
style file with the default values if the file does not exist.
	`,
}
