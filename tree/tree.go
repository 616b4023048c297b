// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package tree implements rooted phylogenetic trees
// with NHX node attributes,
// and the topology edits used to draw them
// (ladderization, collapsing of poorly supported nodes,
// pruning, and ultrametric rescaling).
package tree

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// DefaultSupport is the support value
// assigned to a node without a support attribute.
const DefaultSupport = 100

// SupportKey is the default NHX attribute
// that stores the support of a node.
const SupportKey = "B"

// ErrEmpty is returned when an edit
// would remove all the terminals of a tree.
var ErrEmpty = errors.New("empty tree")

// An Attr is an NHX attribute of a node.
type Attr struct {
	Key   string
	Value string
}

// A Node is a node of a phylogenetic tree.
type Node struct {
	// Name is the label of the node,
	// usually empty for internal nodes.
	Name string

	// Dist is the length of the branch
	// that connects the node with its parent.
	Dist float64

	// Attrs are the NHX attributes of the node,
	// in input order.
	Attrs []Attr

	Parent   *Node
	Children []*Node
}

// IsLeaf returns true if the node is a terminal.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// IsRoot returns true if the node has no parent.
func (n *Node) IsRoot() bool {
	return n.Parent == nil
}

// AddChild adds a node as the last child of n.
func (n *Node) AddChild(c *Node) {
	c.Parent = n
	n.Children = append(n.Children, c)
}

// Attr returns the value of an attribute.
func (n *Node) Attr(key string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// SetAttr sets the value of an attribute.
func (n *Node) SetAttr(key, value string) {
	for i, a := range n.Attrs {
		if a.Key == key {
			n.Attrs[i].Value = value
			return
		}
	}
	n.Attrs = append(n.Attrs, Attr{Key: key, Value: value})
}

// Support returns the support value stored in the indicated attribute.
// If the node does not have the attribute,
// it returns DefaultSupport.
func (n *Node) Support(key string) (float64, error) {
	v, ok := n.Attr(key)
	if !ok {
		return DefaultSupport, nil
	}
	s, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, fmt.Errorf("node %q: attribute %s: invalid support value %q", n.Name, key, v)
	}
	return s, nil
}

// Leaves returns the number of terminals descendant of the node
// (one, if the node is a terminal).
func (n *Node) Leaves() int {
	if n.IsLeaf() {
		return 1
	}
	sum := 0
	for _, c := range n.Children {
		sum += c.Leaves()
	}
	return sum
}

func (n *Node) clone(parent *Node) *Node {
	c := &Node{
		Name:   n.Name,
		Dist:   n.Dist,
		Attrs:  slices.Clone(n.Attrs),
		Parent: parent,
	}
	if len(n.Children) > 0 {
		c.Children = make([]*Node, 0, len(n.Children))
	}
	for _, d := range n.Children {
		c.Children = append(c.Children, d.clone(c))
	}
	return c
}

func (n *Node) preorder(ls []*Node) []*Node {
	ls = append(ls, n)
	for _, c := range n.Children {
		ls = c.preorder(ls)
	}
	return ls
}

// A Tree is a rooted phylogenetic tree.
type Tree struct {
	name string
	root *Node
}

// New creates a new tree from a root node.
func New(name string, root *Node) *Tree {
	root.Parent = nil
	return &Tree{
		name: name,
		root: root,
	}
}

// Name returns the name of the tree.
func (t *Tree) Name() string {
	return t.name
}

// Root returns the root node of the tree.
func (t *Tree) Root() *Node {
	return t.root
}

// Nodes returns the nodes of the tree in pre-order.
func (t *Tree) Nodes() []*Node {
	return t.root.preorder(nil)
}

// Leaves returns the terminals of the tree,
// in drawing order.
func (t *Tree) Leaves() []*Node {
	var ls []*Node
	for _, n := range t.Nodes() {
		if n.IsLeaf() {
			ls = append(ls, n)
		}
	}
	return ls
}

// Len returns the number of nodes of the tree.
func (t *Tree) Len() int {
	return len(t.Nodes())
}

// Clone returns a deep copy of the tree.
func (t *Tree) Clone() *Tree {
	return &Tree{
		name: t.name,
		root: t.root.clone(nil),
	}
}
