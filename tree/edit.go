// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree

import "slices"

// Ladderize sorts the children of each node
// by the number of terminals,
// so smaller clades are drawn first.
func (t *Tree) Ladderize() {
	ladderize(t.root)
}

func ladderize(n *Node) int {
	if n.IsLeaf() {
		return 1
	}

	size := make(map[*Node]int, len(n.Children))
	sum := 0
	for _, c := range n.Children {
		s := ladderize(c)
		size[c] = s
		sum += s
	}
	slices.SortStableFunc(n.Children, func(a, b *Node) int {
		return size[a] - size[b]
	})
	return sum
}

// Ultrametric rescales the branch lengths of the tree
// so all terminals are at the indicated length from the root.
//
// Each branch receives an equal share
// of the length remaining between its parent
// and the terminals,
// divided by the largest number of splits
// between the node and any of its terminals.
func (t *Tree) Ultrametric(length float64) {
	splits := make(map[*Node]int)
	maxSplits(t.root, splits)

	t.root.Dist = 0
	depth := map[*Node]float64{t.root: 0}
	for _, n := range t.Nodes() {
		if n.IsRoot() {
			continue
		}
		pd := depth[n.Parent]
		n.Dist = (length - pd) / float64(splits[n])
		depth[n] = pd + n.Dist
	}
}

func maxSplits(n *Node, splits map[*Node]int) int {
	max := 0
	for _, c := range n.Children {
		if s := maxSplits(c, splits); s > max {
			max = s
		}
	}
	splits[n] = max + 1
	return max + 1
}

// Collapse removes all internal nodes,
// except the root,
// with a support value,
// read from the indicated attribute,
// smaller than the threshold.
// The children of a removed node
// take its place in the nearest remaining ancestor,
// producing polytomies.
//
// It returns the number of removed nodes.
func (t *Tree) Collapse(key string, threshold float64) (int, error) {
	return collapse(t.root, key, threshold)
}

func collapse(n *Node, key string, threshold float64) (int, error) {
	if n.IsLeaf() {
		return 0, nil
	}

	removed := 0
	children := make([]*Node, 0, len(n.Children))
	for _, c := range n.Children {
		r, err := collapse(c, key, threshold)
		if err != nil {
			return 0, err
		}
		removed += r
		if c.IsLeaf() {
			children = append(children, c)
			continue
		}

		s, err := c.Support(key)
		if err != nil {
			return 0, err
		}
		if s >= threshold {
			children = append(children, c)
			continue
		}

		for _, d := range c.Children {
			d.Parent = n
			d.Dist += c.Dist
			children = append(children, d)
		}
		removed++
	}
	n.Children = children
	return removed, nil
}

// Prune keeps only the terminals for which keep returns true,
// and the minimal subtree that connects them.
// Internal nodes without descendants are removed,
// and internal nodes with a single descendant
// are replaced by that descendant.
func (t *Tree) Prune(keep func(*Node) bool) error {
	r := prune(t.root, keep)
	if r == nil {
		return ErrEmpty
	}
	r.Parent = nil
	r.Dist = 0
	t.root = r
	return nil
}

func prune(n *Node, keep func(*Node) bool) *Node {
	if n.IsLeaf() {
		if keep(n) {
			return n
		}
		return nil
	}

	var children []*Node
	for _, c := range n.Children {
		if d := prune(c, keep); d != nil {
			children = append(children, d)
		}
	}

	switch len(children) {
	case 0:
		return nil
	case 1:
		d := children[0]
		d.Dist += n.Dist
		d.Parent = n.Parent
		return d
	}

	n.Children = children
	for _, c := range children {
		c.Parent = n
	}
	return n
}
