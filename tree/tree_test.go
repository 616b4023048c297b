// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree_test

import (
	"bytes"
	"errors"
	"math"
	"reflect"
	"slices"
	"strings"
	"testing"

	"github.com/js-arias/swisstree/tree"
)

const testTree = `((HUMAN__Homo_sapiens:1,PANTR__Pan_troglodytes:1):1[&&NHX:B=95],
	((MOUSE__Mus_musculus:1,RAT__Rattus_norvegicus:1):1[&&NHX:B=40],
	CHICK__Gallus_gallus:2):1[&&NHX:B=75]):0[&&NHX:B=100];`

func readTree(t testing.TB, src string) *tree.Tree {
	t.Helper()

	tr, err := tree.ReadNHX(strings.NewReader(src), "test")
	if err != nil {
		t.Fatalf("unable to read tree: %v", err)
	}
	return tr
}

func leafNames(t *tree.Tree) []string {
	var names []string
	for _, n := range t.Leaves() {
		names = append(names, n.Name)
	}
	return names
}

func TestReadNHX(t *testing.T) {
	tr := readTree(t, testTree)

	if tr.Name() != "test" {
		t.Errorf("name: got %q, want %q", tr.Name(), "test")
	}
	if n := tr.Len(); n != 9 {
		t.Errorf("nodes: got %d, want %d", n, 9)
	}

	want := []string{
		"HUMAN__Homo_sapiens",
		"PANTR__Pan_troglodytes",
		"MOUSE__Mus_musculus",
		"RAT__Rattus_norvegicus",
		"CHICK__Gallus_gallus",
	}
	if got := leafNames(tr); !reflect.DeepEqual(got, want) {
		t.Errorf("leaves: got %v, want %v", got, want)
	}

	root := tr.Root()
	if b, err := root.Support(tree.SupportKey); err != nil || b != 100 {
		t.Errorf("root support: got %.2f (err %v), want %.2f", b, err, 100.0)
	}
	rodents := root.Children[1].Children[0]
	if b, _ := rodents.Support(tree.SupportKey); b != 40 {
		t.Errorf("rodent support: got %.2f, want %.2f", b, 40.0)
	}
	if rodents.Dist != 1 {
		t.Errorf("rodent branch: got %.2f, want %.2f", rodents.Dist, 1.0)
	}
	if rodents.Parent != root.Children[1] {
		t.Errorf("rodent parent: wrong parent")
	}
}

func TestReadNHXQuoted(t *testing.T) {
	tr := readTree(t, "('A  b':1,'it''s':2)[comment]:0;")
	want := []string{"A  b", "it's"}
	if got := leafNames(tr); !reflect.DeepEqual(got, want) {
		t.Errorf("leaves: got %v, want %v", got, want)
	}
}

func TestReadNHXErrors(t *testing.T) {
	tests := map[string]string{
		"empty":          "",
		"no semicolon":   "(A,B)",
		"open":           "(A,B;",
		"bad length":     "(A:x,B);",
		"bad attribute":  "(A,B)[&&NHX:B];",
		"open comment":   "(A,B)[&&NHX:B=1;",
		"unnamed leaf":   "(A,);",
		"unclosed quote": "('A,B);",
	}

	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := tree.ReadNHX(strings.NewReader(src), "bad")
			if !errors.Is(err, tree.ErrSyntax) {
				t.Errorf("got error %v, want %v", err, tree.ErrSyntax)
			}
		})
	}
}

func TestWriteNHX(t *testing.T) {
	tr := readTree(t, testTree)

	var buf bytes.Buffer
	if err := tr.WriteNHX(&buf); err != nil {
		t.Fatalf("unable to write tree: %v", err)
	}

	nt, err := tree.ReadNHX(&buf, "test")
	if err != nil {
		t.Logf("input data:\n%s\n", buf.String())
		t.Fatalf("unable to read tree: %v", err)
	}
	if !reflect.DeepEqual(leafNames(nt), leafNames(tr)) {
		t.Errorf("leaves: got %v, want %v", leafNames(nt), leafNames(tr))
	}
	for i, n := range nt.Nodes() {
		o := tr.Nodes()[i]
		if !reflect.DeepEqual(n.Attrs, o.Attrs) {
			t.Errorf("node %d: attributes: got %v, want %v", i, n.Attrs, o.Attrs)
		}
		if n.Dist != o.Dist {
			t.Errorf("node %d: branch: got %.2f, want %.2f", i, n.Dist, o.Dist)
		}
	}
}

func TestSupport(t *testing.T) {
	n := &tree.Node{}
	if b, err := n.Support("B"); err != nil || b != tree.DefaultSupport {
		t.Errorf("missing support: got %.2f (err %v), want %.2f", b, err, float64(tree.DefaultSupport))
	}

	n.SetAttr("B", "72.5")
	if b, err := n.Support("B"); err != nil || b != 72.5 {
		t.Errorf("support: got %.2f (err %v), want %.2f", b, err, 72.5)
	}

	n.SetAttr("B", "high")
	if _, err := n.Support("B"); err == nil {
		t.Errorf("invalid support: expecting error")
	}
}

func TestClone(t *testing.T) {
	tr := readTree(t, testTree)
	c := tr.Clone()

	c.Root().Children[0].Children[0].Name = "changed"
	c.Root().Children[0].SetAttr("B", "1")

	if n := tr.Root().Children[0].Children[0].Name; n != "HUMAN__Homo_sapiens" {
		t.Errorf("clone modified source name: %q", n)
	}
	if b, _ := tr.Root().Children[0].Support("B"); b != 95 {
		t.Errorf("clone modified source support: %.2f", b)
	}
	if c.Root().Children[0].Parent != c.Root() {
		t.Errorf("clone: parent not updated")
	}
}

func TestLadderize(t *testing.T) {
	tr := readTree(t, "(((A,B),C),D);")
	tr.Ladderize()

	want := []string{"D", "C", "A", "B"}
	if got := leafNames(tr); !reflect.DeepEqual(got, want) {
		t.Errorf("leaves: got %v, want %v", got, want)
	}
}

func TestUltrametric(t *testing.T) {
	tr := readTree(t, testTree)
	tr.Ultrametric(100)

	for _, n := range tr.Leaves() {
		var d float64
		for p := n; p != nil; p = p.Parent {
			d += p.Dist
		}
		if math.Abs(d-100) > 1e-9 {
			t.Errorf("leaf %q: depth %.6f, want %.6f", n.Name, d, 100.0)
		}
	}
	// the root has three levels below
	if d := tr.Root().Children[1].Dist; math.Abs(d-100.0/3) > 1e-9 {
		t.Errorf("branch: got %.6f, want %.6f", d, 100.0/3)
	}
}

func TestCollapse(t *testing.T) {
	tr := readTree(t, testTree)

	leaves := len(tr.Leaves())
	supported := 0
	for _, n := range tr.Nodes() {
		if n.IsLeaf() {
			continue
		}
		if b, _ := n.Support(tree.SupportKey); b >= 90 {
			supported++
		}
	}

	removed, err := tr.Collapse(tree.SupportKey, 90)
	if err != nil {
		t.Fatalf("collapse: %v", err)
	}
	if removed != 2 {
		t.Errorf("removed: got %d, want %d", removed, 2)
	}
	if n := tr.Len(); n != leaves+supported {
		t.Errorf("nodes: got %d, want %d", n, leaves+supported)
	}

	for _, n := range tr.Nodes() {
		if n.IsLeaf() {
			continue
		}
		if b, _ := n.Support(tree.SupportKey); b < 90 {
			t.Errorf("node with support %.2f not collapsed", b)
		}
		for _, c := range n.Children {
			if c.Parent != n {
				t.Errorf("node %q: wrong parent", c.Name)
			}
		}
	}

	// children of collapsed nodes keep their place
	want := []string{
		"HUMAN__Homo_sapiens",
		"PANTR__Pan_troglodytes",
		"MOUSE__Mus_musculus",
		"RAT__Rattus_norvegicus",
		"CHICK__Gallus_gallus",
	}
	if got := leafNames(tr); !reflect.DeepEqual(got, want) {
		t.Errorf("leaves: got %v, want %v", got, want)
	}
	if got := len(tr.Root().Children); got != 4 {
		t.Errorf("root children: got %d, want %d", got, 4)
	}
}

func TestCollapseRoot(t *testing.T) {
	tr := readTree(t, "(A,(B,C)[&&NHX:B=10])[&&NHX:B=5];")
	if _, err := tr.Collapse(tree.SupportKey, 90); err != nil {
		t.Fatalf("collapse: %v", err)
	}
	if n := tr.Len(); n != 4 {
		t.Errorf("nodes: got %d, want %d", n, 4)
	}
	if len(tr.Root().Children) != 3 {
		t.Errorf("root children: got %d, want %d", len(tr.Root().Children), 3)
	}
}

func TestCollapseInvalidSupport(t *testing.T) {
	tr := readTree(t, "(A,(B,C)[&&NHX:B=none]);")
	if _, err := tr.Collapse(tree.SupportKey, 90); err == nil {
		t.Errorf("collapse: expecting error")
	}
}

func TestPrune(t *testing.T) {
	tr := readTree(t, testTree)
	keep := []string{"HUMAN__Homo_sapiens", "MOUSE__Mus_musculus", "CHICK__Gallus_gallus"}

	p := tr.Clone()
	if err := p.Prune(func(n *tree.Node) bool {
		return slices.Contains(keep, n.Name)
	}); err != nil {
		t.Fatalf("prune: %v", err)
	}

	if got := leafNames(p); !reflect.DeepEqual(got, keep) {
		t.Errorf("leaves: got %v, want %v", got, keep)
	}
	for _, n := range p.Nodes() {
		if !n.IsLeaf() && len(n.Children) < 2 {
			t.Errorf("internal node with %d children", len(n.Children))
		}
	}
	if n := p.Len(); n != 5 {
		t.Errorf("nodes: got %d, want %d", n, 5)
	}
	// HUMAN replaces its removed parent
	if d := p.Root().Children[0].Dist; d != 2 {
		t.Errorf("spliced branch: got %.2f, want %.2f", d, 2.0)
	}

	// the source tree is unchanged
	if n := len(tr.Leaves()); n != 5 {
		t.Errorf("source leaves: got %d, want %d", n, 5)
	}
}

func TestPruneRoot(t *testing.T) {
	tr := readTree(t, testTree)
	keep := []string{"MOUSE__Mus_musculus", "RAT__Rattus_norvegicus"}
	if err := tr.Prune(func(n *tree.Node) bool {
		return slices.Contains(keep, n.Name)
	}); err != nil {
		t.Fatalf("prune: %v", err)
	}
	root := tr.Root()
	if !root.IsRoot() || len(root.Children) != 2 {
		t.Fatalf("root: want a root with two children")
	}
	if b, _ := root.Support(tree.SupportKey); b != 40 {
		t.Errorf("root support: got %.2f, want %.2f", b, 40.0)
	}
}

func TestPruneEmpty(t *testing.T) {
	tr := readTree(t, testTree)
	err := tr.Prune(func(n *tree.Node) bool { return false })
	if !errors.Is(err, tree.ErrEmpty) {
		t.Errorf("got error %v, want %v", err, tree.ErrEmpty)
	}
}

func TestWriteNewick(t *testing.T) {
	tr := readTree(t, "(A__a:1,(B__b:1,C__c:1):1[&&NHX:B=40]);")

	var buf bytes.Buffer
	if err := tr.WriteNewick(&buf, nil); err != nil {
		t.Fatalf("unable to write tree: %v", err)
	}
	if want := "(A__a:1,(B__b:1,C__c:1):1);\n"; buf.String() != want {
		t.Errorf("newick: got %q, want %q", buf.String(), want)
	}

	buf.Reset()
	upper := func(n *tree.Node) string { return strings.ToUpper(n.Name) }
	if err := tr.WriteNewick(&buf, upper); err != nil {
		t.Fatalf("unable to write tree: %v", err)
	}
	if want := "(A__A:1,(B__B:1,C__C:1):1);\n"; buf.String() != want {
		t.Errorf("newick: got %q, want %q", buf.String(), want)
	}
}
