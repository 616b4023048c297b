// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrSyntax is returned when the input
// is not a valid newick or NHX tree.
var ErrSyntax = errors.New("invalid tree syntax")

const nhxPrefix = "&&NHX"

// ReadNHX reads a tree in newick format,
// with optional NHX comments,
// from a reader.
//
// NHX comments are stored as node attributes,
// for example,
// in the tree
//
//	(HUMAN__Homo_sapiens:1,MOUSE__Mus_musculus:1):1[&&NHX:B=95];
//
// the root has the attribute B with the value 95.
// Other bracket comments are ignored.
func ReadNHX(r io.Reader, name string) (*Tree, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	p := &parser{src: string(data)}
	p.skip()
	if p.eof() {
		return nil, fmt.Errorf("%w: no tree found", ErrSyntax)
	}
	root, err := p.node(nil)
	if err != nil {
		return nil, err
	}
	p.skip()
	if p.eof() || p.src[p.pos] != ';' {
		return nil, p.errorf("expecting ';'")
	}
	return New(name, root), nil
}

type parser struct {
	src string
	pos int
}

func (p *parser) eof() bool {
	return p.pos >= len(p.src)
}

// skip skips spaces.
func (p *parser) skip() {
	for !p.eof() {
		switch p.src[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) errorf(format string, args ...any) error {
	ln := 1 + strings.Count(p.src[:min(p.pos, len(p.src))], "\n")
	return fmt.Errorf("%w: line %d: %s", ErrSyntax, ln, fmt.Sprintf(format, args...))
}

func (p *parser) node(parent *Node) (*Node, error) {
	n := &Node{Parent: parent}

	p.skip()
	if !p.eof() && p.src[p.pos] == '(' {
		p.pos++
		for {
			c, err := p.node(n)
			if err != nil {
				return nil, err
			}
			n.Children = append(n.Children, c)

			p.skip()
			if p.eof() {
				return nil, p.errorf("unexpected end of input, expecting ')'")
			}
			if p.src[p.pos] == ',' {
				p.pos++
				continue
			}
			if p.src[p.pos] == ')' {
				p.pos++
				break
			}
			return nil, p.errorf("unexpected character %q", p.src[p.pos])
		}
	}

	name, err := p.label()
	if err != nil {
		return nil, err
	}
	n.Name = name

	// node suffix: branch length and comments,
	// in any order
	for {
		p.skip()
		if p.eof() {
			return n, nil
		}
		switch p.src[p.pos] {
		case ':':
			p.pos++
			p.skip()
			start := p.pos
			for !p.eof() && !strings.ContainsRune("(),:;[ \t\n\r", rune(p.src[p.pos])) {
				p.pos++
			}
			v := p.src[start:p.pos]
			d, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, p.errorf("invalid branch length %q", v)
			}
			n.Dist = d
		case '[':
			if err := p.comment(n); err != nil {
				return nil, err
			}
		default:
			if n.IsLeaf() && n.Name == "" {
				return nil, p.errorf("terminal without name")
			}
			return n, nil
		}
	}
}

func (p *parser) label() (string, error) {
	p.skip()
	if p.eof() {
		return "", nil
	}

	if p.src[p.pos] == '\'' {
		p.pos++
		var b strings.Builder
		for {
			if p.eof() {
				return "", p.errorf("unterminated quoted label")
			}
			c := p.src[p.pos]
			p.pos++
			if c != '\'' {
				b.WriteByte(c)
				continue
			}
			// a doubled quote is a literal quote
			if !p.eof() && p.src[p.pos] == '\'' {
				b.WriteByte('\'')
				p.pos++
				continue
			}
			return b.String(), nil
		}
	}

	start := p.pos
	for !p.eof() && !strings.ContainsRune("(),:;[ \t\n\r", rune(p.src[p.pos])) {
		p.pos++
	}
	return p.src[start:p.pos], nil
}

func (p *parser) comment(n *Node) error {
	start := p.pos + 1
	end := strings.IndexByte(p.src[start:], ']')
	if end < 0 {
		return p.errorf("unterminated comment")
	}
	body := p.src[start : start+end]
	p.pos = start + end + 1

	if !strings.HasPrefix(body, nhxPrefix) {
		return nil
	}
	for _, f := range strings.Split(body[len(nhxPrefix):], ":") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		k, v, ok := strings.Cut(f, "=")
		if !ok {
			return p.errorf("invalid NHX attribute %q", f)
		}
		n.SetAttr(strings.TrimSpace(k), strings.TrimSpace(v))
	}
	return nil
}

// WriteNHX writes a tree in newick format,
// with the node attributes as NHX comments.
func (t *Tree) WriteNHX(w io.Writer) error {
	bw := bufio.NewWriter(w)
	writeNode(bw, t.root, nil)
	fmt.Fprintf(bw, ";\n")
	return bw.Flush()
}

// WriteNewick writes a tree in plain newick format,
// without node attributes.
// If label is not nil,
// it is used to set the label of each node.
func (t *Tree) WriteNewick(w io.Writer, label func(*Node) string) error {
	if label == nil {
		label = func(n *Node) string { return n.Name }
	}
	bw := bufio.NewWriter(w)
	writeNode(bw, t.root, label)
	fmt.Fprintf(bw, ";\n")
	return bw.Flush()
}

func writeNode(w *bufio.Writer, n *Node, label func(*Node) string) {
	if !n.IsLeaf() {
		w.WriteByte('(')
		for i, c := range n.Children {
			if i > 0 {
				w.WriteByte(',')
			}
			writeNode(w, c, label)
		}
		w.WriteByte(')')
	}
	if label != nil {
		w.WriteString(quote(label(n)))
	} else {
		w.WriteString(quote(n.Name))
	}
	if !n.IsRoot() || n.Dist != 0 {
		fmt.Fprintf(w, ":%s", strconv.FormatFloat(n.Dist, 'g', -1, 64))
	}
	if label != nil || len(n.Attrs) == 0 {
		return
	}
	w.WriteString("[" + nhxPrefix)
	for _, a := range n.Attrs {
		fmt.Fprintf(w, ":%s=%s", a.Key, a.Value)
	}
	w.WriteByte(']')
}

func quote(name string) string {
	if !strings.ContainsAny(name, "(),:;[]' \t\n\r") {
		return name
	}
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}
