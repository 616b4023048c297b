// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package render

import (
	"errors"
	"image/color"
	"math"

	"github.com/js-arias/swisstree/tree"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// scene margin, in scene pixels
const margin = 10

// arc step for circular lines, in radians
const arcStep = math.Pi / 180

type point struct {
	x, y float64
}

// A line is a polyline in scene coordinates.
type line struct {
	pts   []point
	color color.Color
	width float64
}

// A label is a text in scene coordinates.
type label struct {
	pt     point
	rot    float64 // rotation in radians (y axis is down)
	flip   bool    // text is anchored at its end
	text   string
	color  color.Color
	italic bool
}

// An Image is a drawing of a tree.
type Image struct {
	opt    Options
	lines  []line
	labels []label

	// scene bounds
	minX, minY float64
	maxX, maxY float64
}

// New creates the drawing of a tree.
// Branch lengths are used as given,
// so usually the tree should be ladderized
// and made ultrametric before drawing.
func New(t *tree.Tree, opt Options) (*Image, error) {
	if opt.Width <= 0 || opt.DPI <= 0 {
		return nil, errors.New("invalid image size")
	}
	if opt.Scale <= 0 {
		opt.Scale = 1
	}
	if opt.FontSize <= 0 {
		opt.FontSize = 12
	}
	if opt.LineWidth <= 0 {
		opt.LineWidth = 1
	}

	root, leaves, err := copyTree(t, opt)
	if err != nil {
		return nil, err
	}

	img := &Image{
		opt:  opt,
		minX: math.Inf(1),
		minY: math.Inf(1),
		maxX: math.Inf(-1),
		maxY: math.Inf(-1),
	}
	switch opt.Mode {
	case Circular:
		img.circular(root, leaves)
	default:
		img.opt.Mode = Rectangular
		img.rectangular(root, leaves)
	}
	img.bounds()
	return img, nil
}

func (img *Image) faceStyle(f Face, size float64) text.Style {
	return text.Style{
		Color:   f.Color,
		Font:    labelFont(f.Italic, size),
		XAlign:  text.XLeft,
		YAlign:  text.YCenter,
		Handler: textHandler,
	}
}

// textWidth returns the width of a face,
// in scene pixels.
func (img *Image) textWidth(f Face) float64 {
	return float64(img.faceStyle(f, img.opt.FontSize).Width(f.Text))
}

// rowHeight is the space used by a terminal,
// in scene pixels.
func (img *Image) rowHeight() float64 {
	sty := img.faceStyle(Face{}, img.opt.FontSize)
	return float64(sty.Height("Hg")) * 1.2
}

// faceColumns returns the offset of the aligned column
// from the terminal tips.
func (img *Image) faceColumns(leaves []*node) float64 {
	var max float64
	for _, l := range leaves {
		var w float64
		for _, f := range l.style.Faces {
			if f.Position != BranchRight {
				continue
			}
			w += f.MarginLeft + img.textWidth(f) + f.MarginRight
		}
		max = math.Max(max, w)
	}
	return max
}

// leafLabels adds the faces of a terminal,
// along a direction given by an angle,
// starting at distance r from the origin.
func (img *Image) leafLabels(l *node, origin point, angle, r, aligned float64) {
	dir := point{math.Cos(angle), math.Sin(angle)}
	flip := img.opt.Mode == Circular && dir.x < 0

	var labels []label
	pos := r
	at := func(d float64) point {
		return point{origin.x + dir.x*d, origin.y + dir.y*d}
	}
	for _, f := range l.style.Faces {
		if f.Position == BranchRight {
			pos += f.MarginLeft
			labels = append(labels, label{pt: at(pos), text: f.Text, color: f.Color, italic: f.Italic})
			pos += img.textWidth(f) + f.MarginRight
		}
	}
	pos = math.Max(pos, r+aligned)
	for _, f := range l.style.Faces {
		if f.Position == Aligned {
			pos += f.MarginLeft
			labels = append(labels, label{pt: at(pos), text: f.Text, color: f.Color, italic: f.Italic})
			pos += img.textWidth(f) + f.MarginRight
		}
	}

	h := img.rowHeight() / 2
	for _, lb := range labels {
		lb.rot = angle
		if flip {
			// turned upside down,
			// so the text ends at the anchor
			lb.flip = true
			lb.rot = angle + math.Pi
		}
		img.labels = append(img.labels, lb)

		// text corners
		w := img.textWidth(Face{Text: lb.text, Italic: lb.italic})
		end := point{lb.pt.x + dir.x*w, lb.pt.y + dir.y*w}
		for _, p := range []point{lb.pt, end} {
			img.extend(point{p.x - dir.y*h, p.y + dir.x*h})
			img.extend(point{p.x + dir.y*h, p.y - dir.x*h})
		}
	}
}

func (img *Image) addLine(st Style, pts ...point) {
	img.lines = append(img.lines, line{
		pts:   pts,
		color: st.LineColor,
		width: st.LineWidth,
	})
	for _, p := range pts {
		img.extend(p)
	}
}

func (img *Image) extend(p point) {
	img.minX = math.Min(img.minX, p.x)
	img.maxX = math.Max(img.maxX, p.x)
	img.minY = math.Min(img.minY, p.y)
	img.maxY = math.Max(img.maxY, p.y)
}

func (img *Image) bounds() {
	if math.IsInf(img.minX, 1) {
		img.minX, img.maxX, img.minY, img.maxY = 0, 0, 0, 0
	}
	img.minX -= margin
	img.minY -= margin
	img.maxX += margin
	img.maxY += margin
}

func (img *Image) rectangular(root *node, leaves []*node) {
	row := img.rowHeight()
	aligned := img.faceColumns(leaves)
	tip := maxDepth(leaves) * img.opt.Scale

	var walk func(n *node)
	walk = func(n *node) {
		x := n.depth * img.opt.Scale
		y := n.pos * row
		if n.anc != nil {
			px := n.anc.depth * img.opt.Scale
			img.addLine(n.style, point{px, y}, point{x, y})
		} else {
			img.extend(point{x, y})
		}

		if len(n.desc) == 0 {
			img.leafLabels(n, point{0, y}, 0, x, tip-x+aligned)
			return
		}
		top := n.desc[0].pos * row
		bot := n.desc[len(n.desc)-1].pos * row
		img.addLine(n.style, point{x, top}, point{x, bot})
		for _, d := range n.desc {
			walk(d)
		}
	}
	walk(root)
}

func (img *Image) circular(root *node, leaves []*node) {
	span := img.opt.ArcSpan * math.Pi / 180
	start := img.opt.ArcStart * math.Pi / 180
	step := span / float64(len(leaves))
	angle := func(n *node) float64 {
		return start + (n.pos+0.5)*step
	}

	// terminals must not overlap
	scale := img.opt.Scale
	if md := maxDepth(leaves); md > 0 {
		minR := img.rowHeight() / step
		if md*scale < minR {
			scale = minR / md
		}
	}
	aligned := img.faceColumns(leaves)
	tip := maxDepth(leaves) * scale
	polar := func(r, a float64) point {
		return point{r * math.Cos(a), r * math.Sin(a)}
	}

	var walk func(n *node)
	walk = func(n *node) {
		r := n.depth * scale
		a := angle(n)
		if n.anc != nil {
			pr := n.anc.depth * scale
			img.addLine(n.style, polar(pr, a), polar(r, a))
		} else {
			img.extend(polar(r, a))
		}

		if len(n.desc) == 0 {
			img.leafLabels(n, point{0, 0}, a, r, tip-r+aligned)
			return
		}

		first := angle(n.desc[0])
		last := angle(n.desc[len(n.desc)-1])
		var pts []point
		for v := first; v < last; v += arcStep {
			pts = append(pts, polar(r, v))
		}
		pts = append(pts, polar(r, last))
		img.addLine(n.style, pts...)
		for _, d := range n.desc {
			walk(d)
		}
	}
	walk(root)
}

// Size returns the size of the image.
func (img *Image) Size() (w, h vg.Length) {
	w = vg.Length(img.opt.Width) / vg.Length(img.opt.DPI) * vg.Inch
	k := float64(w) / (img.maxX - img.minX)
	h = vg.Length((img.maxY - img.minY) * k)
	return w, h
}

// Mode returns the drawing mode of the image.
func (img *Image) Mode() Mode {
	return img.opt.Mode
}

// Draw draws the image in a canvas.
func (img *Image) Draw(c draw.Canvas) {
	w := c.Max.X - c.Min.X
	h := c.Max.Y - c.Min.Y
	k := float64(w) / (img.maxX - img.minX)
	if kh := float64(h) / (img.maxY - img.minY); kh < k {
		k = kh
	}
	tr := func(p point) vg.Point {
		return vg.Point{
			X: c.Min.X + vg.Length((p.x-img.minX)*k),
			Y: c.Max.Y - vg.Length((p.y-img.minY)*k),
		}
	}

	c.SetColor(color.White)
	c.Fill(c.Rectangle.Path())

	for _, ln := range img.lines {
		pts := make([]vg.Point, 0, len(ln.pts))
		for _, p := range ln.pts {
			pts = append(pts, tr(p))
		}
		sty := draw.LineStyle{
			Color: ln.color,
			Width: vg.Length(ln.width * k),
		}
		c.StrokeLines(sty, pts)
	}

	for _, lb := range img.labels {
		sty := img.faceStyle(Face{Color: lb.color, Italic: lb.italic}, img.opt.FontSize*k)
		// scene y axis is down
		sty.Rotation = -lb.rot
		if lb.flip {
			sty.XAlign = text.XRight
		}
		c.FillText(sty, tr(lb.pt), lb.text)
	}
}
