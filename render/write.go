// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package render

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"
)

// Formats are the valid image formats.
var Formats = []string{"png", "pdf", "svg"}

func (img *Image) canvas(format string) (vg.CanvasWriterTo, error) {
	w, h := img.Size()
	switch strings.ToLower(format) {
	case "png":
		c := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(img.opt.DPI))
		return vgimg.PngCanvas{Canvas: c}, nil
	case "pdf":
		return vgpdf.New(w, h), nil
	case "svg":
		return vgsvg.New(w, h), nil
	}
	return nil, fmt.Errorf("unknown image format %q", format)
}

// WriteTo writes the image
// in the indicated format
// ("png", "pdf", or "svg").
func (img *Image) WriteTo(w io.Writer, format string) error {
	c, err := img.canvas(format)
	if err != nil {
		return err
	}
	img.Draw(draw.New(c))

	bw := bufio.NewWriter(w)
	if _, err := c.WriteTo(bw); err != nil {
		return err
	}
	return bw.Flush()
}

// WriteFile writes the image into a file.
// The format is taken from the file extension.
// If the image can not be written
// the file is removed.
func (img *Image) WriteFile(name string) (err error) {
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if !slices.Contains(Formats, format) {
		return fmt.Errorf("file %q: unknown image format %q", name, format)
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

	if err := img.WriteTo(f, format); err != nil {
		f.Close()
		os.Remove(name)
		return fmt.Errorf("while writing file %q: %v", name, err)
	}
	return nil
}
