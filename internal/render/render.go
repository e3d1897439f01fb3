// Package render turns a tile sheet into an SVG document.
package render

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"
	mt "github.com/rustyoz/Mtransform"
	"golang.org/x/sync/errgroup"

	"github.com/vasalvit/svgpath"
	"github.com/vasalvit/svgpath/fragment"
	"github.com/vasalvit/svgpath/internal/config"
	"github.com/vasalvit/svgpath/internal/log"
)

const svgNamespace = "http://www.w3.org/2000/svg"

// Document is an SVG file holding one path element per fragment.
type Document struct {
	XMLName    xml.Name `xml:"svg"`
	Xmlns      string   `xml:"xmlns,attr"`
	Width      string   `xml:"width,attr"`
	Height     string   `xml:"height,attr"`
	ViewBox    string   `xml:"viewBox,attr"`
	Background *Rect    `xml:"rect,omitempty"`
	Paths      []Path   `xml:"path"`
}

// Rect is an SVG rect element.
type Rect struct {
	Width  string `xml:"width,attr"`
	Height string `xml:"height,attr"`
	Fill   string `xml:"fill,attr"`
}

// Path is an SVG path element.
type Path struct {
	ID     string `xml:"id,attr"`
	D      string `xml:"d,attr"`
	Fill   string `xml:"fill,attr,omitempty"`
	Stroke string `xml:"stroke,attr,omitempty"`
}

// Render builds every fragment of sheet. Fragments are built
// concurrently; the document keeps the sheet order.
func Render(ctx context.Context, sheet *config.Sheet, logger log.Log) (*Document, error) {
	w, h := svgpath.Number(sheet.Width).String(), svgpath.Number(sheet.Height).String()
	doc := &Document{
		Xmlns:   svgNamespace,
		Width:   w,
		Height:  h,
		ViewBox: "0 0 " + w + " " + h,
		Paths:   make([]Path, len(sheet.Fragments)),
	}
	if sheet.Background != "" {
		doc.Background = &Rect{Width: w, Height: h, Fill: sheet.Background}
	}

	g, ctx := errgroup.WithContext(ctx)
	for i, f := range sheet.Fragments {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			p, err := Build(f)
			if err != nil {
				return errors.Wrapf(err, "fragment %d", i)
			}

			d := p.String()
			id := f.ID
			if id == "" {
				id = fmt.Sprintf("p-%016x", xxhash.Sum64String(d))
			}
			doc.Paths[i] = Path{ID: id, D: d, Fill: f.Fill, Stroke: f.Stroke}

			logger.Debug("built fragment",
				log.Int("index", i),
				log.String("kind", f.Kind),
				log.String("id", id),
				log.Int("commands", p.Len()),
			)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	logger.Info("rendered sheet", log.Int("fragments", len(doc.Paths)))
	return doc, nil
}

// Build returns the closed outline of f.
func Build(f config.Fragment) (*svgpath.Path, error) {
	center := svgpath.Vec(f.X, f.Y)

	switch f.Kind {
	case config.KindRound:
		return fragment.RoundElement(f.X, f.Y, f.Radius, f.Addition).Close(), nil
	case config.KindCurved:
		return fragment.CurvedElementPath(fragment.CurvedElement{
			Center:   center,
			Radius:   f.Radius,
			Width:    f.Width,
			Angle:    f.Angle,
			Rotation: f.Rotation,
			Addition: f.Addition,
		}), nil
	case config.KindArrow:
		return fragment.CurvedArrowPath(fragment.CurvedArrow{
			Center:           center,
			TipEdgeRadius:    f.Radius,
			Width:            f.Width,
			Height:           f.Height,
			Angle:            f.Angle,
			Rotation:         f.Rotation,
			Thickness:        f.Thickness,
			CounterClockwise: f.CounterClockwise,
		}), nil
	case config.KindPolygon:
		poly, err := svgpath.ParsePolygon(f.Points)
		if err != nil {
			return nil, err
		}
		if f.Scale != 0 {
			t := mt.Identity()
			t.Scale(f.Scale, f.Scale)
			poly = poly.Transform(t)
		}
		return svgpath.FromPolygon(poly), nil
	}
	return nil, errors.Errorf("unknown kind %q", f.Kind)
}

// Encode writes the document as indented XML.
func (d *Document) Encode(w io.Writer) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return errors.Wrap(err, "failed to write header")
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(d); err != nil {
		return errors.Wrap(err, "failed to encode document")
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return errors.Wrap(err, "failed to write document")
	}
	return nil
}
