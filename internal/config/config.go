// Package config holds the tile sheet description read by svgtile.
package config

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/vasalvit/svgpath"
)

// Fragment kinds.
const (
	KindRound   = "round"
	KindCurved  = "curved"
	KindArrow   = "arrow"
	KindPolygon = "polygon"
)

// Sheet is a drawing of fragments on a canvas of Width x Height.
type Sheet struct {
	Width      float64    `yaml:"width"`
	Height     float64    `yaml:"height"`
	Background string     `yaml:"background,omitempty"`
	LogLevel   string     `yaml:"log_level,omitempty"`
	Fragments  []Fragment `yaml:"fragments"`
}

// Fragment is a single shape of the sheet. Which geometry fields are used
// depends on Kind.
type Fragment struct {
	Kind string `yaml:"kind"`
	ID   string `yaml:"id,omitempty"`

	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	// Radius is the circle radius of a round fragment, the inner radius
	// of a curved fragment and the center line radius of an arrow.
	Radius    float64 `yaml:"radius"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Angle     float64 `yaml:"angle"`
	Rotation  float64 `yaml:"rotation"`
	Addition  float64 `yaml:"addition"`
	Thickness float64 `yaml:"thickness"`

	CounterClockwise bool `yaml:"counter_clockwise"`

	// Points is a polygon in the "x,y x,y ..." form.
	Points string `yaml:"points,omitempty"`
	// Scale multiplies polygon points; zero leaves them as is.
	Scale float64 `yaml:"scale,omitempty"`

	Fill   string `yaml:"fill,omitempty"`
	Stroke string `yaml:"stroke,omitempty"`
}

// Load decodes and validates a sheet.
func Load(r io.Reader) (*Sheet, error) {
	var s Sheet
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		return nil, errors.Wrap(err, "failed to decode sheet")
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadFile loads the sheet stored at path.
func LoadFile(path string) (*Sheet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open sheet")
	}
	defer f.Close()

	s, err := Load(f)
	if err != nil {
		return nil, errors.Wrapf(err, "sheet %s", path)
	}
	return s, nil
}

// Validate reports the first problem with the sheet.
func (s *Sheet) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return errors.Errorf("sheet size %gx%g is not positive", s.Width, s.Height)
	}
	for i, f := range s.Fragments {
		if err := f.Validate(); err != nil {
			return errors.Wrapf(err, "fragment %d", i)
		}
	}
	return nil
}

// Validate reports the first problem with the fragment.
func (f *Fragment) Validate() error {
	if f.Radius < 0 || f.Width < 0 || f.Height < 0 || f.Thickness < 0 {
		return errors.New("negative size")
	}

	switch f.Kind {
	case KindRound, KindCurved:
	case KindArrow:
		if f.Angle == 0 && f.Width == 0 {
			return errors.New("arrow needs an angle or a width")
		}
	case KindPolygon:
		if _, err := svgpath.ParsePolygon(f.Points); err != nil {
			return errors.Wrap(err, "invalid points")
		}
	default:
		return errors.Errorf("unknown kind %q", f.Kind)
	}
	return nil
}
