// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package preset loads HUD field layouts from YAML files.
//
// A preset bundles everything a preview render needs besides the live
// scene values: the camera film-back setup, the delivery mask, and the
// field list. Enum-valued settings use the same display names the field
// types themselves report ("Text 2D", "Bottom-Left", "Dashed Line"), so
// a preset reads the way the layout is described.
package preset

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/hud"
)

// Preset is one complete HUD layout.
type Preset struct {
	Name   string  `yaml:"name"`
	Camera Camera  `yaml:"camera"`
	Mask   Mask    `yaml:"mask"`
	Fields []Field `yaml:"fields"`
}

// Camera is the film-back configuration of a preset. Apertures and
// offsets are in inches, matching hud.Camera.
type Camera struct {
	ApertureX   float64 `yaml:"aperture_x"`
	ApertureY   float64 `yaml:"aperture_y"`
	LensSqueeze float64 `yaml:"lens_squeeze"`
	FilmFit     string  `yaml:"film_fit"`
	OffsetX     float64 `yaml:"offset_x"`
	OffsetY     float64 `yaml:"offset_y"`
	Overscan    float64 `yaml:"overscan"`

	FocalLength   float64 `yaml:"focal_length"`
	FStop         float64 `yaml:"f_stop"`
	FocusDistance float64 `yaml:"focus_distance"`
	ShutterAngle  float64 `yaml:"shutter_angle"`
}

// Mask is the delivery aspect-ratio mask of a preset.
type Mask struct {
	Enable      bool    `yaml:"enable"`
	AspectRatio float64 `yaml:"aspect_ratio"`
	Top         bool    `yaml:"top"`
	Bottom      bool    `yaml:"bottom"`
	Color       string  `yaml:"color"`
	Alpha       float64 `yaml:"alpha"`
}

// UnmarshalYAML decodes a mask over defaults: both bars, opaque black.
func (m *Mask) UnmarshalYAML(n *yaml.Node) error {
	type raw Mask
	r := raw{Top: true, Bottom: true, Color: "#000", Alpha: 1}
	if err := n.Decode(&r); err != nil {
		return err
	}
	*m = Mask(r)
	return nil
}

// Field is the YAML form of one overlay field. Enum settings are names,
// positions are [x, y] or [x, y, z] arrays, colors are hex strings, and
// the four slot values take any YAML scalar.
type Field struct {
	Enabled  bool      `yaml:"enabled"`
	Type     string    `yaml:"type"`
	Position []float64 `yaml:"position"`
	EndPoint []float64 `yaml:"end_point"`

	PointSize  float64 `yaml:"point_size"`
	PointColor string  `yaml:"point_color"`
	PointAlpha float64 `yaml:"point_alpha"`

	LineWidth float64 `yaml:"line_width"`
	LineStyle string  `yaml:"line_style"`
	LineColor string  `yaml:"line_color"`
	LineAlpha float64 `yaml:"line_alpha"`

	TextSize  float64 `yaml:"text_size"`
	TextAlign string  `yaml:"text_align"`
	TextBold  bool    `yaml:"text_bold"`
	TextItal  bool    `yaml:"text_italic"`
	FontName  string  `yaml:"font_name"`
	TextColor string  `yaml:"text_color"`
	TextAlpha float64 `yaml:"text_alpha"`

	Template string `yaml:"template"`
	ValueA   any    `yaml:"value_a"`
	ValueB   any    `yaml:"value_b"`
	ValueC   any    `yaml:"value_c"`
	ValueD   any    `yaml:"value_d"`
}

func defaultField() Field {
	return Field{
		Enabled:    true,
		Type:       hud.FieldText2D.String(),
		PointSize:  1,
		PointColor: "#fff",
		PointAlpha: 1,
		LineWidth:  0.2,
		LineStyle:  hud.LineSolid.String(),
		LineColor:  "#fff",
		LineAlpha:  1,
		TextSize:   3,
		TextAlign:  hud.AlignBottomLeft.String(),
		FontName:   "Consolas",
		TextColor:  "#fff",
		TextAlpha:  1,
	}
}

// UnmarshalYAML decodes a field over the package defaults, so presets
// only spell out what differs.
func (f *Field) UnmarshalYAML(n *yaml.Node) error {
	type raw Field
	r := raw(defaultField())
	if err := n.Decode(&r); err != nil {
		return err
	}
	*f = Field(r)
	return nil
}

// Load reads and parses a preset file.
func Load(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("preset: %w", err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("preset %s: %w", path, err)
	}
	return p, nil
}

// Parse decodes a preset document. Unknown YAML keys are errors, so a
// misspelled setting fails loudly instead of silently keeping a default.
func Parse(data []byte) (*Preset, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var p Preset
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("preset: empty document")
		}
		return nil, err
	}
	if p.Mask.Enable && p.Mask.AspectRatio <= 0 {
		return nil, fmt.Errorf("preset: mask aspect ratio %v is not positive", p.Mask.AspectRatio)
	}
	return &p, nil
}

// HUDCamera converts the camera configuration. An empty film fit means
// Fill; an unknown name is an error.
func (c Camera) HUDCamera() (hud.Camera, error) {
	fit := hud.FitFill
	if c.FilmFit != "" {
		var err error
		fit, err = hud.ParseFilmFit(c.FilmFit)
		if err != nil {
			return hud.Camera{}, err
		}
	}
	return hud.Camera{
		ApertureX:     c.ApertureX,
		ApertureY:     c.ApertureY,
		LensSqueeze:   c.LensSqueeze,
		FilmFit:       fit,
		OffsetX:       c.OffsetX,
		OffsetY:       c.OffsetY,
		Overscan:      c.Overscan,
		FocalLength:   c.FocalLength,
		FStop:         c.FStop,
		FocusDistance: c.FocusDistance,
		ShutterAngle:  c.ShutterAngle,
	}, nil
}

// HUDFields converts every field of the preset. The first invalid field
// stops the conversion with its index in the error.
func (p *Preset) HUDFields() ([]hud.Field, error) {
	fields := make([]hud.Field, 0, len(p.Fields))
	for i, f := range p.Fields {
		hf, err := f.HUDField()
		if err != nil {
			return nil, fmt.Errorf("preset: field %d: %w", i, err)
		}
		fields = append(fields, hf)
	}
	return fields, nil
}

// HUDField converts one field, resolving enum names and slot values.
func (f Field) HUDField() (hud.Field, error) {
	typ, err := hud.ParseFieldType(f.Type)
	if err != nil {
		return hud.Field{}, err
	}
	style, err := hud.ParseLineStyle(f.LineStyle)
	if err != nil {
		return hud.Field{}, err
	}
	align, err := hud.ParseTextAlign(f.TextAlign)
	if err != nil {
		return hud.Field{}, err
	}
	posA, err := toPoint(f.Position)
	if err != nil {
		return hud.Field{}, fmt.Errorf("position: %w", err)
	}
	posB, err := toPoint(f.EndPoint)
	if err != nil {
		return hud.Field{}, fmt.Errorf("end_point: %w", err)
	}

	field := hud.Field{
		Enabled: f.Enabled,
		Type:    typ,
		PosA:    posA,
		PosB:    posB,

		PointSize:  f.PointSize,
		PointColor: hud.Hex(f.PointColor),
		PointAlpha: f.PointAlpha,

		LineWidth: f.LineWidth,
		LineStyle: style,
		LineColor: hud.Hex(f.LineColor),
		LineAlpha: f.LineAlpha,

		TextSize:  f.TextSize,
		TextAlign: align,
		TextBold:  f.TextBold,
		TextItal:  f.TextItal,
		FontName:  f.FontName,
		TextColor: hud.Hex(f.TextColor),
		TextAlpha: f.TextAlpha,

		Template: f.Template,
	}
	for i, raw := range []any{f.ValueA, f.ValueB, f.ValueC, f.ValueD} {
		v, err := toValue(raw)
		if err != nil {
			return hud.Field{}, fmt.Errorf("value_%c: %w", 'a'+i, err)
		}
		switch i {
		case 0:
			field.ValueA = v
		case 1:
			field.ValueB = v
		case 2:
			field.ValueC = v
		case 3:
			field.ValueD = v
		}
	}
	return field, nil
}

func toPoint(coords []float64) (hud.Point, error) {
	switch len(coords) {
	case 0:
		return hud.Point{}, nil
	case 2:
		return hud.Point{X: coords[0], Y: coords[1]}, nil
	case 3:
		return hud.Point{X: coords[0], Y: coords[1], Z: coords[2]}, nil
	}
	return hud.Point{}, fmt.Errorf("want 2 or 3 coordinates, got %d", len(coords))
}

func toValue(raw any) (hud.Value, error) {
	switch v := raw.(type) {
	case nil:
		return hud.Value{}, nil
	case bool:
		return hud.Bool(v), nil
	case int:
		return hud.Int(int64(v)), nil
	case int64:
		return hud.Int(v), nil
	case float64:
		return hud.Float(v), nil
	case string:
		return hud.Str(v), nil
	}
	return hud.Value{}, fmt.Errorf("unsupported value type %T", raw)
}
