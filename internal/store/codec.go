// Package store saves and loads scenes as self-describing JSON or YAML
// documents.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/example/vecdraw/internal/geom"
	"github.com/example/vecdraw/internal/scene"
)

// ErrMalformed wraps every decode failure.
var ErrMalformed = errors.New("malformed scene document")

// Format selects the document syntax.
type Format int

const (
	JSON Format = iota
	YAML
)

func (f Format) String() string {
	if f == YAML {
		return "yaml"
	}
	return "json"
}

// FormatFor picks the format from a file extension. Anything other than .yaml
// or .yml is JSON.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	}
	return JSON
}

// Encode writes s to w. Every object is written by value together with its
// id, so nodes reachable from several lists are repeated and can be joined up
// again by Decode.
func Encode(w io.Writer, s *scene.Scene, f Format) error {
	doc := encodeScene(s)
	switch f {
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	}
}

// Marshal is Encode into a byte slice.
func Marshal(s *scene.Scene, f Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, s, f); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode reads a document and builds a new scene. The first occurrence of an
// object id creates the node and every later occurrence refers to it. Objects
// without an id are always distinct. Any error leaves nothing half built; the
// error wraps ErrMalformed.
func Decode(r io.Reader, f Format) (*scene.Scene, error) {
	var doc document
	switch f {
	case YAML:
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
	default:
		if err := json.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
	}
	s, err := decodeScene(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return s, nil
}

// Unmarshal is Decode from a byte slice.
func Unmarshal(b []byte, f Format) (*scene.Scene, error) {
	return Decode(bytes.NewReader(b), f)
}

func encodeScene(s *scene.Scene) document {
	return document{
		Objects:  encodeList(s.Objects),
		Selected: s.Selected,
		Groups:   encodeList(s.Groups),
		Camera:   [2]int{s.Camera.X, s.Camera.Y},
		Scale:    [2]float32{s.Scale.X, s.Scale.Y},
		Rotation: s.Rotation,
	}
}

func encodeList(l scene.ObjectList) []object {
	out := make([]object, 0, len(l))
	for _, o := range l {
		out = append(out, encodeObject(o))
	}
	return out
}

func encodeObject(o *scene.Object) object {
	return object{
		ID:       o.ID,
		Shape:    encodeShape(o.Shape),
		Position: [2]int{o.Position.X, o.Position.Y},
		Scale:    [2]float32{o.Scale.X, o.Scale.Y},
		Rotation: o.Rotation,
		Color:    [3]int{int(o.Color.R), int(o.Color.G), int(o.Color.B)},
	}
}

func pair(p geom.Point) [2]int { return [2]int{p.X, p.Y} }

func encodeShape(sh scene.Shape) shape {
	switch v := sh.(type) {
	case *scene.Circle:
		return shape{Circle: &circle{Width: v.Width, Height: v.Height}}
	case *scene.Rect:
		r := [2][2]int{pair(v.P0), pair(v.P1)}
		return shape{Rect: &r}
	case *scene.Polygon:
		pts := make([][2]int, 0, len(v.Points))
		for _, p := range v.Points {
			pts = append(pts, pair(p))
		}
		return shape{Polygon: &pts}
	case *scene.Letters:
		text := v.Text
		return shape{Letters: &text}
	case *scene.Lines:
		lines := make([][2][2]int, 0, len(v.Lines))
		for _, l := range v.Lines {
			lines = append(lines, [2][2]int{pair(l.P0), pair(l.P1)})
		}
		return shape{Lines: &lines}
	case *scene.Group:
		children := encodeList(v.Children)
		return shape{Group: &children}
	}
	panic(fmt.Sprintf("store: unknown shape %T", sh))
}

type decoder struct {
	seen map[string]*scene.Object
	open map[string]bool
}

func decodeScene(doc document) (*scene.Scene, error) {
	d := &decoder{seen: map[string]*scene.Object{}, open: map[string]bool{}}
	objects, err := d.list(doc.Objects, "objects")
	if err != nil {
		return nil, err
	}
	groups, err := d.list(doc.Groups, "groups")
	if err != nil {
		return nil, err
	}
	if len(groups) != scene.GroupSlots {
		return nil, fmt.Errorf("groups: %d slots, want %d", len(groups), scene.GroupSlots)
	}
	for i, g := range groups {
		if _, ok := g.Shape.(*scene.Group); !ok {
			return nil, fmt.Errorf("groups[%d]: %s is not a group", i, g.Shape.Kind())
		}
	}
	switch {
	case doc.Selected < 0:
		return nil, fmt.Errorf("selected_object %d is negative", doc.Selected)
	case len(objects) > 0 && doc.Selected >= len(objects):
		return nil, fmt.Errorf("selected_object %d out of range for %d objects", doc.Selected, len(objects))
	case len(objects) == 0 && doc.Selected != 0:
		return nil, fmt.Errorf("selected_object %d with no objects", doc.Selected)
	}
	scale, err := decodeScale(doc.Scale)
	if err != nil {
		return nil, err
	}

	return &scene.Scene{
		Objects:   objects,
		Selected:  doc.Selected,
		Groups:    groups,
		Camera:    geom.Pt(doc.Camera[0], doc.Camera[1]),
		Scale:     scale,
		Rotation:  doc.Rotation,
		WrapWidth: scene.DefaultWrapWidth,
		Highlight: scene.HighlightColor,
	}, nil
}

func decodeScale(v [2]float32) (scene.Scale, error) {
	if v[0] < 0 || v[1] < 0 {
		return scene.Scale{}, fmt.Errorf("negative scale (%g, %g)", v[0], v[1])
	}
	return scene.Scale{X: v[0], Y: v[1]}, nil
}

func decodeColor(v [3]int) (scene.Color, error) {
	for _, x := range v {
		if x < 0 || x > 255 {
			return scene.Color{}, fmt.Errorf("colour component %d out of range", x)
		}
	}
	return scene.Color{R: uint8(v[0]), G: uint8(v[1]), B: uint8(v[2])}, nil
}

func (d *decoder) list(in []object, path string) (scene.ObjectList, error) {
	var out scene.ObjectList
	for i, w := range in {
		o, err := d.object(w, fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, nil
}

func (d *decoder) object(w object, path string) (*scene.Object, error) {
	id := w.ID
	if id != "" {
		if err := scene.ValidateID(id); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if o, ok := d.seen[id]; ok {
			return o, nil
		}
		if d.open[id] {
			return nil, fmt.Errorf("%s: object %s contains itself", path, id)
		}
		d.open[id] = true
		defer delete(d.open, id)
	} else {
		id = scene.NewID()
	}

	sh, err := d.shape(w.Shape, path)
	if err != nil {
		return nil, err
	}
	scale, err := decodeScale(w.Scale)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	c, err := decodeColor(w.Color)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	o := &scene.Object{
		ID:       id,
		Shape:    sh,
		Position: geom.Pt(w.Position[0], w.Position[1]),
		Scale:    scale,
		Rotation: w.Rotation,
		Color:    c,
	}
	if w.ID != "" {
		d.seen[w.ID] = o
	}
	return o, nil
}

func (d *decoder) shape(w shape, path string) (scene.Shape, error) {
	if n := w.tags(); n != 1 {
		return nil, fmt.Errorf("%s: shape has %d variants set, want exactly 1", path, n)
	}
	switch {
	case w.Circle != nil:
		return &scene.Circle{Width: w.Circle.Width, Height: w.Circle.Height}, nil
	case w.Rect != nil:
		r := *w.Rect
		return &scene.Rect{P0: geom.Pt(r[0][0], r[0][1]), P1: geom.Pt(r[1][0], r[1][1])}, nil
	case w.Polygon != nil:
		if len(*w.Polygon) < 2 {
			return nil, fmt.Errorf("%s: polygon has %d vertices, want at least 2", path, len(*w.Polygon))
		}
		pts := make([]geom.Point, 0, len(*w.Polygon))
		for _, p := range *w.Polygon {
			pts = append(pts, geom.Pt(p[0], p[1]))
		}
		return &scene.Polygon{Points: pts}, nil
	case w.Letters != nil:
		return &scene.Letters{Text: *w.Letters}, nil
	case w.Lines != nil:
		var lines []geom.Line
		for _, l := range *w.Lines {
			lines = append(lines, geom.L(l[0][0], l[0][1], l[1][0], l[1][1]))
		}
		return &scene.Lines{Lines: lines}, nil
	default:
		children, err := d.list(*w.Group, path+".Group")
		if err != nil {
			return nil, err
		}
		return &scene.Group{Children: children}, nil
	}
}
