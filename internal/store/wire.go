package store

// The wire types mirror the scene model field for field. Shapes are externally
// tagged: exactly one of the shape fields is set. Tuples are arrays.

type document struct {
	Objects  []object   `json:"objects" yaml:"objects"`
	Selected int        `json:"selected_object" yaml:"selected_object"`
	Groups   []object   `json:"groups" yaml:"groups"`
	Camera   [2]int     `json:"camera" yaml:"camera,flow"`
	Scale    [2]float32 `json:"scale" yaml:"scale,flow"`
	Rotation float32    `json:"rotation" yaml:"rotation"`
}

type object struct {
	ID       string     `json:"id,omitempty" yaml:"id,omitempty"`
	Shape    shape      `json:"shape" yaml:"shape"`
	Position [2]int     `json:"position" yaml:"position,flow"`
	Scale    [2]float32 `json:"scale" yaml:"scale,flow"`
	Rotation float32    `json:"rotation" yaml:"rotation"`
	Color    [3]int     `json:"color" yaml:"color,flow"`
}

type shape struct {
	Circle  *circle      `json:"Circle,omitempty" yaml:"Circle,omitempty"`
	Rect    *[2][2]int   `json:"Rect,omitempty" yaml:"Rect,omitempty,flow"`
	Polygon *[][2]int    `json:"Polygon,omitempty" yaml:"Polygon,omitempty,flow"`
	Letters *string      `json:"Letters,omitempty" yaml:"Letters,omitempty"`
	Lines   *[][2][2]int `json:"Lines,omitempty" yaml:"Lines,omitempty,flow"`
	Group   *[]object    `json:"Group,omitempty" yaml:"Group,omitempty"`
}

type circle struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

func (s shape) tags() int {
	n := 0
	for _, set := range []bool{
		s.Circle != nil,
		s.Rect != nil,
		s.Polygon != nil,
		s.Letters != nil,
		s.Lines != nil,
		s.Group != nil,
	} {
		if set {
			n++
		}
	}
	return n
}
