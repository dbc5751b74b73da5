package scene

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/example/vecdraw/internal/geom"
)

// InvalidText replaces the prompt text when a command is not understood.
const InvalidText = "invalid"

// MaxExtent bounds every command argument in absolute value. Larger values
// make the command invalid.
const MaxExtent = 4096

// SpawnPosition is where objects created from the prompt are placed.
var SpawnPosition = geom.Pt(100, 100)

// Prompt accumulates command text inside a Letters node that is also drawn as
// part of the scene.
type Prompt struct {
	node *Object
}

// NewPrompt binds a prompt to node, which must hold a *Letters shape.
func NewPrompt(node *Object) (*Prompt, error) {
	if node == nil {
		return nil, fmt.Errorf("prompt: no command node")
	}
	if _, ok := node.Shape.(*Letters); !ok {
		return nil, fmt.Errorf("prompt: command node is a %s, want Letters", node.Shape.Kind())
	}
	return &Prompt{node: node}, nil
}

// Node returns the bound command node.
func (p *Prompt) Node() *Object { return p.node }

func (p *Prompt) letters() *Letters { return p.node.Shape.(*Letters) }

// Text returns the current command text.
func (p *Prompt) Text() string { return p.letters().Text }

// Type appends text.
func (p *Prompt) Type(text string) {
	p.letters().Text += text
}

// Backspace removes the last character, if any.
func (p *Prompt) Backspace() {
	l := p.letters()
	_, size := utf8.DecodeLastRuneInString(l.Text)
	l.Text = l.Text[:len(l.Text)-size]
}

// Clear empties the command text.
func (p *Prompt) Clear() { p.letters().Text = "" }

// Commit interprets the text as a command. A recognised command appends the
// new object to s and returns it; the text is left as typed. Anything else
// sets the text to InvalidText and returns nil.
//
// Commands, arguments separated by single spaces:
//
//	ellipse W H
//	rect X0 Y0 X1 Y1
func (p *Prompt) Commit(s *Scene) *Object {
	l := p.letters()
	shape, ok := ParseCommand(l.Text)
	if !ok {
		Logger().Debug("invalid command", "text", l.Text)
		l.Text = InvalidText
		return nil
	}
	o := NewObjectWithColor(shape, SpawnPosition, WarningColor)
	s.Add(o)
	Logger().Debug("spawned object", "kind", shape.Kind().String(), "object", o.ID)
	return o
}

// ParseCommand turns command text into the shape it spawns.
func ParseCommand(text string) (Shape, bool) {
	parts := strings.Split(text, " ")
	args, ok := atois(parts[1:])
	if !ok {
		return nil, false
	}
	switch {
	case parts[0] == "ellipse" && len(args) == 2:
		return &Circle{Width: args[0], Height: args[1]}, true
	case parts[0] == "rect" && len(args) == 4:
		return &Rect{P0: geom.Pt(args[0], args[1]), P1: geom.Pt(args[2], args[3])}, true
	}
	return nil, false
}

func atois(parts []string) ([]int, bool) {
	out := make([]int, len(parts))
	for i, s := range parts {
		v, err := strconv.Atoi(s)
		if err != nil || v > MaxExtent || v < -MaxExtent {
			return nil, false
		}
		out[i] = v
	}
	return out, true
}
