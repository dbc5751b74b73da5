package main

import (
	"bytes"
	"errors"
	"flag"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/vecdraw/internal/config"
	"github.com/example/vecdraw/internal/scene"
	"github.com/example/vecdraw/internal/store"
)

func newTestRoot(t *testing.T) (*root, *bytes.Buffer) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	out := &bytes.Buffer{}
	r := &root{
		fs:      flag.NewFlagSet("vecdraw", flag.ContinueOnError),
		program: "vecdraw",
		config:  config.New(),
		stdin:   strings.NewReader(""),
		stdout:  out,
		stderr:  io.Discard,
	}
	return r, out
}

func TestRunWithoutCommandIsUsage(t *testing.T) {
	r, _ := newTestRoot(t)
	err := r.Run(nil)
	var uerr *UsageError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected usage error, got %v", err)
	}
	if want := "Usage: vecdraw"; !strings.Contains(uerr.Error(), want) {
		t.Fatalf("expected help to contain %q, got %q", want, uerr.Error())
	}
}

func TestHelpTemplatesRender(t *testing.T) {
	r, _ := newTestRoot(t)
	path := filepath.Join(t.TempDir(), "d.json")
	shell, err := parseShellCmd([]string{"-file", path}, r)
	if err != nil {
		t.Fatal(err)
	}
	window, err := parseWindowCmd(nil, r)
	if err != nil {
		t.Fatal(err)
	}
	serve, err := parseServeCmd(nil, r)
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := parseConfigCmd(nil, r)
	if err != nil {
		t.Fatal(err)
	}
	newc, err := parseNewCmd(nil, r)
	if err != nil {
		t.Fatal(err)
	}
	for _, h := range []HelpData{r, shell, window, serve, cfg, newc, &versionCmd{r: r}} {
		help, err := (&UsageError{of: h}).renderHelp()
		if err != nil {
			t.Fatalf("%s: %v", h.Template(), err)
		}
		if !strings.HasPrefix(help, "Usage: "+h.Program()) {
			t.Errorf("%s: unexpected help %q", h.Template(), help)
		}
	}
}

func TestExecRequiresCommands(t *testing.T) {
	r, _ := newTestRoot(t)
	_, err := parseExecCmd([]string{"-file", "x.json"}, r)
	var uerr *UsageError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected usage error, got %v", err)
	}
}

func TestNewThenExec(t *testing.T) {
	r, out := newTestRoot(t)
	path := filepath.Join(t.TempDir(), "drawing.json")

	if err := r.Run([]string{"new", "-file", path}); err != nil {
		t.Fatalf("new failed: %v", err)
	}
	if err := r.Run([]string{"new", "-file", path}); err == nil {
		t.Fatalf("expected new to refuse an existing file")
	}

	out.Reset()
	if err := r.Run([]string{"exec", "-file", path, "ellipse 4 2", "bogus", "rect 0 0 9 9"}); err != nil {
		t.Fatalf("exec failed: %v", err)
	}
	if want := `"bogus": invalid`; !strings.Contains(out.String(), want) {
		t.Errorf("expected output to contain %q, got %q", want, out.String())
	}

	sc, err := store.LoadFile(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got, want := len(sc.Objects), scene.GroupSlots+4; got != want {
		t.Fatalf("expected %d objects, got %d", want, got)
	}
	if _, ok := sc.Objects[len(sc.Objects)-1].Shape.(*scene.Rect); !ok {
		t.Errorf("expected the last object to be a rect, got %s", sc.Objects[len(sc.Objects)-1])
	}
	if got := sc.CommandNode().Shape.(*scene.Letters).Text; got != "rect 0 0 9 9" {
		t.Errorf("unexpected prompt text %q", got)
	}
}

func TestExecDryRun(t *testing.T) {
	r, _ := newTestRoot(t)
	path := filepath.Join(t.TempDir(), "drawing.json")
	if err := r.Run([]string{"exec", "-file", path, "-n", "ellipse 1 1"}); err != nil {
		t.Fatalf("exec failed: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no file to be written, got %v", err)
	}
}

func TestRender(t *testing.T) {
	r, _ := newTestRoot(t)
	dir := t.TempDir()
	output := filepath.Join(dir, "out.png")
	args := []string{"render", "-file", filepath.Join(dir, "missing.json"), "-output", output, "-width", "64", "-height", "32"}
	if err := r.Run(args); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	f, err := os.Open(output)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 32 {
		t.Errorf("unexpected bounds %v", b)
	}
}

func TestRenderRequiresOutput(t *testing.T) {
	r, _ := newTestRoot(t)
	_, err := parseRenderCmd([]string{"-file", "x.json"}, r)
	if err == nil {
		t.Fatalf("expected error")
	}
	if want := "-to-clipboard is required"; !strings.Contains(err.Error(), want) {
		t.Fatalf("expected error to mention %q, got %v", want, err)
	}
}

func TestShellCommands(t *testing.T) {
	r, out := newTestRoot(t)
	path := filepath.Join(t.TempDir(), "drawing.json")
	args := []string{"-file", path,
		"-e", "run rect 0 0 3 3",
		"-e", "next",
		"-e", "next",
		"-e", "move 5 -5",
		"-e", "group 2",
		"-e", "pan 10 0",
		"-e", "save",
		"-e", "list",
		"-e", "exit",
		"-e", "unknown",
	}
	s, err := parseShellCmd(args, r)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Run(); err != nil {
		t.Fatalf("shell failed: %v", err)
	}
	for _, want := range []string{"spawned Rect", "saved " + path, "children=1"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("expected output to contain %q, got %q", want, out.String())
		}
	}

	sc, err := store.LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if sc.Camera.X != 10 {
		t.Errorf("expected camera x 10, got %d", sc.Camera.X)
	}
	g := sc.Groups[2].Shape.(*scene.Group)
	if len(g.Children) != 1 {
		t.Fatalf("expected one child in slot 2, got %d", len(g.Children))
	}
	if _, ok := g.Children[0].Shape.(*scene.Circle); !ok {
		t.Fatalf("expected the ellipse in slot 2, got %s", g.Children[0])
	}
	if p := g.Children[0].Position; p.X != 305 || p.Y != 295 {
		t.Errorf("expected the ellipse at (305,295), got %v", p)
	}
}

func TestShellErrors(t *testing.T) {
	r, _ := newTestRoot(t)
	s, err := parseShellCmd([]string{"-file", filepath.Join(t.TempDir(), "d.json"), "-e", "move 1"}, r)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Run(); err == nil || !strings.Contains(err.Error(), "requires 2 integer arguments") {
		t.Fatalf("expected argument error, got %v", err)
	}

	s.execs = commandList{"group 10"}
	if err := s.Run(); !errors.Is(err, scene.ErrInvalidSlot) {
		t.Fatalf("expected invalid slot, got %v", err)
	}

	s.execs = commandList{"frobnicate"}
	if err := s.Run(); err == nil || !strings.Contains(err.Error(), "unknown command") {
		t.Fatalf("expected unknown command error, got %v", err)
	}
}

func TestShellLoop(t *testing.T) {
	r, out := newTestRoot(t)
	r.stdin = strings.NewReader("type ellipse 2\nbackspace\ntype 3 3\ncommit\nbogus\nstatus\nquit\nlist\n")
	s, err := parseShellCmd([]string{"-file", filepath.Join(t.TempDir(), "d.json")}, r)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Run(); err != nil {
		t.Fatalf("shell failed: %v", err)
	}
	text := out.String()
	if !strings.Contains(text, "spawned Circle") {
		t.Errorf("expected a spawned circle, got %q", text)
	}
	if strings.Contains(text, "(prompt)") {
		t.Errorf("expected the shell to stop at quit, got %q", text)
	}
	if !strings.Contains(text, "zoom 1.0") {
		t.Errorf("expected status line, got %q", text)
	}
}

func TestShellPaste(t *testing.T) {
	orig := readScene
	readScene = func() (*scene.Scene, error) { return scene.New(), nil }
	t.Cleanup(func() { readScene = orig })

	r, _ := newTestRoot(t)
	s, err := parseShellCmd([]string{"-file", filepath.Join(t.TempDir(), "d.json"), "-e", "paste"}, r)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Run(); err != nil {
		t.Fatalf("paste failed: %v", err)
	}
	n := 0
	s.session.View(func(sc *scene.Scene, _ *scene.Prompt) { n = len(sc.Objects) })
	if n != scene.GroupSlots+1 {
		t.Errorf("expected pasted scene plus command node, got %d objects", n)
	}
}

func TestConfigPrint(t *testing.T) {
	r, out := newTestRoot(t)
	if err := r.Run([]string{"config", "print"}); err != nil {
		t.Fatal(err)
	}
	if want := "save_file = saved_drawing.json"; !strings.Contains(out.String(), want) {
		t.Errorf("expected %q in %q", want, out.String())
	}
}

func TestConfigSave(t *testing.T) {
	r, _ := newTestRoot(t)
	path := filepath.Join(t.TempDir(), "saved.rc")
	if err := r.Run([]string{"config", "-output", path, "save"}); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if _, err := config.Parse(f); err != nil {
		t.Fatalf("saved config does not parse: %v", err)
	}
}

func TestVersion(t *testing.T) {
	r, out := newTestRoot(t)
	if err := r.Run([]string{"version"}); err != nil {
		t.Fatal(err)
	}
	if got := out.String(); got != "vecdraw version dev\n" {
		t.Errorf("unexpected version output %q", got)
	}
}

func TestBadLogLevel(t *testing.T) {
	r, _ := newTestRoot(t)
	r.config.LogLevel = "chatty"
	if err := r.Run([]string{"version"}); err == nil {
		t.Fatalf("expected log level error")
	}
}
