package theme

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	input := `
# comment
Name: ocean
Background: #001122
Highlight: gold
StatusBackground: #10203040
Unknown: #FFFFFF
`
	th, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if th.Name != "ocean" {
		t.Errorf("Expected name 'ocean', got %q", th.Name)
	}
	if th.Background != (color.RGBA{0x00, 0x11, 0x22, 0xFF}) {
		t.Errorf("Unexpected Background color: %+v", th.Background)
	}
	if th.Highlight != (color.RGBA{0xFF, 0xD7, 0x00, 0xFF}) {
		t.Errorf("Unexpected Highlight color: %+v", th.Highlight)
	}
	if th.StatusBackground.A != 0x40 {
		t.Errorf("Expected alpha 0x40, got %+v", th.StatusBackground)
	}
	if th.Foreground != Default().Foreground {
		t.Errorf("Missing keys should keep defaults, got %+v", th.Foreground)
	}
}

func TestParseBadColor(t *testing.T) {
	if _, err := Parse(strings.NewReader("Background: #12345")); err == nil {
		t.Fatal("Expected error for short hex")
	}
	if _, err := Parse(strings.NewReader("Background: notacolor")); err == nil {
		t.Fatal("Expected error for unknown colour name")
	}
}

func TestToHexRoundTrip(t *testing.T) {
	for _, c := range []color.RGBA{{1, 2, 3, 255}, {0xAA, 0xBB, 0xCC, 0x10}} {
		got, err := ParseColor(ToHex(c))
		if err != nil {
			t.Fatalf("ParseColor(%s): %v", ToHex(c), err)
		}
		if got != c {
			t.Errorf("round trip %+v gave %+v", c, got)
		}
	}
}

func TestLoaderOrder(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "paper.theme"), []byte("Name: paper\nBackground: #FFFFFF\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	custom := Default()
	custom.Name = "mine"
	l := &Loader{ConfigDir: dir, Custom: map[string]*Theme{"mine": custom}}

	cases := map[string]string{
		"":                                "default",
		"mine":                            "mine",
		"light":                           "light",
		"paper":                           "paper",
		filepath.Join(dir, "paper.theme"): "paper",
	}
	for name, want := range cases {
		th, err := l.Load(name)
		if err != nil {
			t.Fatalf("Load(%q): %v", name, err)
		}
		if th.Name != want {
			t.Errorf("Load(%q) = %q, want %q", name, th.Name, want)
		}
	}

	if _, err := l.Load("missing"); err == nil {
		t.Error("Expected error for missing theme")
	}
}

func TestFields(t *testing.T) {
	fs := Fields(Default())
	if len(fs) != 4 || fs[0].Name != "Background" {
		t.Fatalf("unexpected fields %+v", fs)
	}
}
