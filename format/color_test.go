package format

import (
	"bytes"
	"testing"

	codenames "github.com/hbiede/Codenames-Board-Generator"
)

func TestRenderColor(t *testing.T) {
	words := grid([][]string{
		{"pie", "bow"},
		{"drill", "kiwi"},
	})
	key := grid([][]string{
		{"B", ""},
		{"X", "R"},
	})

	var buf bytes.Buffer
	if err := RenderColor(&buf, words, key); err != nil {
		t.Fatalf("RenderColor() = %v", err)
	}

	out := buf.String()
	for _, w := range []string{"pie", "bow", "drill", "kiwi"} {
		if !bytes.Contains(buf.Bytes(), []byte(w)) {
			t.Errorf("output is missing %q:\n%s", w, out)
		}
	}
}

func TestRenderColorNilKey(t *testing.T) {
	words := grid([][]string{{"pie"}})

	var buf bytes.Buffer
	if err := RenderColor(&buf, words, nil); err != nil {
		t.Fatalf("RenderColor() = %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("pie")) {
		t.Errorf("output is missing the word:\n%s", buf.String())
	}
}

func TestRenderColorSizeMismatch(t *testing.T) {
	if err := RenderColor(&bytes.Buffer{}, codenames.NewGrid(5), codenames.NewGrid(3)); err == nil {
		t.Errorf("RenderColor() with mismatched sizes should fail")
	}
}
