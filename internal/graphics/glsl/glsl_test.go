package glsl

import (
	"strings"
	"testing"
	"testing/fstest"

	"synthwave/assets"
)

func TestLoadResolvesIncludes(t *testing.T) {
	fsys := fstest.MapFS{
		"a.vert":         {Data: []byte("#version 410 core\n#include \"lib/noise.glsl\"\nvoid main() {}\n")},
		"lib/noise.glsl": {Data: []byte("float noise() { return 0.0; }\n")},
	}
	src, err := Load(fsys, "a.vert", nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := "#version 410 core\nfloat noise() { return 0.0; }\nvoid main() {}\n"
	if src != want {
		t.Errorf("got %q, want %q", src, want)
	}
}

func TestLoadInjectsDefinesAfterVersion(t *testing.T) {
	fsys := fstest.MapFS{
		"b.frag": {Data: []byte("#version 410 core\nuniform float c[KERNEL_RADIUS];\n")},
	}
	src, err := Load(fsys, "b.frag", map[string]string{"KERNEL_RADIUS": "5", "A": "1"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := "#version 410 core\n#define A 1\n#define KERNEL_RADIUS 5\nuniform float c[KERNEL_RADIUS];\n"
	if src != want {
		t.Errorf("got %q, want %q", src, want)
	}
}

func TestLoadErrors(t *testing.T) {
	fsys := fstest.MapFS{
		"cycle.glsl": {Data: []byte("#include \"cycle.glsl\"\n")},
		"bad.glsl":   {Data: []byte("#include noise.glsl\n")},
		"miss.glsl":  {Data: []byte("#include \"nope.glsl\"\n")},
	}
	for _, name := range []string{"cycle.glsl", "bad.glsl", "miss.glsl", "absent.glsl"} {
		if _, err := Load(fsys, name, nil); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestEmbeddedShadersExpand(t *testing.T) {
	src, err := Load(assets.Shaders, "shaders/terrain/terrain.vert", nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if strings.Contains(src, "#include") {
		t.Errorf("include left in expanded source")
	}
	if !strings.Contains(src, "float cnoise(vec3 P)") {
		t.Errorf("noise function missing from terrain vertex shader")
	}
}
