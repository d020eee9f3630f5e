package objfile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"raycast-renderer/internal/mathutil"
	"raycast-renderer/internal/scene"
)

const quad = `# unit quad in the XZ plane
o Quad
v -1 0 -1
v  1 0 -1
v  1 0  1
v -1 0  1
vn 0 1 0
vt 0 0
s off
f 1//1 2//1 3//1
f 1/1/1 3/1/1 4/1/1
`

func TestParse_Quad(t *testing.T) {
	m, err := Parse(strings.NewReader(quad), "quad.obj", Options{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if m.Name != "Quad" {
		t.Errorf("Name = %q, want Quad", m.Name)
	}
	obj := m.Object
	if len(obj.Points) != 4 || len(obj.Normals) != 1 || len(obj.Faces) != 2 {
		t.Fatalf("got %d points, %d normals, %d faces", len(obj.Points), len(obj.Normals), len(obj.Faces))
	}
	want := scene.Face{{Point: 0, Normal: 0}, {Point: 2, Normal: 0}, {Point: 3, Normal: 0}}
	if obj.Faces[1] != want {
		t.Errorf("face 1 = %v, want %v", obj.Faces[1], want)
	}
	if m.Skipped != 2 {
		t.Errorf("Skipped = %d, want 2 (vt, s)", m.Skipped)
	}
	if _, err := scene.NewPolygons(obj); err != nil {
		t.Errorf("NewPolygons rejected parsed mesh: %v", err)
	}
}

func TestParse_FanTriangulation(t *testing.T) {
	src := "v 0 0 0\nv 1 0 0\nv 1 1 0\nv 0 1 0\nv -1 1 0\nvn 0 0 1\nf 1//1 2//1 3//1 4//1 5//1\n"
	m, err := Parse(strings.NewReader(src), "fan", Options{})
	if err != nil {
		t.Fatal(err)
	}
	if got := len(m.Object.Faces); got != 3 {
		t.Fatalf("faces = %d, want 3", got)
	}
	for i, f := range m.Object.Faces {
		if f[0].Point != 0 || f[1].Point != i+1 || f[2].Point != i+2 {
			t.Errorf("face %d = %v, not a fan around vertex 0", i, f)
		}
	}
}

func TestParse_NegativeIndices(t *testing.T) {
	src := "v 0 0 0\nv 1 0 0\nv 0 1 0\nvn 0 0 1\nf -3//-1 -2//-1 -1//-1\n"
	m, err := Parse(strings.NewReader(src), "neg", Options{})
	if err != nil {
		t.Fatal(err)
	}
	want := scene.Face{{Point: 0, Normal: 0}, {Point: 1, Normal: 0}, {Point: 2, Normal: 0}}
	if m.Object.Faces[0] != want {
		t.Errorf("face = %v, want %v", m.Object.Faces[0], want)
	}
}

func TestParse_MissingNormalsGetFlatNormal(t *testing.T) {
	src := "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"
	m, err := Parse(strings.NewReader(src), "flat", Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Object.Normals) != 1 {
		t.Fatalf("normals = %d, want 1", len(m.Object.Normals))
	}
	if n := m.Object.Normals[0]; n != (mathutil.Vec3{0, 0, 1}) {
		t.Errorf("normal = %v, want +Z", n)
	}
	for _, c := range m.Object.Faces[0] {
		if c.Normal != 0 {
			t.Errorf("corner normal = %d, want 0", c.Normal)
		}
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr error
		line    string
	}{
		{"short vertex", "v 1 2\n", ErrSyntax, "line 1"},
		{"bad float", "v 1 x 3\n", ErrSyntax, "line 1"},
		{"short face", "v 0 0 0\nv 1 0 0\nf 1 2\n", ErrSyntax, "line 3"},
		{"vertex out of range", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 4\n", ErrIndexRange, "line 4"},
		{"normal out of range", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1//1 2//1 3//1\n", ErrIndexRange, "line 4"},
		{"zero index", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 0 1 2\n", ErrIndexRange, "line 4"},
		{"too many slashes", "v 0 0 0\nf 1/1/1/1 1 1\n", ErrSyntax, "line 2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.src), "bad.obj", Options{})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.line) {
				t.Errorf("err %q does not name %s", err, tt.line)
			}
		})
	}
}

func TestParse_Charset(t *testing.T) {
	src := "o caf\xe9\ng r\xe9sum\xe9\nv 0 0 0\n"
	tests := []struct {
		charset   string
		wantName  string
		wantGroup string
	}{
		{"windows-1252", "café", "résumé"},
		{"iso-8859-1", "café", "résumé"},
	}
	for _, tt := range tests {
		t.Run(tt.charset, func(t *testing.T) {
			m, err := Parse(strings.NewReader(src), "legacy.obj", Options{Charset: tt.charset})
			if err != nil {
				t.Fatal(err)
			}
			if m.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", m.Name, tt.wantName)
			}
			if len(m.Groups) != 1 || m.Groups[0] != tt.wantGroup {
				t.Errorf("Groups = %q, want [%q]", m.Groups, tt.wantGroup)
			}
		})
	}

	if _, err := Parse(strings.NewReader(src), "x", Options{Charset: "ebcdic"}); !errors.Is(err, ErrUnknownCharset) {
		t.Errorf("err = %v, want ErrUnknownCharset", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quad.obj")
	if err := os.WriteFile(path, []byte(quad), 0o644); err != nil {
		t.Fatal(err)
	}
	m, err := Load(path, Options{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(m.Object.Faces) != 2 {
		t.Errorf("faces = %d, want 2", len(m.Object.Faces))
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.obj"), Options{}); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestParse_DefaultNameFromFile(t *testing.T) {
	m, err := Parse(strings.NewReader("v 0 0 0\n"), "teapot.obj", Options{})
	if err != nil {
		t.Fatal(err)
	}
	if m.Name != "teapot" {
		t.Errorf("Name = %q, want teapot", m.Name)
	}
}
