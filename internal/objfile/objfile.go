// Package objfile reads Wavefront OBJ meshes into scene.Object values.
//
// Supported statements are v, vn, f, o and g. Texture coordinates are
// accepted in face corners and ignored. Polygons with more than three
// corners are fan-triangulated; corners without a normal get the flat face
// normal.
package objfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"raycast-renderer/internal/mathutil"
	"raycast-renderer/internal/scene"
)

// Options controls decoding.
type Options struct {
	// Charset of the file: "" or "utf-8", "windows-1252", "iso-8859-1".
	// Only object and group names are affected.
	Charset string
}

// Mesh is a parsed OBJ file.
type Mesh struct {
	Name    string   // first "o" statement, or the file base name
	Groups  []string // "g" names in order of appearance
	Object  scene.Object
	Skipped int // statements that were recognised but not used (vt, s, usemtl, ...)
}

var (
	ErrSyntax         = errors.New("malformed statement")
	ErrIndexRange     = errors.New("index out of range")
	ErrUnknownCharset = errors.New("unknown charset")
)

// Load opens and parses an OBJ file.
func Load(path string, opts Options) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("objfile: open %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f, filepath.Base(path), opts)
}

func decoder(name string) (*encoding.Decoder, error) {
	switch strings.ToLower(name) {
	case "", "utf-8", "utf8":
		return unicode.UTF8.NewDecoder(), nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252.NewDecoder(), nil
	case "iso-8859-1", "latin1":
		return charmap.ISO8859_1.NewDecoder(), nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownCharset, name)
}

// Parse reads OBJ text from r. name is used in error messages and as the
// default mesh name.
func Parse(r io.Reader, name string, opts Options) (*Mesh, error) {
	dec, err := decoder(opts.Charset)
	if err != nil {
		return nil, fmt.Errorf("objfile: %s: %w", name, err)
	}

	p := &parser{mesh: &Mesh{Name: strings.TrimSuffix(name, filepath.Ext(name))}}
	sc := bufio.NewScanner(transform.NewReader(r, dec))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		if err := p.line(sc.Text()); err != nil {
			return nil, fmt.Errorf("objfile: parse %s line %d: %w", name, lineNo, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("objfile: read %s: %w", name, err)
	}
	return p.mesh, nil
}

type parser struct {
	mesh     *Mesh
	haveName bool
}

func (p *parser) line(s string) error {
	if i := strings.IndexByte(s, '#'); i >= 0 {
		s = s[:i]
	}
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil
	}

	obj := &p.mesh.Object
	switch fields[0] {
	case "v":
		v, err := parseVec3(fields[1:])
		if err != nil {
			return err
		}
		obj.Points = append(obj.Points, v)
	case "vn":
		v, err := parseVec3(fields[1:])
		if err != nil {
			return err
		}
		obj.Normals = append(obj.Normals, v)
	case "f":
		return p.face(fields[1:])
	case "o":
		if !p.haveName && len(fields) > 1 {
			p.mesh.Name = strings.Join(fields[1:], " ")
			p.haveName = true
		}
	case "g":
		if len(fields) > 1 {
			p.mesh.Groups = append(p.mesh.Groups, strings.Join(fields[1:], " "))
		}
	default:
		p.mesh.Skipped++
	}
	return nil
}

func parseVec3(fields []string) (mathutil.Vec3, error) {
	// "v x y z [w]": a trailing w is ignored.
	if len(fields) < 3 {
		return mathutil.Vec3{}, fmt.Errorf("%w: need 3 coordinates, got %d", ErrSyntax, len(fields))
	}
	var v mathutil.Vec3
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return mathutil.Vec3{}, fmt.Errorf("%w: %v", ErrSyntax, err)
		}
		v[i] = float32(f)
	}
	return v, nil
}

// face triangulates one polygon as a fan around its first corner.
func (p *parser) face(fields []string) error {
	if len(fields) < 3 {
		return fmt.Errorf("%w: face needs 3 corners, got %d", ErrSyntax, len(fields))
	}
	obj := &p.mesh.Object
	corners := make([]scene.Corner, len(fields))
	missing := false
	for i, f := range fields {
		c, err := p.corner(f)
		if err != nil {
			return err
		}
		if c.Normal < 0 {
			missing = true
		}
		corners[i] = c
	}

	for i := 1; i+1 < len(corners); i++ {
		face := scene.Face{corners[0], corners[i], corners[i+1]}
		if missing {
			n := len(obj.Normals)
			obj.Normals = append(obj.Normals, flatNormal(obj, face))
			for k := range face {
				if face[k].Normal < 0 {
					face[k].Normal = n
				}
			}
		}
		obj.Faces = append(obj.Faces, face)
	}
	return nil
}

// corner parses "v", "v/vt", "v//vn" or "v/vt/vn" into zero-based indices.
// Normal is -1 when the corner has none.
func (p *parser) corner(s string) (scene.Corner, error) {
	parts := strings.Split(s, "/")
	if len(parts) > 3 {
		return scene.Corner{}, fmt.Errorf("%w: corner %q", ErrSyntax, s)
	}
	obj := &p.mesh.Object
	pi, err := resolveIndex(parts[0], len(obj.Points))
	if err != nil {
		return scene.Corner{}, fmt.Errorf("vertex %q: %w", s, err)
	}
	c := scene.Corner{Point: pi, Normal: -1}
	if len(parts) == 3 && parts[2] != "" {
		ni, err := resolveIndex(parts[2], len(obj.Normals))
		if err != nil {
			return scene.Corner{}, fmt.Errorf("normal %q: %w", s, err)
		}
		c.Normal = ni
	}
	return c, nil
}

// resolveIndex converts a 1-based or negative (relative) OBJ index.
func resolveIndex(s string, count int) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	var idx int
	switch {
	case n > 0:
		idx = n - 1
	case n < 0:
		idx = count + n
	default:
		return 0, fmt.Errorf("%w: zero index", ErrIndexRange)
	}
	if idx < 0 || idx >= count {
		return 0, fmt.Errorf("%w: %d of %d", ErrIndexRange, n, count)
	}
	return idx, nil
}

func flatNormal(obj *scene.Object, f scene.Face) mathutil.Vec3 {
	a := obj.Points[f[0].Point]
	b := obj.Points[f[1].Point]
	c := obj.Points[f[2].Point]
	return b.Sub(a).Cross(c.Sub(a)).Normalize()
}
