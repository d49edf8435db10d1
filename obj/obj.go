// Package obj reads Wavefront OBJ models into flat attribute slices for
// the rast pipeline.
//
// Only the subset of the format needed for triangle rendering is
// understood: v, vt, vn and f records. Faces with more than three
// corners are triangulated as fans. Everything else (groups, materials,
// smoothing) is ignored.
package obj

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/rast"
)

// Load parses an OBJ model from r. The result is a flat attribute
// slice: every consecutive triple is one triangle, ready for
// Pipeline.Draw. Faces without normals get a computed face normal;
// faces without texture coordinates get zero UVs.
func Load(r io.Reader) ([]rast.StdAttribute, error) {
	var (
		positions []rast.Vec4
		uvs       []rast.Vec2
		normals   []rast.Vec3
		attrs     []rast.StdAttribute
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		fields := strings.Fields(line)

		var err error
		switch fields[0] {
		case "v":
			err = parseV(fields[1:], &positions)
		case "vt":
			err = parseVT(fields[1:], &uvs)
		case "vn":
			err = parseVN(fields[1:], &normals)
		case "f":
			attrs, err = parseFace(fields[1:], positions, uvs, normals, attrs)
		}
		if err != nil {
			return nil, fmt.Errorf("obj: line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("obj: %w", err)
	}

	rast.Logger().Debug("obj: model loaded",
		"vertices", len(positions), "triangles", len(attrs)/3)
	return attrs, nil
}

// LoadFile parses an OBJ model from a file.
func LoadFile(path string) ([]rast.StdAttribute, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	return Load(f)
}

func parseV(fields []string, positions *[]rast.Vec4) error {
	v, err := parseFloats(fields, 3)
	if err != nil {
		return err
	}
	*positions = append(*positions, rast.Point3(v[0], v[1], v[2]))
	return nil
}

func parseVT(fields []string, uvs *[]rast.Vec2) error {
	v, err := parseFloats(fields, 2)
	if err != nil {
		return err
	}
	*uvs = append(*uvs, rast.V2(v[0], v[1]))
	return nil
}

func parseVN(fields []string, normals *[]rast.Vec3) error {
	v, err := parseFloats(fields, 3)
	if err != nil {
		return err
	}
	*normals = append(*normals, rast.V3(v[0], v[1], v[2]))
	return nil
}

// parseFloats parses at least want floats from fields. Extra fields
// (like the optional w on v records) are ignored.
func parseFloats(fields []string, want int) ([]float32, error) {
	if len(fields) < want {
		return nil, fmt.Errorf("expected %d coordinates, got %d", want, len(fields))
	}
	out := make([]float32, want)
	for i := 0; i < want; i++ {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return nil, err
		}
		out[i] = float32(f)
	}
	return out, nil
}

// corner is one parsed face corner: indices into the position, uv and
// normal tables, already resolved to zero-based (-1 means absent).
type corner struct {
	pos, uv, norm int
}

func parseFace(
	fields []string,
	positions []rast.Vec4,
	uvs []rast.Vec2,
	normals []rast.Vec3,
	attrs []rast.StdAttribute,
) ([]rast.StdAttribute, error) {
	if len(fields) < 3 {
		return nil, fmt.Errorf("face needs at least 3 corners, got %d", len(fields))
	}

	corners := make([]corner, len(fields))
	for i, field := range fields {
		c, err := parseCorner(field, len(positions), len(uvs), len(normals))
		if err != nil {
			return nil, err
		}
		corners[i] = c
	}

	// Fan triangulation around the first corner.
	for i := 1; i+1 < len(corners); i++ {
		tri := [3]corner{corners[0], corners[i], corners[i+1]}

		// Face normal fallback when any corner lacks one.
		var faceNorm rast.Vec3
		if tri[0].norm < 0 || tri[1].norm < 0 || tri[2].norm < 0 {
			a := positions[tri[0].pos].Vec3()
			b := positions[tri[1].pos].Vec3()
			c := positions[tri[2].pos].Vec3()
			faceNorm = b.Sub(a).Cross(c.Sub(a)).Normalize()
		}

		for _, c := range tri {
			attr := rast.StdAttribute{Pos: positions[c.pos]}
			if c.uv >= 0 {
				attr.UV = uvs[c.uv]
			}
			if c.norm >= 0 {
				attr.Norm = normals[c.norm]
			} else {
				attr.Norm = faceNorm
			}
			attrs = append(attrs, attr)
		}
	}
	return attrs, nil
}

// parseCorner parses a face corner of the form "v", "v/vt", "v//vn" or
// "v/vt/vn". OBJ indices are one-based; negative indices count from the
// end of the table parsed so far.
func parseCorner(field string, nPos, nUV, nNorm int) (corner, error) {
	c := corner{pos: -1, uv: -1, norm: -1}
	parts := strings.Split(field, "/")
	if len(parts) > 3 {
		return c, fmt.Errorf("malformed face corner %q", field)
	}

	tables := [3]int{nPos, nUV, nNorm}
	idx := [3]*int{&c.pos, &c.uv, &c.norm}
	for i, part := range parts {
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return c, fmt.Errorf("malformed face corner %q: %w", field, err)
		}
		switch {
		case n > 0 && n <= tables[i]:
			*idx[i] = n - 1
		case n < 0 && -n <= tables[i]:
			*idx[i] = tables[i] + n
		default:
			return c, fmt.Errorf("face index %d out of range", n)
		}
	}
	if c.pos < 0 {
		return c, fmt.Errorf("face corner %q has no vertex index", field)
	}
	return c, nil
}
