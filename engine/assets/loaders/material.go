package loaders

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/spaghettifunk/rtdemo/engine/assets"
	"github.com/spaghettifunk/rtdemo/engine/core"
)

// parseMTL reads a Wavefront material library. Materials come back in file
// order.
func parseMTL(r io.Reader) ([]assets.Material, error) {
	scanner := bufio.NewScanner(r)
	materials := []assets.Material{}
	var current *assets.Material

	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())

		// Skip comments and empty lines
		if strings.HasPrefix(text, "#") || text == "" {
			continue
		}

		fields := strings.Fields(text)
		key, values := fields[0], fields[1:]

		if key == "newmtl" {
			if len(values) != 1 {
				return nil, fmt.Errorf("line %d: newmtl expects a name", line)
			}
			materials = append(materials, assets.Material{
				Name:      values[0],
				Shininess: 1,
				Opacity:   1,
			})
			current = &materials[len(materials)-1]
			continue
		}
		if current == nil {
			return nil, fmt.Errorf("line %d: %q before newmtl", line, key)
		}

		var err error
		switch key {
		case "Ka":
			current.Ambient, err = parseColor(values)
		case "Kd":
			current.Diffuse, err = parseColor(values)
		case "Ks":
			current.Specular, err = parseColor(values)
		case "Ke":
			current.Emissive, err = parseColor(values)
		case "Ns":
			current.Shininess, err = parseScalar(values)
		case "d":
			current.Opacity, err = parseScalar(values)
		case "Tr":
			var tr float32
			tr, err = parseScalar(values)
			current.Opacity = 1 - tr
		case "illum", "Ni", "Tf", "map_Ka", "map_Kd", "map_Ks", "map_d", "map_bump", "bump":
			// not used by the renderer
		default:
			core.LogDebug("Unknown key '%s' found in material library. Skipping...", key)
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid %s: %w", line, key, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return materials, nil
}

func parseColor(values []string) (mgl32.Vec3, error) {
	if len(values) != 3 {
		return mgl32.Vec3{}, fmt.Errorf("expected 3 values, got %d", len(values))
	}
	var c mgl32.Vec3
	for i, v := range values {
		f, err := strconv.ParseFloat(v, 32)
		if err != nil {
			return mgl32.Vec3{}, err
		}
		c[i] = float32(f)
	}
	return c, nil
}

func parseScalar(values []string) (float32, error) {
	if len(values) != 1 {
		return 0, fmt.Errorf("expected 1 value, got %d", len(values))
	}
	f, err := strconv.ParseFloat(values[0], 32)
	return float32(f), err
}
