package arena

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/automoto/poetry-duel/shared/simconfig"
	"github.com/lafriks/go-tiled"
)

// Dir is the directory holding arena maps inside the asset filesystem.
const Dir = "arenas"

var (
	ErrUnknownArena = errors.New("arena: unknown arena")
	ErrBadEdge      = errors.New("arena: bad edge mode")
)

// Load parses arenas/<name>.tmx from fsys. It takes an fs.FS so callers can
// pass the embedded assets or os.DirFS.
func Load(fsys fs.FS, name string) (Definition, error) {
	path := Dir + "/" + name + ".tmx"
	if _, err := fs.Stat(fsys, path); err != nil {
		return Definition{}, fmt.Errorf("%w: %q", ErrUnknownArena, name)
	}

	levelMap, err := tiled.LoadFile(path, tiled.WithFileSystem(fsys))
	if err != nil {
		return Definition{}, fmt.Errorf("load TMX %s: %w", path, err)
	}

	def := Definition{
		Name:     name,
		GravityX: simconfig.Physics.GravityX,
		GravityY: simconfig.Physics.GravityY,
		Width:    levelMap.Width * levelMap.TileWidth,
		Height:   levelMap.Height * levelMap.TileHeight,
	}

	for e := simconfig.Edge(0); e < simconfig.EdgeCount; e++ {
		raw := mapProperty(levelMap, e.String())
		if raw == "" {
			def.Edges[e] = simconfig.WallSolid
			continue
		}
		mode, ok := simconfig.ParseWallMode(raw)
		if !ok {
			return Definition{}, fmt.Errorf("%s edge %s: %w: %q", path, e, ErrBadEdge, raw)
		}
		def.Edges[e] = mode
	}

	if def.GravityX, err = floatProperty(levelMap, "gravity_x", def.GravityX); err != nil {
		return Definition{}, fmt.Errorf("%s: %w", path, err)
	}
	if def.GravityY, err = floatProperty(levelMap, "gravity_y", def.GravityY); err != nil {
		return Definition{}, fmt.Errorf("%s: %w", path, err)
	}

	return def, nil
}

// Names lists the arenas available in fsys, sorted.
func Names(fsys fs.FS) ([]string, error) {
	pattern := Dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}

	names := make([]string, 0, len(matches))
	for _, path := range matches {
		names = append(names, strings.TrimSuffix(filepath.Base(path), ".tmx"))
	}
	sort.Strings(names)
	return names, nil
}

func mapProperty(m *tiled.Map, name string) string {
	if m.Properties == nil {
		return ""
	}
	return strings.TrimSpace(m.Properties.GetString(name))
}

func floatProperty(m *tiled.Map, name string, fallback float64) (float64, error) {
	raw := mapProperty(m, name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("property %s: %w", name, err)
	}
	return v, nil
}
