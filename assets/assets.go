package assets

import (
	"embed"
	"path/filepath"
	"sort"

	"github.com/Vynokris/CannonWarfare2/gamemath"
	"github.com/lafriks/go-tiled"
)

//go:embed all:levels
var assetFS embed.FS

// Rect is an axis-aligned obstacle parsed from the map.
type Rect struct {
	X, Y, W, H float64
}

// Range describes one firing-range layout.
type Range struct {
	Name   string
	Width  int // px
	Height int // px

	GroundY     float64 // world y of the ground plane
	Walls       []Rect
	Crates      []Rect
	CannonSpawn gamemath.Vector2
}

type RangeLoader struct{}

func NewRangeLoader() *RangeLoader {
	return &RangeLoader{}
}

// MustLoadRanges loads every TMX file under levels/, sorted by file name.
func (l *RangeLoader) MustLoadRanges() []Range {
	entries, err := assetFS.ReadDir("levels")
	if err != nil {
		panic(err)
	}

	var paths []string
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ".tmx" {
			paths = append(paths, "levels/"+e.Name())
		}
	}
	sort.Strings(paths)

	if len(paths) == 0 {
		panic("no range files found in assets/levels")
	}

	ranges := make([]Range, 0, len(paths))
	for _, p := range paths {
		ranges = append(ranges, l.MustLoadRange(p))
	}
	return ranges
}

// MustLoadRange parses one TMX map into a Range.
func (l *RangeLoader) MustLoadRange(path string) Range {
	m, err := tiled.LoadFile(path, tiled.WithFileSystem(assetFS))
	if err != nil {
		panic(err)
	}

	r := Range{
		Name:   path,
		Width:  m.Width * m.TileWidth,
		Height: m.Height * m.TileHeight,
	}

	for _, og := range m.ObjectGroups {
		switch og.Name {
		case "Ground":
			// The ground plane is the top edge of the first ground object.
			for _, o := range og.Objects {
				r.GroundY = o.Y
				break
			}
		case "Walls":
			for _, o := range og.Objects {
				r.Walls = append(r.Walls, Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		case "Crates":
			for _, o := range og.Objects {
				r.Crates = append(r.Crates, Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		case "CannonSpawn":
			for _, o := range og.Objects {
				r.CannonSpawn = gamemath.Vector2{X: o.X, Y: o.Y}
				break
			}
		}
	}

	return r
}
