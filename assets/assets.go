// Package assets embeds the arena maps. It has no dependencies on ebitengine
// so the terminal front end and tests can load arenas too.
package assets

import (
	"embed"
	"io/fs"
)

var (
	//go:embed all:arenas
	assetFS embed.FS
)

// FS exposes the embedded asset tree for arena.Load and arena.Names.
func FS() fs.FS {
	return assetFS
}
