package assets

import "embed"

//go:embed levels.json
var FS embed.FS

// LevelsJSON returns the embedded default level pack.
func LevelsJSON() ([]byte, error) {
	return FS.ReadFile("levels.json")
}
