package web

import (
	"embed"
	"io/fs"
)

// BasePath is the directory inside Assets that holds the public resources.
const BasePath = "static"

// assets bundles the public site served by assetserver.
//
//go:embed static/*
var assets embed.FS

// Assets returns the bundled filesystem. Public resources live under BasePath.
func Assets() fs.FS {
	return assets
}
