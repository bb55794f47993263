// Package assets embeds the static files served next to the landing page.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed static
var staticFS embed.FS

// Static returns the embedded static directory, rooted at its contents.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// The directory is embedded at build time; failure means a broken build.
		panic(err)
	}
	return sub
}
