// Package web embeds the map page template and its static images.
package web

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.html static/*.svg
var files embed.FS

// Templates holds the html/template sources, rooted at templates/.
var Templates = mustSub("templates")

// Static holds the images served under /static/, rooted at static/.
var Static = mustSub("static")

func mustSub(dir string) fs.FS {
	sub, err := fs.Sub(files, dir)
	if err != nil {
		panic("web: " + err.Error())
	}
	return sub
}
