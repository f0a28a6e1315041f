// Package web holds the browser front-end served by `bingo serve`.
package web

import (
	"embed"
	"html/template"
	"io"
	"io/fs"
	"net/http"

	"golang.org/x/text/language"

	"svw.info/bingo/internal/i18n"
)

//go:embed templates/*.tmpl static/*
var Assets embed.FS

var index = template.Must(template.ParseFS(Assets, "templates/*.tmpl"))

// StaticFS returns a file system for serving /static assets.
func StaticFS() http.FileSystem {
	sub, err := fs.Sub(Assets, "static")
	if err != nil {
		return http.FS(embed.FS{})
	}
	return http.FS(sub)
}

// IndexData fills templates/index.tmpl.
type IndexData struct {
	Lang    string
	NewCard string
}

// RenderIndex writes the page localized for tag.
func RenderIndex(w io.Writer, tag language.Tag) error {
	p := i18n.Printer(tag)
	return index.ExecuteTemplate(w, "index.tmpl", IndexData{
		Lang:    tag.String(),
		NewCard: p.Sprintf(i18n.KeyNewCard),
	})
}
