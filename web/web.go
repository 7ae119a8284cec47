// Package web holds the embedded HTML templates and static assets for the
// checkout pages.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// FormatAmount renders an amount in minor units as a major-unit decimal
// string, e.g. 2300 becomes "23.00". Conversion out of minor units happens
// here and nowhere else.
func FormatAmount(minor int64) string {
	return fmt.Sprintf("%.2f", float64(minor)/100)
}

// Templates parses the embedded page templates. It panics on parse errors,
// which can only come from the assets compiled into the binary.
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(template.FuncMap{
		"amount": FormatAmount,
	}).ParseFS(templateFS, "templates/*.html"))
}

// Static returns the embedded static assets rooted at the static directory,
// ready to serve under a /static prefix.
func Static() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
