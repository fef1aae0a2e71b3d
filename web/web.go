// Package web embeds the dashboard templates and static assets.
package web

import "embed"

// Templates holds the html/template sources under templates/.
//
//go:embed templates/*.html
var Templates embed.FS

// Static holds the files served under /static/.
//
//go:embed static
var Static embed.FS
