// Package templates embeds the server-rendered dashboard pages. Every page
// file defines a named template and shares the header/footer partials from
// layout.html.
package templates

import "embed"

//go:embed *.html
var FS embed.FS
