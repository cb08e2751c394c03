// Package templates embeds the server-rendered pages.
// Every page defines a "content" block rendered inside layout.html.
package templates

import "embed"

//go:embed *.html
var FS embed.FS
