// Package web provides the embedded static assets of the public site and
// the admin panel, served at /static/.
package web

import "embed"

// StaticFS embeds the web/static/ directory tree. The stylesheets hold the
// component styles the utility classes do not cover.
//
//go:embed all:static
var StaticFS embed.FS
