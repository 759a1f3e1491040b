// Package web holds the embedded browser UI served by the HTTP server.
package web

import "embed"

//go:embed static
var Static embed.FS
