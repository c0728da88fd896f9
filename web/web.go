// Package web embeds the static single-page UI.
package web

import "embed"

//go:embed index.html
var Files embed.FS
