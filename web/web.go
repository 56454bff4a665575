// Package web holds the browser page served at the root path.
package web

import _ "embed"

// Index is the single-page chat UI. It drives a live session over /ws.
//
//go:embed index.html
var Index []byte
