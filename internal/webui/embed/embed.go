package embed

import "embed"

// DistFS contains the terminal page served at /.
//
//go:embed all:dist
var DistFS embed.FS
