package view

import "embed"

// Assets holds the stylesheet served under /assets/.
//
//go:embed assets
var Assets embed.FS
