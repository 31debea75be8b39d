package main

// Column widths of the item table.
const (
	NameWidth     = 36
	AreaWidth     = 28
	BuildsWidth   = 30
	SourceWidth   = 30
	LocationWidth = 24
)

// Valid output formats.
var validFormats = []string{"table", "json"}
