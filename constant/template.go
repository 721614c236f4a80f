// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

// Palette Function Identifiers - these constants define the required global function signatures for Lua palette modules.
const (
	PaletteColorsFn = "Colors"
)

// PaletteTemplate is a Go text/template for scaffolding new Lua palette files.
const PaletteTemplate = `{{ $divider := repeat "-" (plus (max (len .Name) (len .Author) 3) 12) }}{{ $divider }}
-- @name    {{ .Name }}
-- @author  {{ .Author }}
-- @license MIT
{{ $divider }}


--- Returns the anchor colors of the palette, as hex strings.
-- @return string[] Table of "#RRGGBB" colors
function {{ .ColorsFn }}()
	return { "#ff00ff", "#00ffff" }
end
`
