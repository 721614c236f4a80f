// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// DefinedFieldsCount represents the total cardinality of the application configuration schema.
const DefinedFieldsCount = 11

// Gradient Defaults - these keys supply the fallback rendering parameters for gradient construction.
const (
	GradientHues    = "gradient.hues"
	GradientInvert  = "gradient.invert"
	GradientRainbow = "gradient.rainbow"
)

// Styling - these keys define the base style composed under every gradient span.
const (
	StyleDefault = "style.default"
)

// Output - these keys govern how rendered gradients are laid out on the terminal.
const (
	OutputWrap = "output.wrap"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the application's command surface.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
