package inline

import (
	"encoding/json"
	"io"

	"github.com/samber/lo"
	"github.com/spectra-cli/spectra/color"
	"github.com/spectra-cli/spectra/gradient"
)

// Output is the structured document emitted in JSON mode.
type Output struct {
	Text   string   `json:"text" jsonschema:"description=Sanitized input text"`
	Hues   int      `json:"hues" jsonschema:"description=Number of anchor colors"`
	Colors []string `json:"colors" jsonschema:"description=Anchor colors as hex tokens"`
	Style  string   `json:"style" jsonschema:"description=Base style composed under every span"`
	Spans  []Span   `json:"spans" jsonschema:"description=Compressed style spans tiling the text"`
}

// Span is the serialized form of one compressed style range.
type Span struct {
	Start int    `json:"start" jsonschema:"description=Inclusive start character index"`
	End   int    `json:"end" jsonschema:"description=Exclusive end character index"`
	Style string `json:"style" jsonschema:"description=Resolved style attribute string"`
}

func writeJson(out io.Writer, g *gradient.Gradient) error {
	document := Output{
		Text: g.Text(),
		Hues: g.Hues(),
		Colors: lo.Map(g.Colors(), func(c color.Color, _ int) string {
			return c.Hex()
		}),
		Style: g.Style().String(),
		Spans: lo.Map(g.Spans(), func(s gradient.Span, _ int) Span {
			return Span{Start: s.Start, End: s.End, Style: s.Style.String()}
		}),
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(document)
}
