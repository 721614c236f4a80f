package gradient

import "github.com/spectra-cli/spectra/color"

// Interpolate blends two colors at position t in [0, 1). Each channel is
// computed independently as floor(c1 + (c2-c1)*t); the result carries its
// hex token as display name. At t=0 the result is exactly c1; t never
// reaches 1 inside a segment, so c2 is only met as the next segment's start.
func Interpolate(c1, c2 color.Color, t float64) color.Color {
	r1, g1, b1 := c1.RGB()
	r2, g2, b2 := c2.RGB()

	blend := func(a, b uint8) uint8 {
		v := float64(a) + (float64(b)-float64(a))*t
		return uint8(int(v))
	}

	return color.FromRGB(blend(r1, r2), blend(g1, g2), blend(b1, b2))
}
