package color

import "math/rand"

// List generates the full spectrum rotated to a random starting hue,
// stepping backwards through the wheel when invert is set. Callers slice
// the result to the desired hue count.
func List(invert bool) []Color {
	return ListFrom(rand.Intn(len(Spectrum())), invert)
}

// ListFrom generates the rotated spectrum from an explicit starting index.
// Deterministic; exposed for testing and for reproducible palettes.
func ListFrom(start int, invert bool) []Color {
	spectrum := Spectrum()
	n := len(spectrum)

	step := 1
	if invert {
		step = -1
	}

	list := make([]Color, 0, n)
	for i := 0; i < n; i++ {
		current := (start + i*step) % n
		if current < 0 {
			current += n
		}
		list = append(list, spectrum[current])
	}
	return list
}
