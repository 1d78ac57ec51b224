package util

// GenerateLut samples an easing curve into a look-up table of the given
// length, covering progress 0 through 1 inclusive.
func GenerateLut(curve func(float64) float64, length int) []float64 {
	if length < 2 {
		return nil
	}

	lut := make([]float64, length)
	increment := 1.0 / float64(length-1)
	for i := 0; i < length; i++ {
		lut[i] = curve(float64(i) * increment)
	}
	return lut
}
