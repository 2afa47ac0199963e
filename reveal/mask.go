package reveal

// MaskConfig places the reveal band relative to the viewport.
type MaskConfig struct {
	// Fraction of the viewport height where a line starts to unmask.
	Fraction float64
	// Band is the scroll distance over which a line goes from hidden to shown.
	Band float64
}

// DefaultMaskConfig unmasks lines as they cross the middle of the viewport
// over 50 units of scroll.
func DefaultMaskConfig() MaskConfig {
	return MaskConfig{Fraction: 0.5, Band: 50}
}

// Thresholds returns the viewport-relative start and end of the band.
func (c MaskConfig) Thresholds(viewportHeight float64) (start, end float64) {
	start = c.Fraction * viewportHeight
	end = start - c.Band
	if end > start {
		end = start
	}
	return start, end
}

// MaskAt returns the hidden fraction of a line whose top sits at lineTop in
// page coordinates: 1 while scrollY <= lineTop-start, 0 once scrollY >=
// lineTop-end, linear between.
func MaskAt(scrollY, lineTop, viewportHeight float64, cfg MaskConfig) float64 {
	start, end := cfg.Thresholds(viewportHeight)
	r, err := NewRange([]float64{lineTop - start, lineTop - end}, []float64{1, 0}, Lerp)
	if err != nil {
		return 1
	}
	return r.At(scrollY)
}
