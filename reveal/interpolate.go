package reveal

import "errors"

var (
	// ErrRangeLength is returned when breakpoints and outputs differ in length
	// or hold fewer than two entries.
	ErrRangeLength = errors.New("reveal: input and output ranges must have the same length of at least 2")
	// ErrRangeOrder is returned when breakpoints decrease.
	ErrRangeOrder = errors.New("reveal: input breakpoints must be non-decreasing")
)

// Mixer blends a toward b by t in [0,1].
type Mixer[T any] func(a, b T, t float64) T

// Range is a clamped piecewise-linear mapping from breakpoints to outputs.
type Range[T any] struct {
	input  []float64
	output []T
	mix    Mixer[T]
}

// NewRange validates the breakpoints and returns a Range over them.
func NewRange[T any](input []float64, output []T, mix Mixer[T]) (Range[T], error) {
	if len(input) < 2 || len(input) != len(output) {
		return Range[T]{}, ErrRangeLength
	}
	for i := 1; i < len(input); i++ {
		if input[i] < input[i-1] {
			return Range[T]{}, ErrRangeOrder
		}
	}
	return Range[T]{
		input:  append([]float64(nil), input...),
		output: append([]T(nil), output...),
		mix:    mix,
	}, nil
}

// At returns the output for x. Values outside the breakpoints clamp to the
// nearest end.
func (r Range[T]) At(x float64) T {
	n := len(r.input)
	if x <= r.input[0] {
		return r.output[0]
	}
	if x >= r.input[n-1] {
		return r.output[n-1]
	}
	for i := 1; i < n; i++ {
		if x < r.input[i] {
			lo, hi := r.input[i-1], r.input[i]
			return r.mix(r.output[i-1], r.output[i], (x-lo)/(hi-lo))
		}
	}
	return r.output[n-1]
}

// Lerp is the numeric Mixer.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Interpolate maps x across numeric breakpoints and outputs.
func Interpolate(x float64, input, output []float64) (float64, error) {
	r, err := NewRange(input, output, Lerp)
	if err != nil {
		return 0, err
	}
	return r.At(x), nil
}

// Transition holds dark across every breakpoint but the last and moves to
// light over the final segment. Invalid breakpoints leave the value at dark.
func Transition[T any](x float64, breakpoints []float64, dark, light T, mix Mixer[T]) T {
	if len(breakpoints) < 2 {
		return dark
	}
	output := make([]T, len(breakpoints))
	for i := range output {
		output[i] = dark
	}
	output[len(output)-1] = light
	r, err := NewRange(breakpoints, output, mix)
	if err != nil {
		return dark
	}
	return r.At(x)
}
