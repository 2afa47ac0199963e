// Package reveal maps scroll and resize samples to visual state.
//
// It holds the pieces of the portfolio page that are plain computation:
// greedy line wrapping against a measuring capability, per-line reveal
// masks driven by scroll offset, and the header theme interpolation. None of
// it depends on a rendering toolkit; callers supply a Measurer for the
// surface they draw on (terminal cells, font pixels) and feed scroll and
// size samples in whatever unit that surface uses.
package reveal
