package reveal

import "testing"

func TestSignalLastValueWins(t *testing.T) {
	s := NewSignal(0)
	var seen []int
	cancel := s.Subscribe(func(v int) { seen = append(seen, v) })

	s.Set(3)
	s.Set(3) // unchanged, no call
	s.Set(7)

	want := []int{0, 3, 7}
	if len(seen) != len(want) {
		t.Fatalf("seen = %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("seen = %v, want %v", seen, want)
		}
	}

	cancel()
	s.Set(9)
	if len(seen) != 3 {
		t.Errorf("callback ran after cancel: %v", seen)
	}
	if s.Get() != 9 {
		t.Errorf("Get = %d, want 9", s.Get())
	}
}

func TestSignalSizeSamples(t *testing.T) {
	s := NewSignal(Size{})
	var widths []float64
	s.Subscribe(func(sz Size) { widths = append(widths, sz.Width) })
	s.Set(Size{Width: 80, Height: 24})
	s.Set(Size{Width: 80, Height: 30})
	if len(widths) != 3 || widths[2] != 80 {
		t.Errorf("widths = %v", widths)
	}
}
