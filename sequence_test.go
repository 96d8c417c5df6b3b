package colorful

import (
	"errors"
	"testing"
)

func TestNewColorSequence(t *testing.T) {
	tests := []struct {
		name    string
		colors  []Color
		wantErr bool
	}{
		{"none", nil, true},
		{"one", []Color{Red}, true},
		{"two", []Color{Red, Blue}, false},
		{"three", []Color{Yellow, Blue, Magenta}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewColorSequence(tt.colors...)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidConfiguration) {
					t.Fatalf("NewColorSequence() error = %v, want ErrInvalidConfiguration", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewColorSequence() error = %v", err)
			}
			if s.Len() != len(tt.colors) {
				t.Errorf("Len() = %d, want %d", s.Len(), len(tt.colors))
			}
		})
	}
}

func TestColorSequenceImmutable(t *testing.T) {
	in := []Color{Red, Green, Blue}
	s, err := NewColorSequence(in...)
	if err != nil {
		t.Fatal(err)
	}

	in[0] = White
	if s.At(0) != Red {
		t.Error("sequence changed after mutating constructor input")
	}

	out := s.Colors()
	out[1] = White
	if s.At(1) != Green {
		t.Error("sequence changed after mutating Colors() result")
	}
}

func TestDefaultColors(t *testing.T) {
	s := DefaultColors()
	want := []Color{Yellow, Blue, Magenta}
	if s.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", s.Len(), len(want))
	}
	for i, c := range want {
		if s.At(i) != c {
			t.Errorf("At(%d) = %v, want %v", i, s.At(i), c)
		}
	}
}

func TestMustColorSequencePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustColorSequence with one color did not panic")
		}
	}()
	MustColorSequence(Red)
}
