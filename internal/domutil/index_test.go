package domutil

import (
	"testing"

	"golang.org/x/net/html"
)

func TestIndexHelpers(t *testing.T) {
	a := &html.Node{Data: "a"}
	b := &html.Node{Data: "b"}
	c := &html.Node{Data: "c"}
	seq := []*html.Node{a, b, c}

	tests := []struct {
		name            string
		item            *html.Node
		idx, next, prev int
	}{
		{"first", a, 0, 1, -1},
		{"middle", b, 1, 2, 0},
		{"last", c, 2, 3, 1},
		{"absent", &html.Node{Data: "a"}, -1, -1, -1},
		{"nil", nil, -1, -1, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IndexOf(seq, tt.item); got != tt.idx {
				t.Errorf("IndexOf = %d, want %d", got, tt.idx)
			}
			if got := NextIndex(seq, tt.item); got != tt.next {
				t.Errorf("NextIndex = %d, want %d", got, tt.next)
			}
			if got := PrevIndex(seq, tt.item); got != tt.prev {
				t.Errorf("PrevIndex = %d, want %d", got, tt.prev)
			}
		})
	}
}

func TestIndexOf_FirstOccurrence(t *testing.T) {
	if got := IndexOf([]string{"x", "y", "x"}, "x"); got != 0 {
		t.Errorf("expected 0, got %d", got)
	}
	if got := IndexOf(nil, "x"); got != -1 {
		t.Errorf("expected -1 for empty sequence, got %d", got)
	}
}
