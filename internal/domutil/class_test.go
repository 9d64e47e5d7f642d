package domutil

import (
	"testing"

	"golang.org/x/net/html"
)

func elem(class string) *html.Node {
	n := &html.Node{Type: html.ElementNode, Data: "span"}
	if class != "" {
		n.Attr = []html.Attribute{{Key: "class", Val: class}}
	}
	return n
}

func TestHasClass(t *testing.T) {
	n := elem("bold-italic  note")
	if !HasClass(n, "note") {
		t.Error("expected note")
	}
	if !HasClass(n, "  note ") {
		t.Error("expected trimmed name to match")
	}
	if HasClass(n, "bold") {
		t.Error("bold must not match bold-italic")
	}
	if HasClass(nil, "note") {
		t.Error("expected false for nil element")
	}
}

func TestAddClass(t *testing.T) {
	n := elem("a")
	AddClass(n, "b")
	if got := Attr(n, "class"); got != "a b" {
		t.Errorf("expected %q, got %q", "a b", got)
	}
	AddClass(n, "b")
	if got := Attr(n, "class"); got != "a b" {
		t.Errorf("add must be idempotent, got %q", got)
	}
	if !HasClass(n, "b") {
		t.Error("expected HasClass after AddClass")
	}

	AddClass(nil, "b")
}

func TestAddClass_EmptyAttribute(t *testing.T) {
	n := elem("")
	AddClass(n, "x")
	if got := Attr(n, "class"); got != " x" {
		t.Errorf("expected %q, got %q", " x", got)
	}
	if !HasClass(n, "x") {
		t.Error("expected HasClass after AddClass")
	}
}

func TestRemoveClass(t *testing.T) {
	tests := []struct {
		class, name, want string
	}{
		{"sun-editor-id-wysiwyg active", "sun-editor-id-wysiwyg", "active"},
		{"a b c", "b", "a c"},
		{"a b", "b", "a"},
		{"b", "b", ""},
		{"bold-italic bold", "bold", "bold-italic"},
		{"bold-italic", "bold", "bold-italic"},
		{"a.b ab", "a.b", "ab"},
		{"aab", "a.b", "aab"},
	}
	for _, tt := range tests {
		n := elem(tt.class)
		RemoveClass(n, tt.name)
		if got := Attr(n, "class"); got != tt.want {
			t.Errorf("RemoveClass(%q, %q) = %q, want %q", tt.class, tt.name, got, tt.want)
		}
		if HasClass(n, tt.name) {
			t.Errorf("RemoveClass(%q, %q) left the class in place", tt.class, tt.name)
		}
	}

	n := elem("")
	RemoveClass(n, "x")
	if len(n.Attr) != 0 {
		t.Errorf("expected no class attribute to be created, got %+v", n.Attr)
	}
	RemoveClass(nil, "x")
}

func TestToggleClass_TwiceRestores(t *testing.T) {
	for _, start := range []string{"", "a", "bold-italic", "a bold-italic c"} {
		n := elem(start)
		ToggleClass(n, "bold")
		if !HasClass(n, "bold") {
			t.Errorf("start %q: expected bold after first toggle", start)
		}
		if HasClass(elem(start), "bold-italic") && !HasClass(n, "bold-italic") {
			t.Errorf("start %q: toggle removed bold-italic", start)
		}
		ToggleClass(n, "bold")
		if got := Attr(n, "class"); got != start {
			t.Errorf("start %q: expected %q after two toggles, got %q", start, start, got)
		}
	}
	ToggleClass(nil, "x")
}

func TestClassOps_NoCrossEffects(t *testing.T) {
	n := elem("bold bold-italic")
	RemoveClass(n, "bold")
	if got := Attr(n, "class"); got != "bold-italic" {
		t.Errorf("expected %q, got %q", "bold-italic", got)
	}
	AddClass(n, "bold")
	if got := Attr(n, "class"); got != "bold-italic bold" {
		t.Errorf("expected %q, got %q", "bold-italic bold", got)
	}
	RemoveClass(n, "bold-italic")
	if got := Attr(n, "class"); got != "bold" {
		t.Errorf("expected %q, got %q", "bold", got)
	}
}
