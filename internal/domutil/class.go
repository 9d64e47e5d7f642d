package domutil

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// HasClass reports whether name (trimmed) is one of n's classes.
func HasClass(n *html.Node, name string) bool {
	if n == nil {
		return false
	}
	name = strings.TrimSpace(name)
	for _, c := range strings.Fields(Attr(n, "class")) {
		if c == name {
			return true
		}
	}
	return false
}

// AddClass appends name to n's class attribute unless it is already there.
func AddClass(n *html.Node, name string) {
	if n == nil {
		return
	}
	cls := Attr(n, "class")
	if classPattern(name).MatchString(cls) {
		return
	}
	SetAttr(n, "class", cls+" "+name)
}

// RemoveClass drops the first occurrence of name from n's class attribute.
func RemoveClass(n *html.Node, name string) {
	if n == nil {
		return
	}
	cls := Attr(n, "class")
	re := classPattern(name)
	if !re.MatchString(cls) {
		return
	}
	SetAttr(n, "class", removeFirst(cls, re))
}

// ToggleClass removes name from n's classes when present and adds it otherwise.
func ToggleClass(n *html.Node, name string) {
	if n == nil {
		return
	}
	cls := Attr(n, "class")
	re := classPattern(name)
	if re.MatchString(cls) {
		SetAttr(n, "class", removeFirst(cls, re))
		return
	}
	SetAttr(n, "class", cls+" "+name)
}

// classPattern matches name bounded by whitespace or the ends of the string,
// so "bold" does not match inside "bold-italic".
func classPattern(name string) *regexp.Regexp {
	return regexp.MustCompile(`(\s|^)` + regexp.QuoteMeta(name) + `(\s|$)`)
}

func removeFirst(cls string, re *regexp.Regexp) string {
	loc := re.FindStringIndex(cls)
	return strings.TrimSpace(cls[:loc[0]] + " " + cls[loc[1]:])
}
