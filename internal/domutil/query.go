package domutil

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// QueryKind selects which property of an element a Query tests.
type QueryKind int

const (
	ByTag QueryKind = iota
	ByClass
	ByID
	ByName
)

func (k QueryKind) String() string {
	switch k {
	case ByTag:
		return "tag"
	case ByClass:
		return "class"
	case ByID:
		return "id"
	case ByName:
		return "name"
	}
	return "unknown"
}

// Query is a single-predicate element matcher parsed from "tag", ".class",
// "#id" or ":name". Matching is case-insensitive and anchored to the whole
// value.
type Query struct {
	Kind  QueryKind
	Value string

	pattern *regexp.Regexp
}

// ParseQuery compiles s into a Query. The first marker found wins, checked
// in the order '.', '#', ':'; without a marker s names a tag. The value is
// the text between the marker and the next occurrence of the same marker, so
// "p.note" selects class "note".
func ParseQuery(s string) Query {
	q := Query{Kind: ByTag, Value: s}
	switch {
	case strings.Contains(s, "."):
		q.Kind, q.Value = ByClass, segmentAfter(s, ".")
	case strings.Contains(s, "#"):
		q.Kind, q.Value = ByID, segmentAfter(s, "#")
	case strings.Contains(s, ":"):
		q.Kind, q.Value = ByName, segmentAfter(s, ":")
	}
	q.pattern = regexp.MustCompile(`(?i)^` + regexp.QuoteMeta(q.Value) + `$`)
	return q
}

func segmentAfter(s, marker string) string {
	return strings.Split(s, marker)[1]
}

// String renders q back into query syntax.
func (q Query) String() string {
	switch q.Kind {
	case ByClass:
		return "." + q.Value
	case ByID:
		return "#" + q.Value
	case ByName:
		return ":" + q.Value
	}
	return q.Value
}

// Match reports whether n is an element satisfying q.
func (q Query) Match(n *html.Node) bool {
	if n == nil || n.Type != html.ElementNode || q.pattern == nil {
		return false
	}
	switch q.Kind {
	case ByTag:
		return q.pattern.MatchString(n.Data)
	case ByID:
		return q.pattern.MatchString(Attr(n, "id"))
	case ByName:
		return q.pattern.MatchString(Attr(n, "name"))
	case ByClass:
		for _, c := range strings.Fields(Attr(n, "class")) {
			if q.pattern.MatchString(c) {
				return true
			}
		}
	}
	return false
}

// FindAncestor parses query and returns the closest node at or above n that
// matches it. The search gives up at the editing region, which is never
// returned, and returns nil when nothing matches.
func FindAncestor(n *html.Node, query string) *html.Node {
	return FindAncestorQuery(n, ParseQuery(query))
}

// FindAncestorQuery is FindAncestor with a pre-parsed query. A tree without
// an editing region is climbed to the top, ending in nil.
func FindAncestorQuery(n *html.Node, q Query) *html.Node {
	for ; n != nil; n = n.Parent {
		if IsEditingRegion(n) {
			return nil
		}
		if n.Type != html.TextNode && q.Match(n) {
			return n
		}
	}
	return nil
}

// Attr returns the value of the named attribute on n, or "".
func Attr(n *html.Node, key string) string {
	if n == nil {
		return ""
	}
	for _, a := range n.Attr {
		if a.Namespace == "" && strings.EqualFold(a.Key, key) {
			return a.Val
		}
	}
	return ""
}

// SetAttr sets the named attribute on n, adding it when missing.
func SetAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && strings.EqualFold(a.Key, key) {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}
