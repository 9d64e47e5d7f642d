package domutil

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// Predicate filters nodes during a walk. A nil Predicate accepts everything.
type Predicate func(*html.Node) bool

// CollectElements returns the element descendants of root accepted by pred,
// depth-first in document order. Text and other non-element children are not
// visited, and root itself is never part of the result.
func CollectElements(root *html.Node, pred Predicate) []*html.Node {
	if root == nil {
		return nil
	}
	var out []*html.Node
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		out = collectElements(c, pred, out)
	}
	return out
}

func collectElements(n *html.Node, pred Predicate, out []*html.Node) []*html.Node {
	if n.Type != html.ElementNode {
		return out
	}
	if pred == nil || pred(n) {
		out = append(out, n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out = collectElements(c, pred, out)
	}
	return out
}

// CollectNodes returns every node under root accepted by pred, text nodes
// included, depth-first in document order. Unlike CollectElements, root is
// part of the result when pred accepts it.
func CollectNodes(root *html.Node, pred Predicate) []*html.Node {
	if root == nil {
		return nil
	}
	return collectNodes(root, pred, nil)
}

func collectNodes(n *html.Node, pred Predicate, out []*html.Node) []*html.Node {
	if pred == nil || pred(n) {
		out = append(out, n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out = collectNodes(c, pred, out)
	}
	return out
}

// NearestFormatElement returns the child of the editing region that contains n.
//
// The climb stops when the parent is the region; the returned node is not
// checked against IsFormatElement, so a bare inline element sitting directly
// under the region is returned as is. When n is the region, its first child
// is returned (nil for an empty region).
func NearestFormatElement(n *html.Node) (*html.Node, error) {
	if n == nil {
		return nil, fmt.Errorf("nearest format element: %w", ErrInvalidArgument)
	}
	if IsEditingRegion(n) {
		return n.FirstChild, nil
	}
	for !IsEditingRegion(n.Parent) {
		if n.Parent == nil {
			return nil, fmt.Errorf("nearest format element: %w", ErrOutsideRegion)
		}
		n = n.Parent
	}
	return n, nil
}

// TextContent returns the trimmed concatenation of all text under n.
func TextContent(n *html.Node) string {
	if n == nil {
		return ""
	}
	var buf strings.Builder
	writeText(&buf, n)
	return strings.TrimSpace(buf.String())
}

func writeText(buf *strings.Builder, n *html.Node) {
	if n.Type == html.TextNode {
		buf.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeText(buf, c)
	}
}
