// Package domutil holds the tree utilities the editor runs against its
// document: classification, filtered walks, ancestor queries and class-list
// edits. Every function reads the live tree it is given; nothing is cached.
package domutil

import (
	"strings"

	"golang.org/x/net/html"
)

// RegionClass marks the top-level editing region element.
const RegionClass = "sun-editor-id-wysiwyg"

// formatTags are the block elements the editor treats as format elements.
var formatTags = map[string]bool{
	"p":     true,
	"div":   true,
	"table": true,
	"h1":    true,
	"h2":    true,
	"h3":    true,
	"h4":    true,
	"h5":    true,
	"h6":    true,
}

// IsEditingRegion reports whether n is the element bounding the editable area.
func IsEditingRegion(n *html.Node) bool {
	return n != nil && n.Type == html.ElementNode && HasClass(n, RegionClass)
}

// IsFormatElement reports whether n is a P, DIV, TABLE or H1-H6 element.
// The editing region itself is never a format element.
func IsFormatElement(n *html.Node) bool {
	if n == nil || n.Type != html.ElementNode || IsEditingRegion(n) {
		return false
	}
	return formatTags[strings.ToLower(n.Data)]
}

// IsTableCell reports whether n is a TD or TH element.
func IsTableCell(n *html.Node) bool {
	if n == nil || n.Type != html.ElementNode {
		return false
	}
	switch strings.ToLower(n.Data) {
	case "td", "th":
		return true
	}
	return false
}
