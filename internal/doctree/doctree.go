// Package doctree loads an editor document and exposes the queries the API
// and CLI run against its editing region.
package doctree

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/dgallion1/edtree/internal/domutil"
	"golang.org/x/net/html"
)

// ErrNoRegion is returned when a document has no editing region.
var ErrNoRegion = errors.New("document has no editing region")

// Document is a parsed HTML tree with its editing region located.
type Document struct {
	Root   *html.Node // Document node returned by html.Parse
	Region *html.Node // Element carrying domutil.RegionClass
}

// Entry describes a single node for output.
type Entry struct {
	Tag   string `json:"tag"`
	ID    string `json:"id,omitempty"`
	Class string `json:"class,omitempty"`
	Text  string `json:"text,omitempty"`
	Path  []int  `json:"path"` // Element-child indexes from the region
}

// Parse reads an HTML document and finds its first editing region.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return FromNode(root)
}

// FromNode wraps an already parsed tree.
func FromNode(root *html.Node) (*Document, error) {
	regions := domutil.CollectNodes(root, domutil.IsEditingRegion)
	if len(regions) == 0 {
		return nil, ErrNoRegion
	}
	return &Document{Root: root, Region: regions[0]}, nil
}

// Select returns the first element inside the region matching query, or nil.
func (d *Document) Select(query string) *html.Node {
	q := domutil.ParseQuery(query)
	if found := domutil.CollectElements(d.Region, q.Match); len(found) > 0 {
		return found[0]
	}
	return nil
}

// Formats lists the format elements of the region in document order.
func (d *Document) Formats() []*html.Node {
	return domutil.CollectElements(d.Region, domutil.IsFormatElement)
}

// Outline describes every format element in the region.
func (d *Document) Outline() []Entry {
	return d.describeAll(d.Formats())
}

// Cells describes every table cell in the region.
func (d *Document) Cells() []Entry {
	return d.describeAll(domutil.CollectElements(d.Region, domutil.IsTableCell))
}

// Nodes collects from and everything below it. With textOnly set, only text
// nodes are returned.
func (d *Document) Nodes(from *html.Node, textOnly bool) []*html.Node {
	if !textOnly {
		return domutil.CollectNodes(from, nil)
	}
	return domutil.CollectNodes(from, func(n *html.Node) bool {
		return n.Type == html.TextNode
	})
}

// NextFormat returns the format element after n in the outline.
func (d *Document) NextFormat(n *html.Node) *html.Node {
	formats := d.Formats()
	if i := domutil.NextIndex(formats, n); i != -1 && i < len(formats) {
		return formats[i]
	}
	return nil
}

// PrevFormat returns the format element before n in the outline.
func (d *Document) PrevFormat(n *html.Node) *html.Node {
	formats := d.Formats()
	if i := domutil.PrevIndex(formats, n); i >= 0 {
		return formats[i]
	}
	return nil
}

// Path returns the element-child indexes leading from the region to n.
// It returns nil when n is not below the region.
func (d *Document) Path(n *html.Node) []int {
	path := []int{}
	for cur := n; cur != d.Region; cur = cur.Parent {
		if cur == nil || cur.Parent == nil {
			return nil
		}
		path = append([]int{domutil.IndexOf(elementChildren(cur.Parent), cur)}, path...)
	}
	return path
}

func elementChildren(n *html.Node) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, c)
		}
	}
	return out
}

// Describe summarizes n for output.
func (d *Document) Describe(n *html.Node) Entry {
	return Entry{
		Tag:   n.Data,
		ID:    domutil.Attr(n, "id"),
		Class: domutil.Attr(n, "class"),
		Text:  domutil.TextContent(n),
		Path:  d.Path(n),
	}
}

func (d *Document) describeAll(nodes []*html.Node) []Entry {
	out := make([]Entry, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, d.Describe(n))
	}
	return out
}

// Render writes the whole document as HTML.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.Root)
}

// RegionHTML returns the serialized editing region.
func (d *Document) RegionHTML() (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, d.Region); err != nil {
		return "", fmt.Errorf("render region: %w", err)
	}
	return buf.String(), nil
}
