package domutil

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
)

const scenarioHTML = `<div class="sun-editor-id-wysiwyg"><p>a</p><div><h2>b</h2></div></div>`

func parseHTML(t *testing.T, src string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

// first returns the first element under root with the given tag.
func first(t *testing.T, root *html.Node, tag string) *html.Node {
	t.Helper()
	for _, n := range CollectElements(root, nil) {
		if n.Data == tag {
			return n
		}
	}
	t.Fatalf("no <%s> element in tree", tag)
	return nil
}

func region(t *testing.T, doc *html.Node) *html.Node {
	t.Helper()
	found := CollectElements(doc, IsEditingRegion)
	if len(found) == 0 {
		t.Fatal("no editing region in tree")
	}
	return found[0]
}

func tags(nodes []*html.Node) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		switch n.Type {
		case html.TextNode:
			out = append(out, "#text:"+n.Data)
		default:
			out = append(out, n.Data)
		}
	}
	return out
}
