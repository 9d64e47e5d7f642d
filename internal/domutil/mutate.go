package domutil

import "golang.org/x/net/html"

// RemoveItem detaches n from its parent. Nodes without a parent are left alone.
func RemoveItem(n *html.Node) {
	if n == nil || n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// ChangeText replaces the children of n with a single text node holding txt.
// An empty txt leaves n untouched.
func ChangeText(n *html.Node, txt string) {
	if n == nil || txt == "" {
		return
	}
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		n.RemoveChild(c)
		c = next
	}
	n.AppendChild(&html.Node{Type: html.TextNode, Data: txt})
}
