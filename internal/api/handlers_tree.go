package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/dgallion1/edtree/internal/doctree"
	"github.com/dgallion1/edtree/internal/domutil"
	"golang.org/x/net/html"
)

// treeRequest is the body shared by all tree endpoints. Each handler reads
// only the fields it needs.
type treeRequest struct {
	HTML     string `json:"html"`
	From     string `json:"from"`
	Query    string `json:"query"`
	Target   string `json:"target"`
	Op       string `json:"op"`
	Class    string `json:"class"`
	Text     string `json:"text"`
	TextOnly bool   `json:"text_only"`
}

type nodeView struct {
	Type string `json:"type"`
	Data string `json:"data"`
}

// decodeDocument parses the request body and its document. On failure the
// error response has already been written.
func (s *Server) decodeDocument(w http.ResponseWriter, r *http.Request) (*doctree.Document, treeRequest, bool) {
	var req treeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			jsonError(w, "document exceeds max size", http.StatusRequestEntityTooLarge)
			return nil, req, false
		}
		jsonError(w, "invalid json: "+err.Error(), http.StatusBadRequest)
		return nil, req, false
	}
	if strings.TrimSpace(req.HTML) == "" {
		jsonError(w, "html is required", http.StatusBadRequest)
		return nil, req, false
	}

	doc, err := doctree.Parse(strings.NewReader(req.HTML))
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return nil, req, false
	}
	return doc, req, true
}

// selectNode resolves query inside the region. An empty query selects the
// region itself.
func selectNode(w http.ResponseWriter, doc *doctree.Document, field, query string) (*html.Node, bool) {
	if query == "" {
		return doc.Region, true
	}
	n := doc.Select(query)
	if n == nil {
		jsonError(w, field+" matched no element: "+query, http.StatusNotFound)
		return nil, false
	}
	return n, true
}

func (s *Server) handleOutline(w http.ResponseWriter, r *http.Request) {
	doc, _, ok := s.decodeDocument(w, r)
	if !ok {
		return
	}
	writeJSON(w, map[string]any{
		"format": doc.Outline(),
		"cells":  doc.Cells(),
	})
}

func (s *Server) handleAncestor(w http.ResponseWriter, r *http.Request) {
	doc, req, ok := s.decodeDocument(w, r)
	if !ok {
		return
	}
	if req.Query == "" {
		jsonError(w, "query is required", http.StatusBadRequest)
		return
	}
	from, ok := selectNode(w, doc, "from", req.From)
	if !ok {
		return
	}

	resp := map[string]any{"match": nil, "format": nil}
	if m := domutil.FindAncestor(from, req.Query); m != nil {
		resp["match"] = doc.Describe(m)
	}
	format, err := domutil.NearestFormatElement(from)
	if err != nil {
		s.log.Warn("nearest format element", "from", req.From, "error", err)
	} else if format != nil {
		resp["format"] = doc.Describe(format)
	}
	writeJSON(w, resp)
}

func (s *Server) handleNodes(w http.ResponseWriter, r *http.Request) {
	doc, req, ok := s.decodeDocument(w, r)
	if !ok {
		return
	}
	from, ok := selectNode(w, doc, "from", req.From)
	if !ok {
		return
	}

	nodes := doc.Nodes(from, req.TextOnly)
	views := make([]nodeView, 0, len(nodes))
	for _, n := range nodes {
		views = append(views, nodeView{Type: nodeType(n), Data: n.Data})
	}
	writeJSON(w, map[string]any{"nodes": views})
}

func (s *Server) handleClasses(w http.ResponseWriter, r *http.Request) {
	doc, req, ok := s.decodeDocument(w, r)
	if !ok {
		return
	}
	if strings.TrimSpace(req.Class) == "" {
		jsonError(w, "class is required", http.StatusBadRequest)
		return
	}
	target, ok := selectNode(w, doc, "target", req.Target)
	if !ok {
		return
	}

	switch req.Op {
	case "add":
		domutil.AddClass(target, req.Class)
	case "remove":
		domutil.RemoveClass(target, req.Class)
	case "toggle":
		domutil.ToggleClass(target, req.Class)
	case "has":
	default:
		jsonError(w, "unknown op: "+req.Op, http.StatusBadRequest)
		return
	}

	s.writeMutation(w, doc, map[string]any{
		"has":   domutil.HasClass(target, req.Class),
		"class": domutil.Attr(target, "class"),
	})
}

func (s *Server) handleText(w http.ResponseWriter, r *http.Request) {
	doc, req, ok := s.decodeDocument(w, r)
	if !ok {
		return
	}
	if req.Target == "" {
		jsonError(w, "target is required", http.StatusBadRequest)
		return
	}
	target, ok := selectNode(w, doc, "target", req.Target)
	if !ok {
		return
	}
	domutil.ChangeText(target, req.Text)
	s.writeMutation(w, doc, map[string]any{"text": domutil.TextContent(target)})
}

func (s *Server) handleRemove(w http.ResponseWriter, r *http.Request) {
	doc, req, ok := s.decodeDocument(w, r)
	if !ok {
		return
	}
	if req.Target == "" {
		jsonError(w, "target is required", http.StatusBadRequest)
		return
	}
	target, ok := selectNode(w, doc, "target", req.Target)
	if !ok {
		return
	}
	removed := doc.Describe(target)
	domutil.RemoveItem(target)
	s.writeMutation(w, doc, map[string]any{"removed": removed})
}

// writeMutation adds the serialized region to resp and writes it.
func (s *Server) writeMutation(w http.ResponseWriter, doc *doctree.Document, resp map[string]any) {
	out, err := doc.RegionHTML()
	if err != nil {
		s.log.Error("render region", "error", err)
		jsonError(w, "failed to render document", http.StatusInternalServerError)
		return
	}
	resp["html"] = out
	writeJSON(w, resp)
}

func nodeType(n *html.Node) string {
	switch n.Type {
	case html.ElementNode:
		return "element"
	case html.TextNode:
		return "text"
	case html.CommentNode:
		return "comment"
	}
	return "other"
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
