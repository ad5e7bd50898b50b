package loader

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// sanitizeHTML strips <script> elements and any <style> block whose content
// fails the well-formedness heuristic, shielding the downstream parser from
// malformed CSS/JS. Returns the serialized document.
func sanitizeHTML(raw string) (string, error) {
	return rewrite(raw, false)
}

// aggressiveSanitizeHTML additionally drops every <style> element, style
// attributes and comments. Used for the single retry after a parse failure.
func aggressiveSanitizeHTML(raw string) (string, error) {
	return rewrite(raw, true)
}

func rewrite(raw string, aggressive bool) (string, error) {
	root, err := html.Parse(strings.NewReader(raw))
	if err != nil {
		return "", err
	}

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		var next *html.Node
		for c := n.FirstChild; c != nil; c = next {
			next = c.NextSibling
			if shouldDrop(c, aggressive) {
				n.RemoveChild(c)
				continue
			}
			if aggressive && c.Type == html.ElementNode {
				c.Attr = dropStyleAttrs(c.Attr)
			}
			walk(c)
		}
	}
	walk(root)

	var sb strings.Builder
	if err := html.Render(&sb, root); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func shouldDrop(n *html.Node, aggressive bool) bool {
	switch n.Type {
	case html.CommentNode:
		return aggressive
	case html.ElementNode:
		switch n.DataAtom {
		case atom.Script:
			return true
		case atom.Style:
			if aggressive {
				return true
			}
			return !styleLooksWellFormed(textContent(n))
		}
	}
	return false
}

func dropStyleAttrs(attrs []html.Attribute) []html.Attribute {
	out := attrs[:0]
	for _, a := range attrs {
		if strings.EqualFold(a.Key, "style") {
			continue
		}
		out = append(out, a)
	}
	return out
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
	}
	return sb.String()
}

// styleLooksWellFormed is a lightweight check, not a CSS parser: braces and
// block comments must balance and close in order. Anything that trips it is
// dropped wholesale.
func styleLooksWellFormed(css string) bool {
	depth := 0
	inComment := false
	for i := 0; i < len(css); i++ {
		if inComment {
			if css[i] == '*' && i+1 < len(css) && css[i+1] == '/' {
				inComment = false
				i++
			}
			continue
		}
		switch css[i] {
		case '/':
			if i+1 < len(css) && css[i+1] == '*' {
				inComment = true
				i++
			}
		case '{':
			depth++
		case '}':
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	return depth == 0 && !inComment
}
