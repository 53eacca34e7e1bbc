package search

import (
	"io"
	"slices"
	"strings"

	"golang.org/x/net/html"
)

// CSS classes used by the PyPI search results page.
const (
	titleClass   = "package-snippet__title"
	nameClass    = "package-snippet__name"
	versionClass = "package-snippet__version"
)

// Parse extracts the package results from a PyPI search page.
// Every result block is recorded, in document order, even when its name or
// version is missing; a missing value is stored as the empty string.
func Parse(r io.Reader) *Candidates {
	candidates := NewCandidates()

	doc, err := html.Parse(r)
	if err != nil {
		return candidates
	}

	for _, block := range findAll(doc, "h3", titleClass) {
		name, version := parseBlock(block)
		candidates.Set(name, version)
	}

	return candidates
}

// parseBlock reads the name and version spans of a single result block.
func parseBlock(block *html.Node) (name, version string) {
	if span := findFirst(block, "span", nameClass); span != nil {
		name = textContent(span)
	}
	if span := findFirst(block, "span", versionClass); span != nil {
		version = textContent(span)
	}
	return name, version
}

// findAll returns every element below n with the given tag and class, in document order.
// Matching elements are not searched for nested matches.
func findAll(n *html.Node, tag, class string) []*html.Node {
	var found []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if isElement(n, tag, class) {
			found = append(found, n)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return found
}

// findFirst returns the first descendant of n with the given tag and class.
func findFirst(n *html.Node, tag, class string) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if isElement(c, tag, class) {
			return c
		}
		if found := findFirst(c, tag, class); found != nil {
			return found
		}
	}
	return nil
}

func isElement(n *html.Node, tag, class string) bool {
	if n.Type != html.ElementNode || n.Data != tag {
		return false
	}
	return slices.Contains(strings.Fields(getAttr(n, "class")), class)
}

func getAttr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(b.String())
}
