package rendertest

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// Section is the visible content of one rendered section, in reading order.
type Section struct {
	Kind    string
	Content []string
}

// Extract parses rendered markup and returns, for every element carrying
// data-section, the text of its data-field descendants in document order.
func Extract(markup string) ([]Section, error) {
	root, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("parse markup: %w", err)
	}
	var out []Section
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if kind, ok := attr(n, "data-section"); ok {
				s := Section{Kind: kind, Content: []string{}}
				collectFields(n, &s.Content)
				out = append(out, s)
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return out, nil
}

func collectFields(n *html.Node, into *[]string) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		if _, ok := attr(c, "data-field"); ok {
			*into = append(*into, text(c))
			continue
		}
		collectFields(c, into)
	}
}

func text(n *html.Node) string {
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

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}
