package raster

import (
	"strings"

	"golang.org/x/net/html"
)

type itemKind int

const (
	itemName itemKind = iota + 1
	itemContacts
	itemTitle
	itemRecord
	itemField
	itemParagraph
	itemBullet
)

// item is one visual line group read back from the preview markup.
type item struct {
	kind  itemKind
	text  string
	aside string
	label string
}

func findByID(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode {
		if v, _ := attr(n, "id"); v == id {
			return n
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByID(c, id); found != nil {
			return found
		}
	}
	return nil
}

// collect walks the target element by class name. Anything marked no-print
// is skipped, as are elements the layout does not know.
func collect(n *html.Node, out []item) []item {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch {
		case hasClass(c, "no-print"):
		case hasClass(c, "header-name"):
			out = append(out, item{kind: itemName, text: textOf(c)})
		case hasClass(c, "header-contacts"):
			var parts []string
			each(c, "contact", func(contact *html.Node) {
				label := textOf(first(contact, "contact-label"))
				value := textOf(first(contact, "contact-value"))
				parts = append(parts, strings.TrimSpace(label+" "+value))
			})
			if len(parts) > 0 {
				out = append(out, item{kind: itemContacts, text: strings.Join(parts, "  |  ")})
			}
		case hasClass(c, "section-title"):
			out = append(out, item{kind: itemTitle, text: textOf(c)})
		case hasClass(c, "record-header"):
			var aside []string
			if a := first(c, "record-aside"); a != nil {
				for s := a.FirstChild; s != nil; s = s.NextSibling {
					if s.Type == html.ElementNode {
						aside = append(aside, textOf(s))
					}
				}
			}
			out = append(out, item{kind: itemRecord, text: textOf(first(c, "record-title")), aside: strings.Join(aside, " · ")})
		case hasClass(c, "field"):
			label := first(c, "field-label")
			full := textOf(c)
			l := textOf(label)
			out = append(out, item{kind: itemField, label: l, text: strings.TrimSpace(strings.TrimPrefix(strings.TrimPrefix(full, l), ":"))})
		case hasClass(c, "paragraph"):
			out = append(out, item{kind: itemParagraph, text: textOf(c)})
		case hasClass(c, "bullets"):
			for li := c.FirstChild; li != nil; li = li.NextSibling {
				if li.Type == html.ElementNode && li.Data == "li" {
					out = append(out, item{kind: itemBullet, text: textOf(li)})
				}
			}
		default:
			out = collect(c, out)
		}
	}
	return out
}

func each(n *html.Node, class string, fn func(*html.Node)) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && hasClass(c, class) {
			fn(c)
		}
	}
}

func first(n *html.Node, class string) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		if hasClass(c, class) {
			return c
		}
		if found := first(c, class); found != nil {
			return found
		}
	}
	return nil
}

func hasClass(n *html.Node, class string) bool {
	v, ok := attr(n, "class")
	if !ok {
		return false
	}
	for _, f := range strings.Fields(v) {
		if f == class {
			return true
		}
	}
	return false
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func textOf(n *html.Node) string {
	if n == nil {
		return ""
	}
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
	return strings.Join(strings.Fields(b.String()), " ")
}
