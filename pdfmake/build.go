package pdfmake

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

const (
	flagBold    = "bold"
	flagItalics = "italics"
	flagLink    = "link"
)

type builder func(n *html.Node, style Style) Content

// builderFor maps a tag name to its builder. Tags outside the supported set
// build nothing.
func builderFor(tag string) builder {
	switch tag {
	case "A":
		return buildAnchor
	case "P", "H1", "H2", "H3", "H4", "H5", "H6":
		return buildBlock
	case "UL", "OL":
		return buildList
	case "LI":
		return buildListItem
	case "STRONG":
		return buildBold
	case "EM":
		return buildItalics
	}
	return buildNothing
}

func build(n *html.Node, style Style) Content {
	return builderFor(tagName(n))(n, style)
}

func buildNothing(*html.Node, Style) Content {
	return Group{}
}

func buildText(text string, attrs ...Attributes) Text {
	return Text{Text: text, Attrs: merge(attrs...)}
}

func buildAnchor(n *html.Node, style Style) Content {
	return buildText(textContent(n), Attributes{flagLink: href(n)}, style.A)
}

func buildBold(n *html.Node, style Style) Content {
	return buildEmphasis(n, style, flagBold, "EM")
}

func buildItalics(n *html.Node, style Style) Content {
	return buildEmphasis(n, style, flagItalics, "STRONG")
}

// buildEmphasis flattens bold and italic runs. Nested opposite emphasis
// becomes a single leaf with both flags and nested links keep the flag, with
// the link style applied last. Other children are built without the flag.
func buildEmphasis(n *html.Node, style Style, flag, opposite string) Content {
	emphasis := Attributes{flag: true}
	if !hasChildElements(n) {
		return buildText(textContent(n), emphasis)
	}

	var nodes []Content
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch tagName(c) {
		case "":
			nodes = append(nodes, buildText(textContent(c), emphasis))
		case "A":
			nodes = append(nodes, buildText(textContent(c), emphasis, Attributes{flagLink: href(c)}, style.A))
		case opposite:
			nodes = append(nodes, buildText(textContent(c), Attributes{flagBold: true, flagItalics: true}))
		default:
			nodes = append(nodes, build(c, style))
		}
	}
	return Composite{Nodes: nodes}
}

// buildBlock handles paragraphs and headings. The tag style goes on the
// block, inline runs only carry their own formatting.
func buildBlock(n *html.Node, style Style) Content {
	attrs := style.For(n.Data)
	if !hasChildElements(n) {
		return buildText(textContent(n), attrs)
	}

	var nodes []Content
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			nodes = append(nodes, buildText(textContent(c)))
			continue
		}
		nodes = append(nodes, build(c, style))
	}
	return Composite{Nodes: nodes, Attrs: merge(attrs)}
}

func buildList(n *html.Node, style Style) Content {
	list := List{
		Ordered: tagName(n) == "OL",
		Items:   []Content{},
	}
	for _, c := range childElements(n) {
		list.Items = append(list.Items, build(c, style))
	}

	if list.Ordered {
		list.Attrs = merge(style.OL)
	} else {
		list.Attrs = merge(style.UL)
	}
	return list
}

// buildListItem returns the children of an item with nested elements as a
// bare Group. Text between those elements is not kept.
func buildListItem(n *html.Node, style Style) Content {
	children := childElements(n)
	if len(children) == 0 {
		return buildText(textContent(n), style.LI)
	}

	group := make(Group, 0, len(children))
	for _, c := range children {
		group = append(group, build(c, style))
	}
	return group
}

// tagName is the upper case tag of an element, empty for any other node.
func tagName(n *html.Node) string {
	if n.Type != html.ElementNode {
		return ""
	}
	return strings.ToUpper(n.Data)
}

func textContent(n *html.Node) string {
	if n.Type == html.CommentNode {
		return n.Data
	}
	return goquery.NewDocumentFromNode(n).Text()
}

func href(a *html.Node) string {
	for _, attr := range a.Attr {
		if attr.Key == "href" {
			return resolveLink(attr.Val)
		}
	}
	return ""
}

// resolveLink serializes absolute URLs the way a DOM reports an anchor's href:
// lower case scheme and host, and "/" as the path of a bare host. Relative
// links have no base document to resolve against and are kept as written.
func resolveLink(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || !u.IsAbs() {
		return raw
	}
	if u.Host != "" {
		u.Host = strings.ToLower(u.Host)
		if u.Path == "" {
			u.Path = "/"
		}
	}
	return u.String()
}

func hasChildElements(n *html.Node) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return true
		}
	}
	return false
}

func childElements(n *html.Node) (elements []*html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			elements = append(elements, c)
		}
	}
	return
}
