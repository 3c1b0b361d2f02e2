package aoc

import (
	"bytes"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// DescriptionText returns the text of the puzzle's description articles.
func (p *Puzzle) DescriptionText() (string, error) {
	b, err := p.Description()
	if err != nil {
		return "", err
	}
	return articleText(bytes.NewReader(b))
}

// articleText extracts the text inside the <article> elements of an
// adventofcode.com day page. Block elements end with a newline and list
// items are bulleted.
func articleText(r io.Reader) (string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	var walk func(n *html.Node, inArticle bool)
	walk = func(n *html.Node, inArticle bool) {
		if n.Type == html.ElementNode && n.DataAtom == atom.Article {
			inArticle = true
		}
		if inArticle {
			switch {
			case n.Type == html.TextNode:
				if strings.TrimSpace(n.Data) == "" && strings.Contains(n.Data, "\n") {
					break // layout whitespace between blocks
				}
				sb.WriteString(n.Data)
			case n.Type == html.ElementNode && n.DataAtom == atom.Li:
				sb.WriteString("- ")
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c, inArticle)
		}
		if inArticle && n.Type == html.ElementNode {
			switch n.DataAtom {
			case atom.P, atom.H2, atom.Li, atom.Article:
				if !strings.HasSuffix(sb.String(), "\n") {
					sb.WriteByte('\n')
				}
			}
		}
	}
	walk(doc, false)
	return strings.TrimSpace(sb.String()), nil
}
