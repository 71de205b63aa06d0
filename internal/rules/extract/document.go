// Package extract turns rule documents into rule snapshots.
//
// Pages are parsed into an HTML tree and split into sections: a heading
// (h1-h6) owns every node up to the next heading. Section headings are
// matched against synonym lists so that wording changes on the source pages
// do not break extraction.
package extract

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"compliance-advisor/internal/rules/source"
	pkgstrings "compliance-advisor/pkg/platform/strings"
)

// ErrExtractionFailed is returned when a document holds no usable rules.
var ErrExtractionFailed = source.ErrExtractionFailed

// section is a heading together with the list items that follow it.
type section struct {
	heading string
	items   []string
}

// page is the flattened view of a parsed document.
type page struct {
	sections []section
	rows     [][]string
}

func parsePage(doc *source.Document) (*page, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: no document", ErrExtractionFailed)
	}
	root, err := html.Parse(strings.NewReader(doc.HTML))
	if err != nil {
		return nil, fmt.Errorf("%w: parse document %s: %v", ErrExtractionFailed, doc.ID, err)
	}

	p := &page{sections: []section{{}}}
	p.walk(root)
	return p, nil
}

func (p *page) current() *section {
	return &p.sections[len(p.sections)-1]
}

func (p *page) walk(n *html.Node) {
	if n.Type == html.ElementNode {
		switch n.DataAtom {
		case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
			p.sections = append(p.sections, section{heading: nodeText(n)})
			return
		case atom.Li:
			if item := nodeText(n); item != "" {
				p.current().items = append(p.current().items, item)
			}
			return
		case atom.Tr:
			p.rows = append(p.rows, rowCells(n))
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		p.walk(c)
	}
}

// itemsUnder collects the items of every section whose heading contains one
// of the synonyms.
func (p *page) itemsUnder(synonyms []string) []string {
	var out []string
	for _, s := range p.sections {
		if s.heading != "" && pkgstrings.ContainsAnyFold(s.heading, synonyms...) {
			out = append(out, s.items...)
		}
	}
	return out
}

func rowCells(tr *html.Node) []string {
	var cells []string
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && (c.DataAtom == atom.Td || c.DataAtom == atom.Th) {
			cells = append(cells, nodeText(c))
		}
	}
	return cells
}

// nodeText returns the text of n with tags stripped and whitespace collapsed.
func nodeText(n *html.Node) string {
	var b strings.Builder
	collectText(n, &b)
	return pkgstrings.CollapseSpace(b.String())
}

func collectText(n *html.Node, b *strings.Builder) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
		return
	case html.ElementNode:
		switch n.DataAtom {
		case atom.Br, atom.P, atom.Div:
			b.WriteByte(' ')
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}
