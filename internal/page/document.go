package page

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/mesh-intelligence/audiograms/internal/formatter"
	"github.com/mesh-intelligence/audiograms/pkg/types"
)

// Document errors.
var (
	ErrNoSuchField = errors.New("no such field")
	ErrNoSuchRow   = errors.New("no such data point row")
	ErrDisabled    = errors.New("field is disabled")
)

// Row is a data point table row as found in a Document.
type Row struct {
	ID    string
	Class string
}

// Deleted reports whether the row is marked for deletion.
func (r Row) Deleted() bool { return r.Class == formatter.ClassDataPointDeleted }

// New reports whether the row is the new data point template.
func (r Row) New() bool { return r.Class == formatter.ClassDataPointNew }

// Document is a parsed form fragment. Field values are read and written by
// element id, the way a browser form is.
type Document struct {
	root *html.Node
}

// Parse parses an HTML fragment as the content of a body element.
func Parse(fragment string) (*Document, error) {
	ctx := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), ctx)
	if err != nil {
		return nil, fmt.Errorf("parse form: %w", err)
	}
	root := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	for _, n := range nodes {
		root.AppendChild(n)
	}
	return &Document{root: root}, nil
}

// Empty reports whether the document holds no elements.
func (d *Document) Empty() bool {
	for c := d.root.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return false
		}
	}
	return true
}

// Render writes the document back to HTML.
func (d *Document) Render() (string, error) {
	var b strings.Builder
	for c := d.root.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&b, c); err != nil {
			return "", fmt.Errorf("render form: %w", err)
		}
	}
	return b.String(), nil
}

// Has reports whether an element with id exists.
func (d *Document) Has(id string) bool {
	return d.find(id) != nil
}

// Value returns the current value of field id. A select without a selected
// option reports its first option, as a browser does.
func (d *Document) Value(id string) (string, error) {
	n := d.find(id)
	if n == nil {
		return "", fmt.Errorf("%w: %s", ErrNoSuchField, id)
	}
	switch n.DataAtom {
	case atom.Textarea:
		return textOf(n), nil
	case atom.Select:
		opts := options(n)
		if len(opts) == 0 {
			return "", nil
		}
		chosen := opts[0]
		for _, o := range opts {
			if hasAttr(o, "selected") {
				chosen = o
				break
			}
		}
		return optionValue(chosen), nil
	default:
		v, _ := attr(n, "value")
		return v, nil
	}
}

// SetValue sets field id to v. For a select, v must be the value of one of
// its options. Disabled fields are read-only.
func (d *Document) SetValue(id, v string) error {
	n := d.find(id)
	if n == nil {
		return fmt.Errorf("%w: %s", ErrNoSuchField, id)
	}
	if hasAttr(n, "disabled") {
		return fmt.Errorf("%w: %s", ErrDisabled, id)
	}
	switch n.DataAtom {
	case atom.Textarea:
		for c := n.FirstChild; c != nil; c = n.FirstChild {
			n.RemoveChild(c)
		}
		n.AppendChild(&html.Node{Type: html.TextNode, Data: v})
	case atom.Select:
		var match *html.Node
		for _, o := range options(n) {
			if match == nil && optionValue(o) == v {
				match = o
			}
		}
		if match == nil {
			return fmt.Errorf("%w: %s has no option %q", types.ErrInvalidOption, id, v)
		}
		for _, o := range options(n) {
			removeAttr(o, "selected")
		}
		setAttr(match, "selected", "")
	default:
		setAttr(n, "value", v)
	}
	return nil
}

// Remove deletes element id from the document.
func (d *Document) Remove(id string) {
	if n := d.find(id); n != nil && n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}

// Table returns the id of the data point table, or "" when the document has
// none.
func (d *Document) Table() string {
	var id string
	walk(d.root, func(n *html.Node) bool {
		if hasClass(n, formatter.ClassAudiogram) {
			id, _ = attr(n, "id")
			return false
		}
		return true
	})
	return id
}

// Rows returns the data point rows in document order: existing, new and
// deleted.
func (d *Document) Rows() []Row {
	var rows []Row
	walk(d.root, func(n *html.Node) bool {
		if n.DataAtom != atom.Tr {
			return true
		}
		for _, class := range []string{formatter.ClassDataPoint, formatter.ClassDataPointNew, formatter.ClassDataPointDeleted} {
			if hasClass(n, class) {
				id, _ := attr(n, "id")
				rows = append(rows, Row{ID: id, Class: class})
				break
			}
		}
		return true
	})
	return rows
}

// Toggle flips an existing data point row between kept and marked for
// deletion, disabling or enabling its inputs to match. It returns whether
// the row is now marked. The template row cannot be toggled.
func (d *Document) Toggle(rowID string) (bool, error) {
	n := d.find(rowID)
	if n == nil || n.DataAtom != atom.Tr {
		return false, fmt.Errorf("%w: %s", ErrNoSuchRow, rowID)
	}
	var deleted bool
	switch {
	case hasClass(n, formatter.ClassDataPoint):
		setAttr(n, "class", formatter.ClassDataPointDeleted)
		deleted = true
	case hasClass(n, formatter.ClassDataPointDeleted):
		setAttr(n, "class", formatter.ClassDataPoint)
	default:
		return false, fmt.Errorf("%w: %s", ErrNoSuchRow, rowID)
	}
	walk(n, func(c *html.Node) bool {
		if c.DataAtom == atom.Input || c.DataAtom == atom.Select {
			if deleted {
				setAttr(c, "disabled", "")
			} else {
				removeAttr(c, "disabled")
			}
		}
		return true
	})
	return deleted, nil
}

// Disabled reports whether field id is disabled.
func (d *Document) Disabled(id string) bool {
	n := d.find(id)
	return n != nil && hasAttr(n, "disabled")
}

func (d *Document) find(id string) *html.Node {
	var found *html.Node
	walk(d.root, func(n *html.Node) bool {
		if v, ok := attr(n, "id"); ok && v == id {
			found = n
			return false
		}
		return true
	})
	return found
}

// walk visits n and its descendants depth first until fn returns false.
func walk(n *html.Node, fn func(*html.Node) bool) bool {
	if n.Type == html.ElementNode && !fn(n) {
		return false
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !walk(c, fn) {
			return false
		}
	}
	return true
}

func options(sel *html.Node) []*html.Node {
	var opts []*html.Node
	walk(sel, func(n *html.Node) bool {
		if n.DataAtom == atom.Option {
			opts = append(opts, n)
		}
		return true
	})
	return opts
}

func optionValue(o *html.Node) string {
	if v, ok := attr(o, "value"); ok {
		return v
	}
	return strings.TrimSpace(textOf(o))
}

func textOf(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	}
	return b.String()
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func hasAttr(n *html.Node, key string) bool {
	_, ok := attr(n, key)
	return ok
}

func setAttr(n *html.Node, key, val string) {
	for i := range n.Attr {
		if n.Attr[i].Namespace == "" && n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func removeAttr(n *html.Node, key string) {
	attrs := n.Attr[:0]
	for _, a := range n.Attr {
		if a.Namespace != "" || a.Key != key {
			attrs = append(attrs, a)
		}
	}
	n.Attr = attrs
}

func hasClass(n *html.Node, class string) bool {
	v, ok := attr(n, "class")
	if !ok {
		return false
	}
	for _, c := range strings.Fields(v) {
		if c == class {
			return true
		}
	}
	return false
}
