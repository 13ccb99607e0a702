// Package formatter renders entity records as HTML form fragments.
//
// Field ids in the fragments are the record's JSON field names so the page
// controllers can harvest a record back by the same names. Select fields
// always start with an empty option; the option equal to the current value
// is marked selected, and a null value selects none.
package formatter

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/mesh-intelligence/audiograms/pkg/types"
)

// FieldRecordID is the hidden field carrying the id the fragment was
// rendered for.
const FieldRecordID = "record_id"

// OptionSource supplies the option lists for reference selects. The lists
// are fetched while formatting. *gateway.References implements it.
type OptionSource interface {
	Species(ctx context.Context) ([]types.Option, error)
	Publications(ctx context.Context) ([]types.Option, error)
	Facilities(ctx context.Context) ([]types.Option, error)
	MeasurementMethods(ctx context.Context) ([]types.Option, error)
	ToneMethods(ctx context.Context) ([]types.Option, error)
	SPLReferences(ctx context.Context) ([]types.Option, error)
}

// Input renders a labelled short text input.
func Input(label, id, val string) string {
	return input(label, id, val, 4, false)
}

// InputLong renders a labelled wide text input.
func InputLong(label, id, val string) string {
	return input(label, id, val, 40, false)
}

// InputLongDisabled renders a labelled wide text input the curator cannot
// change.
func InputLongDisabled(label, id, val string) string {
	return input(label, id, val, 40, true)
}

func input(label, id, val string, size int, disabled bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n<div class=\"filter_label\">%s</div>\n", html.EscapeString(label))
	fmt.Fprintf(&b, `<input type="text" id="%s" size="%d" placeholder="" value="%s"`,
		html.EscapeString(id), size, html.EscapeString(val))
	if disabled {
		b.WriteString(" disabled")
	}
	b.WriteString("/>")
	return b.String()
}

// Text renders a labelled multi-line text area.
func Text(label, id, val string) string {
	return fmt.Sprintf("\n<div class=\"filter_label\">%s</div>\n<textarea rows=\"5\" cols=\"120\" id=\"%s\">%s</textarea>",
		html.EscapeString(label), html.EscapeString(id), html.EscapeString(val))
}

// Hidden renders a hidden input.
func Hidden(id, val string) string {
	return fmt.Sprintf("\n<input type=\"hidden\" id=\"%s\" value=\"%s\"/>",
		html.EscapeString(id), html.EscapeString(val))
}

// Pulldown renders a labelled select whose option values are also the
// labels.
func Pulldown(label, id string, val types.Scalar, values []string) string {
	return PulldownKeyVal(label, id, val, types.OptionsOf(values...))
}

// PulldownKeyVal renders a labelled select over options.
func PulldownKeyVal(label, id string, val types.Scalar, options []types.Option) string {
	return fmt.Sprintf("\n<label class=\"filter_label\" for=\"%s\">%s</label>\n%s",
		html.EscapeString(id), html.EscapeString(label), selectField(id, val, options))
}

// selectField renders an unlabelled select with a leading empty option.
func selectField(id string, val types.Scalar, options []types.Option) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<select id=\"%s\">\n<option value=\"\"></option>\n", html.EscapeString(id))
	for _, o := range options {
		if o.Value == "" {
			continue
		}
		selected := ""
		if val.Valid && val.Value == o.Value {
			selected = " selected"
		}
		fmt.Fprintf(&b, "<option value=\"%s\"%s>%s</option>\n",
			html.EscapeString(o.Value), selected, html.EscapeString(o.Label))
	}
	b.WriteString("</select>")
	return b.String()
}

// section wraps fields in the details container of an entity form.
func section(class string, fields ...string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<div class=\"filters %s\">", class)
	for _, f := range fields {
		b.WriteString(f)
	}
	b.WriteString("\n</div>\n")
	return b.String()
}
