// Package page models the curation page an entity controller drives: the
// edit id input, the output container holding the rendered form, the busy
// indicators of the edit and save buttons, and the alerts shown to the
// curator.
//
// Between CLI invocations a page lives in a form file: a hidden edit_id
// input followed by the rendered output, which the curator edits by hand or
// with the set command.
package page

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mesh-intelligence/audiograms/internal/formatter"
)

// FieldEditID is the id of the edit id input in a form file.
const FieldEditID = "edit_id"

// Indicator names a busy indicator.
type Indicator int

// Busy indicators.
const (
	IndicatorEdit Indicator = iota
	IndicatorSave
)

func (i Indicator) String() string {
	switch i {
	case IndicatorEdit:
		return "edit"
	case IndicatorSave:
		return "save"
	default:
		return fmt.Sprintf("indicator(%d)", int(i))
	}
}

// Page is the state of one curation page. It is not safe for concurrent
// use.
type Page struct {
	// EditID is the id typed into the edit field.
	EditID string
	// Output is the displayed form, nil when the container is empty.
	Output *Document
	// ActionsVisible reports whether the save and delete actions are shown.
	ActionsVisible bool
	// Alerts holds the messages shown to the curator, oldest first.
	Alerts []string

	busy [2]bool
}

// New returns an empty page.
func New() *Page {
	return &Page{}
}

// ToggleBusy flips indicator i.
func (p *Page) ToggleBusy(i Indicator) {
	p.busy[i] = !p.busy[i]
}

// Busy reports whether indicator i is on.
func (p *Page) Busy(i Indicator) bool {
	return p.busy[i]
}

// Alert shows msg to the curator.
func (p *Page) Alert(msg string) {
	p.Alerts = append(p.Alerts, msg)
}

// Clear empties the output container and hides the actions.
func (p *Page) Clear() {
	p.Output = nil
	p.ActionsVisible = false
}

// Show replaces the output with fragment and shows the actions.
func (p *Page) Show(fragment string) error {
	doc, err := Parse(fragment)
	if err != nil {
		return err
	}
	p.Output = doc
	p.ActionsVisible = true
	return nil
}

// Load reads a page from the form file at path.
func Load(path string) (*Page, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read form %s: %w", path, err)
	}
	doc, err := Parse(string(data))
	if err != nil {
		return nil, err
	}
	p := New()
	if doc.Has(FieldEditID) {
		p.EditID, _ = doc.Value(FieldEditID)
		doc.Remove(FieldEditID)
	}
	if !doc.Empty() {
		p.Output = doc
		p.ActionsVisible = true
	}
	return p, nil
}

// Store writes p to the form file at path.
func (p *Page) Store(path string) error {
	var b strings.Builder
	b.WriteString(strings.TrimPrefix(formatter.Hidden(FieldEditID, p.EditID), "\n"))
	b.WriteString("\n")
	if p.Output != nil {
		out, err := p.Output.Render()
		if err != nil {
			return err
		}
		b.WriteString(out)
		b.WriteString("\n")
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create form dir: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write form %s: %w", path, err)
	}
	return nil
}
