// Package controller drives the curation pages. A controller reads a record
// through its gateway, renders it into the page output, harvests the edited
// form back into a record and saves it, then reads again so the page shows
// the server's copy.
//
// Every failure is logged, shown on the page as an alert and returned. The
// busy indicator of the running action is reset on every path.
package controller

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/audiograms/internal/logging"
	"github.com/mesh-intelligence/audiograms/internal/page"
	"github.com/mesh-intelligence/audiograms/pkg/types"
)

// ErrNoForm is returned when an action needs a displayed form and the page
// output is empty.
var ErrNoForm = errors.New("nothing to save, read a record first")

// Controller is the read/save lifecycle every page shares.
type Controller interface {
	Read(ctx context.Context) error
	Save(ctx context.Context) error
}

// base holds the page plumbing shared by the entity controllers.
type base struct {
	page *page.Page
	log  *logging.Logger
}

func newBase(p *page.Page, log *logging.Logger) base {
	if log == nil {
		log = logging.Nop()
	}
	return base{page: p, log: log}
}

// busy turns indicator i on and returns the func that turns it off.
func (b base) busy(i page.Indicator) func() {
	b.page.ToggleBusy(i)
	return func() { b.page.ToggleBusy(i) }
}

// fail logs err, alerts it and returns it.
func (b base) fail(op string, err error) error {
	b.log.Error("page action failed", "op", op, "edit_id", b.page.EditID, "error", err)
	b.page.Alert(alertText(err))
	return err
}

// editID parses the edit field as a positive record id.
func (b base) editID() (int, error) {
	s := strings.TrimSpace(b.page.EditID)
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", types.ErrMissingID, s)
	}
	return id, nil
}

// show replaces the page output with fragment.
func (b base) show(fragment string) error {
	if err := b.page.Show(fragment); err != nil {
		return fmt.Errorf("display form: %w", err)
	}
	return nil
}

// form returns the displayed form.
func (b base) form() (*page.Document, error) {
	if b.page.Output == nil {
		return nil, ErrNoForm
	}
	return b.page.Output, nil
}

// fieldValues reads the named fields of the displayed form.
func fieldValues(doc *page.Document, ids ...string) (map[string]string, error) {
	vals := make(map[string]string, len(ids))
	for _, id := range ids {
		v, err := doc.Value(id)
		if err != nil {
			return nil, err
		}
		vals[id] = strings.TrimSpace(v)
	}
	return vals, nil
}

// recordID reads the id a form was rendered for.
func recordID(doc *page.Document, field string) (int, error) {
	v, err := doc.Value(field)
	if err != nil {
		return 0, err
	}
	id, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("%w: record id %q", types.ErrInvalidNumber, v)
	}
	return id, nil
}

// alertText renders err for the curator, capitalized like a sentence.
func alertText(err error) string {
	msg := err.Error()
	if msg == "" {
		return msg
	}
	return strings.ToUpper(msg[:1]) + msg[1:]
}
