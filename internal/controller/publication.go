package controller

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/audiograms/internal/formatter"
	"github.com/mesh-intelligence/audiograms/internal/logging"
	"github.com/mesh-intelligence/audiograms/internal/page"
	"github.com/mesh-intelligence/audiograms/pkg/types"
)

// PublicationGateway reads, resolves and saves publications.
type PublicationGateway interface {
	Read(ctx context.Context, id int) (types.Publication, error)
	Resolve(ctx context.Context, doi string) (types.Publication, error)
	Save(ctx context.Context, p types.Publication) (int, error)
}

// PublicationController adds publications by DOI and edits their
// citations.
type PublicationController struct {
	base
	gw   PublicationGateway
	view formatter.Publication
}

// NewPublicationController returns a controller for p.
func NewPublicationController(p *page.Page, gw PublicationGateway, log *logging.Logger) *PublicationController {
	return &PublicationController{base: newBase(p, log), gw: gw}
}

// Create looks up the DOI in the edit field and displays the resolved
// citations for review. Nothing is stored until Save.
func (c *PublicationController) Create(ctx context.Context) error {
	defer c.busy(page.IndicatorEdit)()

	doi := strings.TrimSpace(c.page.EditID)
	if doi == "" {
		return c.fail("create publication", types.ErrMissingDOI)
	}
	c.page.Clear()

	p, err := c.gw.Resolve(ctx, doi)
	if err != nil {
		return c.fail("create publication", fmt.Errorf("error resolving DOI %s: %w", doi, err))
	}
	if !p.Resolved() {
		return c.fail("create publication", fmt.Errorf("%w: could not retrieve data for DOI %s. Is the DOI correct?", types.ErrNotFound, doi))
	}
	out, err := c.view.Format(ctx, 0, p)
	if err != nil {
		return c.fail("create publication", err)
	}
	if err := c.show(out); err != nil {
		return c.fail("create publication", err)
	}
	return nil
}

// Read displays the publication whose id is in the edit field.
func (c *PublicationController) Read(ctx context.Context) error {
	defer c.busy(page.IndicatorEdit)()

	id, err := c.editID()
	if err != nil {
		return c.fail("read publication", err)
	}
	c.page.Clear()

	p, err := c.gw.Read(ctx, id)
	if err != nil {
		return c.fail("read publication", fmt.Errorf("error reading publication %d: %w", id, err))
	}
	out, err := c.view.Format(ctx, id, p)
	if err != nil {
		return c.fail("read publication", err)
	}
	if err := c.show(out); err != nil {
		return c.fail("read publication", err)
	}
	return nil
}

// Save stores the displayed publication and reads it back by the id the
// server returns.
func (c *PublicationController) Save(ctx context.Context) error {
	defer c.busy(page.IndicatorSave)()

	doc, err := c.form()
	if err != nil {
		return c.fail("save publication", err)
	}
	v, err := fieldValues(doc, formatter.FieldDOI, formatter.FieldCitationLong, formatter.FieldCitationShort)
	if err != nil {
		return c.fail("save publication", err)
	}
	p := types.Publication{
		DOI:           v[formatter.FieldDOI],
		CitationLong:  v[formatter.FieldCitationLong],
		CitationShort: v[formatter.FieldCitationShort],
	}

	id, err := c.gw.Save(ctx, p)
	if err != nil {
		return c.fail("save publication", fmt.Errorf("error while saving publication: %w", err))
	}
	c.page.EditID = strconv.Itoa(id)
	return c.Read(ctx)
}
