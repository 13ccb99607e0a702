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

// TaxonomyGateway retrieves lineages and adds them to the database.
type TaxonomyGateway interface {
	Retrieve(ctx context.Context, latinName string) (types.Lineage, error)
	Add(ctx context.Context, l types.Lineage) error
}

// TaxonomyController adds species to the taxonomy. The edit field holds a
// latin name rather than an id.
type TaxonomyController struct {
	base
	gw   TaxonomyGateway
	view formatter.Taxon
}

// NewTaxonomyController returns a controller for p.
func NewTaxonomyController(p *page.Page, gw TaxonomyGateway, log *logging.Logger) *TaxonomyController {
	return &TaxonomyController{base: newBase(p, log), gw: gw}
}

// Create retrieves the lineage of the latin name in the edit field and
// displays it for review.
func (c *TaxonomyController) Create(ctx context.Context) error {
	defer c.busy(page.IndicatorEdit)()

	name := strings.TrimSpace(c.page.EditID)
	if name == "" {
		return c.fail("retrieve taxon", types.ErrMissingName)
	}
	c.page.Clear()

	l, err := c.gw.Retrieve(ctx, name)
	if err != nil {
		return c.fail("retrieve taxon", fmt.Errorf("error reading taxonomic data. Is the latin name spelled correctly? %w", err))
	}
	out, err := c.view.Format(ctx, name, l)
	if err != nil {
		return c.fail("retrieve taxon", err)
	}
	if err := c.show(out); err != nil {
		return c.fail("retrieve taxon", err)
	}
	return nil
}

// Read is Create: a taxon page is always loaded from the Open Tree of Life.
func (c *TaxonomyController) Read(ctx context.Context) error {
	return c.Create(ctx)
}

// Save adds the displayed lineage. Every field must be filled in.
func (c *TaxonomyController) Save(ctx context.Context) error {
	defer c.busy(page.IndicatorSave)()

	l, err := c.harvest()
	if err != nil {
		return c.fail("save taxon", err)
	}
	if err := l.Validate(); err != nil {
		return c.fail("save taxon", err)
	}
	if err := c.gw.Add(ctx, l); err != nil {
		return c.fail("save taxon", fmt.Errorf("error while saving taxon: %w", err))
	}

	c.page.EditID = l.UniqueName
	c.page.Alert("Saved")
	c.log.Info("taxon added", "unique_name", l.UniqueName)
	return nil
}

func (c *TaxonomyController) harvest() (types.Lineage, error) {
	doc, err := c.form()
	if err != nil {
		return types.Lineage{}, err
	}
	ids := []string{formatter.FieldUniqueName, formatter.FieldVernacularName}
	for _, rank := range types.Ranks {
		ids = append(ids, rank, formatter.OttIDField(rank))
	}
	v, err := fieldValues(doc, ids...)
	if err != nil {
		return types.Lineage{}, err
	}

	l := types.Lineage{
		UniqueName:     v[formatter.FieldUniqueName],
		VernacularName: v[formatter.FieldVernacularName],
	}
	for _, rank := range types.Ranks {
		raw := v[formatter.OttIDField(rank)]
		ott, err := strconv.Atoi(raw)
		if err != nil {
			return types.Lineage{}, fmt.Errorf("%w: %s ott id %q", types.ErrInvalidNumber, rank, raw)
		}
		l.SetRank(rank, &types.Taxon{Name: v[rank], OttID: ott})
	}
	return l, nil
}
