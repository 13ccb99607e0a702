package controller

import (
	"context"
	"fmt"
	"strconv"

	"github.com/mesh-intelligence/audiograms/internal/formatter"
	"github.com/mesh-intelligence/audiograms/internal/logging"
	"github.com/mesh-intelligence/audiograms/internal/page"
)

// DataPointController edits the data points of an audiogram as one table.
type DataPointController struct {
	base
	gw     DataPointGateway
	view   formatter.DataPoints
	editor *BatchEditor
}

// NewDataPointController returns a controller for p.
func NewDataPointController(p *page.Page, gw DataPointGateway, view formatter.DataPoints, log *logging.Logger) *DataPointController {
	b := newBase(p, log)
	return &DataPointController{base: b, gw: gw, view: view, editor: NewBatchEditor(gw, b.log)}
}

// Read displays the data points of the audiogram in the edit field.
func (c *DataPointController) Read(ctx context.Context) error {
	defer c.busy(page.IndicatorEdit)()

	id, err := c.editID()
	if err != nil {
		return c.fail("read data points", err)
	}
	c.page.Clear()

	dps, err := c.gw.List(ctx, id)
	if err != nil {
		return c.fail("read data points", fmt.Errorf("error reading audiogram %d: %w", id, err))
	}
	out, err := c.view.Format(ctx, id, dps)
	if err != nil {
		return c.fail("read data points", err)
	}
	if err := c.show(out); err != nil {
		return c.fail("read data points", err)
	}
	return nil
}

// TrashToggle marks data point id for deletion, or unmarks it. Nothing is
// sent until Save.
func (c *DataPointController) TrashToggle(id int) error {
	doc, err := c.form()
	if err != nil {
		return c.fail("trash data point", err)
	}
	deleted, err := doc.Toggle(formatter.RowID(id))
	if err != nil {
		return c.fail("trash data point", err)
	}
	c.log.Debug("data point toggled", "data_point_id", id, "deleted", deleted)
	return nil
}

// Save sends every new, edited and deleted row and then reads the table
// back, whether or not some rows failed.
func (c *DataPointController) Save(ctx context.Context) error {
	defer c.busy(page.IndicatorSave)()

	batch, err := Plan(c.page.Output)
	if err != nil {
		return c.fail("save data points", err)
	}
	applyErr := c.editor.Apply(ctx, batch)

	c.page.EditID = strconv.Itoa(batch.ExperimentID)
	readErr := c.Read(ctx)

	if applyErr != nil {
		return c.fail("save data points", fmt.Errorf("error saving data points of audiogram %d: %w", batch.ExperimentID, applyErr))
	}
	return readErr
}
