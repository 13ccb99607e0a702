package controller

import (
	"context"
	"fmt"
	"strconv"

	"github.com/mesh-intelligence/audiograms/internal/formatter"
	"github.com/mesh-intelligence/audiograms/internal/logging"
	"github.com/mesh-intelligence/audiograms/internal/page"
	"github.com/mesh-intelligence/audiograms/pkg/types"
)

// ExperimentGateway reads, saves and deletes experiments.
type ExperimentGateway interface {
	New() types.Experiment
	Read(ctx context.Context, id int) (types.Experiment, error)
	Save(ctx context.Context, e types.Experiment) (int, error)
	Delete(ctx context.Context, id int) error
}

// ExperimentController edits experiment metadata and creates and deletes
// experiments.
type ExperimentController struct {
	base
	gw   ExperimentGateway
	view formatter.Experiment
}

// NewExperimentController returns a controller for p.
func NewExperimentController(p *page.Page, gw ExperimentGateway, view formatter.Experiment, log *logging.Logger) *ExperimentController {
	return &ExperimentController{base: newBase(p, log), gw: gw, view: view}
}

// New displays an empty form for a new experiment.
func (c *ExperimentController) New(ctx context.Context) error {
	defer c.busy(page.IndicatorEdit)()

	c.page.Clear()
	out, err := c.view.Format(ctx, types.NewExperimentID, c.gw.New())
	if err != nil {
		return c.fail("new experiment", err)
	}
	if err := c.show(out); err != nil {
		return c.fail("new experiment", err)
	}
	return nil
}

// Read displays the experiment in the edit field.
func (c *ExperimentController) Read(ctx context.Context) error {
	defer c.busy(page.IndicatorEdit)()

	id, err := c.editID()
	if err != nil {
		return c.fail("read experiment", err)
	}
	c.page.Clear()

	e, err := c.gw.Read(ctx, id)
	if err != nil {
		return c.fail("read experiment", fmt.Errorf("error reading experiment data for audiogram %d: %w", id, err))
	}
	out, err := c.view.Format(ctx, id, e)
	if err != nil {
		return c.fail("read experiment", err)
	}
	if err := c.show(out); err != nil {
		return c.fail("read experiment", err)
	}
	return nil
}

// Save stores the displayed experiment and reads it back. A form rendered
// by New creates the experiment.
func (c *ExperimentController) Save(ctx context.Context) error {
	defer c.busy(page.IndicatorSave)()

	e, err := c.harvest()
	if err != nil {
		return c.fail("save experiment", err)
	}
	return c.store(ctx, e)
}

// Create stores the displayed form as a new experiment, whatever id it was
// rendered for.
func (c *ExperimentController) Create(ctx context.Context) error {
	defer c.busy(page.IndicatorSave)()

	e, err := c.harvest()
	if err != nil {
		return c.fail("create experiment", err)
	}
	e.ID = types.NewExperimentID
	return c.store(ctx, e)
}

func (c *ExperimentController) store(ctx context.Context, e types.Experiment) error {
	id, err := c.gw.Save(ctx, e)
	if err != nil {
		return c.fail("save experiment", fmt.Errorf("error while saving data: %w", err))
	}
	if e.IsNew() {
		c.page.Alert(fmt.Sprintf("Audiogram id %d has been created", id))
		c.log.Info("experiment created", "id", id)
	}
	c.page.EditID = strconv.Itoa(id)
	return c.Read(ctx)
}

// Delete permanently removes the experiment in the edit field.
func (c *ExperimentController) Delete(ctx context.Context) error {
	defer c.busy(page.IndicatorSave)()

	id, err := c.editID()
	if err != nil {
		return c.fail("delete experiment", err)
	}
	if err := c.gw.Delete(ctx, id); err != nil {
		return c.fail("delete experiment", err)
	}
	c.page.Clear()
	c.page.EditID = ""
	c.page.Alert(fmt.Sprintf("Audiogram id %d has been deleted", id))
	c.log.Info("experiment deleted", "id", id)
	return nil
}

func (c *ExperimentController) harvest() (types.Experiment, error) {
	doc, err := c.form()
	if err != nil {
		return types.Experiment{}, err
	}
	id, err := recordID(doc, formatter.FieldRecordID)
	if err != nil {
		return types.Experiment{}, err
	}
	v, err := fieldValues(doc, types.ExperimentFields...)
	if err != nil {
		return types.Experiment{}, err
	}
	e := types.Experiment{ID: id}
	for _, name := range types.ExperimentFields {
		*e.Field(name) = types.ScalarOf(v[name])
	}
	return e, nil
}
