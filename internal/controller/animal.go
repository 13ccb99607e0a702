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

// AnimalGateway reads and saves animals.
type AnimalGateway interface {
	Read(ctx context.Context, expID int) (types.Animal, error)
	Save(ctx context.Context, a types.Animal) error
}

// AnimalController edits the animal of an audiogram.
type AnimalController struct {
	base
	gw   AnimalGateway
	view formatter.Animal
}

// NewAnimalController returns a controller for p.
func NewAnimalController(p *page.Page, gw AnimalGateway, view formatter.Animal, log *logging.Logger) *AnimalController {
	return &AnimalController{base: newBase(p, log), gw: gw, view: view}
}

// Read displays the animal of the audiogram in the edit field.
func (c *AnimalController) Read(ctx context.Context) error {
	defer c.busy(page.IndicatorEdit)()

	id, err := c.editID()
	if err != nil {
		return c.fail("read animal", err)
	}
	c.page.Clear()

	a, err := c.gw.Read(ctx, id)
	if err != nil {
		return c.fail("read animal", fmt.Errorf("error reading animal data for audiogram %d: %w", id, err))
	}
	out, err := c.view.Format(ctx, id, a)
	if err != nil {
		return c.fail("read animal", err)
	}
	if err := c.show(out); err != nil {
		return c.fail("read animal", err)
	}
	return nil
}

// Save stores the displayed animal and reads it back.
func (c *AnimalController) Save(ctx context.Context) error {
	defer c.busy(page.IndicatorSave)()

	a, err := c.harvest()
	if err != nil {
		return c.fail("save animal", err)
	}
	if err := c.gw.Save(ctx, a); err != nil {
		return c.fail("save animal", fmt.Errorf("error saving animal data for audiogram %d: %w", a.ExpID, err))
	}

	c.page.EditID = strconv.Itoa(a.ExpID)
	return c.Read(ctx)
}

func (c *AnimalController) harvest() (types.Animal, error) {
	doc, err := c.form()
	if err != nil {
		return types.Animal{}, err
	}
	id, err := recordID(doc, formatter.FieldRecordID)
	if err != nil {
		return types.Animal{}, err
	}
	v, err := fieldValues(doc,
		formatter.FieldAnimalOttID,
		formatter.FieldAnimalIndividualName,
		formatter.FieldAnimalSex,
		formatter.FieldAnimalLiberty,
		formatter.FieldAnimalLifeStage,
		formatter.FieldAnimalAgeInMonths,
		formatter.FieldAnimalCaptivityInMonths,
	)
	if err != nil {
		return types.Animal{}, err
	}
	return types.Animal{
		ExpID:             id,
		OttID:             types.ScalarOf(v[formatter.FieldAnimalOttID]),
		IndividualName:    types.ScalarOf(v[formatter.FieldAnimalIndividualName]),
		Sex:               types.ScalarOf(v[formatter.FieldAnimalSex]),
		Liberty:           types.ScalarOf(v[formatter.FieldAnimalLiberty]),
		LifeStage:         types.ScalarOf(v[formatter.FieldAnimalLifeStage]),
		AgeInMonths:       types.ScalarOf(v[formatter.FieldAnimalAgeInMonths]),
		CaptivityInMonths: types.ScalarOf(v[formatter.FieldAnimalCaptivityInMonths]),
	}, nil
}
