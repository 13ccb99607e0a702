package controller

import (
	"fmt"

	"github.com/mesh-intelligence/audiograms/internal/formatter"
	"github.com/mesh-intelligence/audiograms/internal/gateway"
	"github.com/mesh-intelligence/audiograms/internal/logging"
	"github.com/mesh-intelligence/audiograms/internal/page"
)

// Page kinds served by Factory.For.
const (
	KindAnimal      = "animal"
	KindExperiment  = "experiment"
	KindDataPoints  = "datapoints"
	KindPublication = "publication"
	KindTaxon       = "taxon"
)

// Factory wires controllers to the gateways and formatters of one client.
type Factory struct {
	Client *gateway.Client
	Log    *logging.Logger
}

// Animal returns the animal controller for p.
func (f Factory) Animal(p *page.Page) *AnimalController {
	view := formatter.Animal{Options: f.Client.References()}
	return NewAnimalController(p, f.Client.Animals(), view, f.log(KindAnimal))
}

// Experiment returns the experiment controller for p.
func (f Factory) Experiment(p *page.Page) *ExperimentController {
	view := formatter.Experiment{Options: f.Client.References()}
	return NewExperimentController(p, f.Client.Experiments(), view, f.log(KindExperiment))
}

// DataPoints returns the data point controller for p.
func (f Factory) DataPoints(p *page.Page) *DataPointController {
	view := formatter.DataPoints{Options: f.Client.References()}
	return NewDataPointController(p, f.Client.DataPoints(), view, f.log(KindDataPoints))
}

// Publication returns the publication controller for p.
func (f Factory) Publication(p *page.Page) *PublicationController {
	return NewPublicationController(p, f.Client.Publications(), f.log(KindPublication))
}

// Taxonomy returns the taxonomy controller for p.
func (f Factory) Taxonomy(p *page.Page) *TaxonomyController {
	return NewTaxonomyController(p, f.Client.Taxonomy(), f.log(KindTaxon))
}

// For returns the controller of the given page kind.
func (f Factory) For(kind string, p *page.Page) (Controller, error) {
	switch kind {
	case KindAnimal:
		return f.Animal(p), nil
	case KindExperiment:
		return f.Experiment(p), nil
	case KindDataPoints:
		return f.DataPoints(p), nil
	case KindPublication:
		return f.Publication(p), nil
	case KindTaxon:
		return f.Taxonomy(p), nil
	default:
		return nil, fmt.Errorf("unknown page kind %q", kind)
	}
}

func (f Factory) log(kind string) *logging.Logger {
	if f.Log == nil {
		return logging.Nop()
	}
	return f.Log.With("page", kind)
}
