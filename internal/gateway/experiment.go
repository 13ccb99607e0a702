package gateway

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/mesh-intelligence/audiograms/pkg/types"
)

// Experiments reads, saves, creates and deletes audiogram experiments.
type Experiments struct {
	client *Client
}

// New returns an empty experiment to be filled in and created.
func (g *Experiments) New() types.Experiment {
	return types.Experiment{ID: types.NewExperimentID}
}

// Read returns the metadata of experiment id.
func (g *Experiments) Read(ctx context.Context, id int) (types.Experiment, error) {
	if id <= 0 {
		return types.Experiment{}, types.ErrMissingID
	}
	var rows []types.Experiment
	err := g.client.getJSON(ctx, call{
		op:       "read experiment",
		endpoint: EndpointReadExperiment,
		entityID: strconv.Itoa(id),
		params:   url.Values{"id": {strconv.Itoa(id)}},
	}, &rows)
	if err != nil {
		return types.Experiment{}, err
	}
	e, err := first(rows, "read experiment", EndpointReadExperiment)
	if err != nil {
		return types.Experiment{}, err
	}
	e.ID = id
	return e, nil
}

// Save writes e and returns its authoritative id. An experiment with id 0 is
// created; the server allocates and returns the new id.
func (g *Experiments) Save(ctx context.Context, e types.Experiment) (int, error) {
	if err := e.Validate(); err != nil {
		return 0, err
	}
	params := url.Values{"id": {strconv.Itoa(e.ID)}}
	for _, name := range types.ExperimentFields {
		params.Set(name, e.Field(name).String())
	}

	cl := call{
		op:       "save experiment",
		endpoint: EndpointSaveExperiment,
		entityID: strconv.Itoa(e.ID),
		params:   params,
		mutates:  true,
	}
	if !e.IsNew() {
		return e.ID, g.client.ack(ctx, cl)
	}

	cl.op = "create experiment"
	cl.entityID = "new"
	var rows []map[string]types.Scalar
	if err := g.client.getJSON(ctx, cl, &rows); err != nil {
		return 0, err
	}
	id, err := insertedID(rows)
	if err != nil {
		return 0, &Failure{Op: cl.op, Endpoint: cl.endpoint, Err: err}
	}
	return id, nil
}

// Delete permanently removes experiment id. The server also removes the
// animal, facility and publication rows that only this experiment used.
func (g *Experiments) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return types.ErrMissingID
	}
	err := g.client.ack(ctx, call{
		op:       "delete experiment",
		endpoint: EndpointDeleteExperiment,
		entityID: strconv.Itoa(id),
		params:   url.Values{"id": {strconv.Itoa(id)}},
		mutates:  true,
	})
	if err != nil {
		return fmt.Errorf("error while attempting to delete audiogram %d: %w", id, err)
	}
	return nil
}
