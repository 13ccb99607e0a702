package controller

import (
	"context"
	"fmt"

	"github.com/mesh-intelligence/audiograms/pkg/types"
)

type fakeOptions struct{}

func (fakeOptions) Species(context.Context) ([]types.Option, error) {
	return []types.Option{{Value: "698406", Label: "Harbour porpoise"}, {Value: "770315", Label: "Human"}}, nil
}

func (fakeOptions) Publications(context.Context) ([]types.Option, error) {
	return []types.Option{{Value: "12", Label: "Kastelein 2002"}}, nil
}

func (fakeOptions) Facilities(context.Context) ([]types.Option, error) {
	return []types.Option{{Value: "3", Label: "Fjord&Bælt"}}, nil
}

func (fakeOptions) MeasurementMethods(context.Context) ([]types.Option, error) {
	return []types.Option{{Value: "1", Label: "behavioral"}}, nil
}

func (fakeOptions) ToneMethods(context.Context) ([]types.Option, error) {
	return []types.Option{{Value: "2", Label: "go/no-go"}}, nil
}

func (fakeOptions) SPLReferences(context.Context) ([]types.Option, error) {
	return []types.Option{{Value: "1", Label: "1 μPa"}, {Value: "2", Label: "20 μPa"}}, nil
}

// fakeDataPoints records every call in order as "op:arg".
type fakeDataPoints struct {
	calls   []string
	rows    []types.DataPoint
	sent    []types.DataPoint
	listErr error
	fail    map[string]error
}

func (f *fakeDataPoints) record(call string) error {
	f.calls = append(f.calls, call)
	return f.fail[call]
}

func (f *fakeDataPoints) List(_ context.Context, expID int) ([]types.DataPoint, error) {
	f.calls = append(f.calls, fmt.Sprintf("list:%d", expID))
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.rows, nil
}

func (f *fakeDataPoints) Create(_ context.Context, dp types.DataPoint) error {
	f.sent = append(f.sent, dp)
	return f.record(fmt.Sprintf("create:%g", dp.FrequencyKHz))
}

func (f *fakeDataPoints) Save(_ context.Context, dp types.DataPoint) error {
	f.sent = append(f.sent, dp)
	return f.record(fmt.Sprintf("save:%d", dp.ID))
}

func (f *fakeDataPoints) Delete(_ context.Context, id int) error {
	return f.record(fmt.Sprintf("delete:%d", id))
}

// mutations returns the recorded calls other than list.
func (f *fakeDataPoints) mutations() []string {
	var out []string
	for _, c := range f.calls {
		if len(c) < 5 || c[:5] != "list:" {
			out = append(out, c)
		}
	}
	return out
}

type fakeAnimals struct {
	animal  types.Animal
	readErr error
	saveErr error
	reads   int
	saved   []types.Animal
}

func (f *fakeAnimals) Read(_ context.Context, expID int) (types.Animal, error) {
	f.reads++
	if f.readErr != nil {
		return types.Animal{}, f.readErr
	}
	a := f.animal
	a.ExpID = expID
	return a, nil
}

func (f *fakeAnimals) Save(_ context.Context, a types.Animal) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, a)
	f.animal = a
	return nil
}

type fakeExperiments struct {
	stored    map[int]types.Experiment
	nextID    int
	saved     []types.Experiment
	deleted   []int
	deleteErr error
}

func (f *fakeExperiments) New() types.Experiment {
	return types.Experiment{ID: types.NewExperimentID}
}

func (f *fakeExperiments) Read(_ context.Context, id int) (types.Experiment, error) {
	e, ok := f.stored[id]
	if !ok {
		return types.Experiment{}, types.ErrNotFound
	}
	return e, nil
}

func (f *fakeExperiments) Save(_ context.Context, e types.Experiment) (int, error) {
	f.saved = append(f.saved, e)
	if e.IsNew() {
		e.ID = f.nextID
	}
	f.stored[e.ID] = e
	return e.ID, nil
}

func (f *fakeExperiments) Delete(_ context.Context, id int) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	delete(f.stored, id)
	return nil
}

type fakePublications struct {
	resolved types.Publication
	stored   map[int]types.Publication
	nextID   int
	saved    []types.Publication
}

func (f *fakePublications) Read(_ context.Context, id int) (types.Publication, error) {
	p, ok := f.stored[id]
	if !ok {
		return types.Publication{}, types.ErrNotFound
	}
	return p, nil
}

func (f *fakePublications) Resolve(_ context.Context, doi string) (types.Publication, error) {
	p := f.resolved
	p.DOI = doi
	return p, nil
}

func (f *fakePublications) Save(_ context.Context, p types.Publication) (int, error) {
	f.saved = append(f.saved, p)
	p.ID = f.nextID
	f.stored[p.ID] = p
	return p.ID, nil
}

type fakeTaxonomy struct {
	lineage types.Lineage
	addErr  error
	added   []types.Lineage
}

func (f *fakeTaxonomy) Retrieve(_ context.Context, latinName string) (types.Lineage, error) {
	if f.lineage.Species == nil {
		return types.Lineage{}, types.ErrNotFound
	}
	return f.lineage, nil
}

func (f *fakeTaxonomy) Add(_ context.Context, l types.Lineage) error {
	if f.addErr != nil {
		return f.addErr
	}
	f.added = append(f.added, l)
	return nil
}
