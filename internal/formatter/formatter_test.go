package formatter

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/audiograms/pkg/types"
)

type fakeOptions struct {
	calls int
	err   error
}

func (f *fakeOptions) list(opts ...types.Option) ([]types.Option, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return opts, nil
}

func (f *fakeOptions) Species(context.Context) ([]types.Option, error) {
	return f.list(types.Option{Value: "698406", Label: "Harbour porpoise"}, types.Option{Value: "770315", Label: "Human"})
}

func (f *fakeOptions) Publications(context.Context) ([]types.Option, error) {
	return f.list(types.Option{Value: "12", Label: "MÃ¸hl 1968"})
}

func (f *fakeOptions) Facilities(context.Context) ([]types.Option, error) {
	return f.list(types.Option{Value: "3", Label: "Fjord&Bælt"})
}

func (f *fakeOptions) MeasurementMethods(context.Context) ([]types.Option, error) {
	return f.list(types.Option{Value: "1", Label: "behavioral"})
}

func (f *fakeOptions) ToneMethods(context.Context) ([]types.Option, error) {
	return f.list(types.Option{Value: "2", Label: "go/no-go"})
}

func (f *fakeOptions) SPLReferences(context.Context) ([]types.Option, error) {
	return f.list(types.Option{Value: "1", Label: "1 Î¼Pa"}, types.Option{Value: "2", Label: "20 Î¼Pa"})
}

func TestPulldownSelection(t *testing.T) {
	values := []string{"air", "water"}

	t.Run("matching value selects exactly one option", func(t *testing.T) {
		out := Pulldown("Medium", "medium", types.ScalarOf("water"), values)
		assert.Equal(t, 1, strings.Count(out, " selected"))
		assert.Contains(t, out, `<option value="water" selected>water</option>`)
	})

	t.Run("null value selects none", func(t *testing.T) {
		out := Pulldown("Medium", "medium", types.Scalar{}, values)
		assert.Equal(t, 0, strings.Count(out, " selected"))
		assert.Contains(t, out, `<option value=""></option>`)
	})

	t.Run("unknown value selects none", func(t *testing.T) {
		out := Pulldown("Medium", "medium", types.ScalarOf("vacuum"), values)
		assert.Equal(t, 0, strings.Count(out, " selected"))
	})
}

func TestPulldownKeyValSelection(t *testing.T) {
	opts := []types.Option{{Value: "1", Label: "one"}, {Value: "2", Label: "two"}}

	out := PulldownKeyVal("Number", "n", types.ScalarInt(2), opts)
	assert.Equal(t, 1, strings.Count(out, " selected"))
	assert.Contains(t, out, `<option value="2" selected>two</option>`)

	out = PulldownKeyVal("Number", "n", types.Scalar{}, opts)
	assert.Equal(t, 0, strings.Count(out, " selected"))
}

func TestHelpersEscape(t *testing.T) {
	tests := []struct {
		name string
		out  string
		want string
	}{
		{"input value", Input("Name", "individual_name", `"Bob" <3`), `value="&#34;Bob&#34; &lt;3"`},
		{"text content", Text("Calibration", "calibration", "a < b & c"), ">a &lt; b &amp; c</textarea>"},
		{"hidden value", Hidden("record_id", `x"y`), `value="x&#34;y"`},
		{"option label", PulldownKeyVal("F", "f", types.Scalar{}, []types.Option{{Value: "1", Label: "A&B"}}), ">A&amp;B</option>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, tt.out, tt.want)
		})
	}
}

func TestInputLongDisabled(t *testing.T) {
	out := InputLongDisabled("Phylum", "phylum", "Chordata")
	assert.Contains(t, out, `id="phylum"`)
	assert.Contains(t, out, " disabled")
	assert.NotContains(t, InputLong("Phylum", "phylum", "Chordata"), "disabled")
}

func TestAnimalFormat(t *testing.T) {
	opts := &fakeOptions{}
	out, err := Animal{Options: opts}.Format(context.Background(), 24, types.Animal{
		ExpID:          24,
		OttID:          types.ScalarInt(698406),
		IndividualName: types.ScalarOf("Freja"),
		Sex:            types.ScalarOf(types.SexFemale),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, opts.calls)
	assert.Contains(t, out, `id="record_id" value="24"`)
	assert.Contains(t, out, `<option value="698406" selected>Harbour porpoise</option>`)
	assert.Contains(t, out, `<option value="female" selected>female</option>`)
	assert.Contains(t, out, `id="individual_name" size="4" placeholder="" value="Freja"`)
	assert.Equal(t, 2, strings.Count(out, " selected"), "species and sex only")
}

func TestFormatOptionFailure(t *testing.T) {
	opts := &fakeOptions{err: errors.New("unreachable")}
	ctx := context.Background()

	_, err := Animal{Options: opts}.Format(ctx, 24, types.Animal{})
	assert.Error(t, err)
	_, err = Experiment{Options: opts}.Format(ctx, 24, types.Experiment{})
	assert.Error(t, err)
	_, err = DataPoints{Options: opts}.Format(ctx, 24, nil)
	assert.Error(t, err)
}

func TestExperimentFormat(t *testing.T) {
	opts := &fakeOptions{}
	out, err := Experiment{Options: opts}.Format(context.Background(), 24, types.Experiment{
		ID:              24,
		CitationID:      types.ScalarInt(12),
		Medium:          types.ScalarOf("water"),
		SedationDetails: types.ScalarOf("Î¼g dose"),
	})
	require.NoError(t, err)

	assert.Equal(t, 5, opts.calls)
	assert.Contains(t, out, `<option value="12" selected>Møhl 1968</option>`)
	assert.Contains(t, out, `<option value="water" selected>water</option>`)
	assert.Contains(t, out, ">μg dose</textarea>")
	for _, name := range types.ExperimentFields {
		assert.Contains(t, out, `id="`+name+`"`, "field %s rendered", name)
	}
}

func TestPublicationFormat(t *testing.T) {
	out, err := Publication{}.Format(context.Background(), 12, types.Publication{
		ID: 12, DOI: "10.1121/1.1", CitationLong: "MÃ¸hl B (1968)", CitationShort: "MÃ¸hl 1968",
	})
	require.NoError(t, err)
	assert.Contains(t, out, `id="doi" size="40" placeholder="" value="10.1121/1.1"`)
	assert.Contains(t, out, ">Møhl B (1968)</textarea>")
	assert.Contains(t, out, ">Møhl 1968</textarea>")
}

func TestTaxonFormat(t *testing.T) {
	l := types.Lineage{
		UniqueName:     "Phocoena phocoena",
		VernacularName: "Harbour porpoise",
		Phylum:         &types.Taxon{Name: "Chordata", OttID: 125642},
		Order:          &types.Taxon{Name: "Cetacea", OttID: 698424},
		Family:         &types.Taxon{Name: "Phocoenidae", OttID: 698416},
		Genus:          &types.Taxon{Name: "Phocoena", OttID: 698411},
		Species:        &types.Taxon{Name: "Phocoena phocoena", OttID: 698406},
	}

	t.Run("missing class is editable", func(t *testing.T) {
		out, err := Taxon{}.Format(context.Background(), "Phocoena phocoena", l)
		require.NoError(t, err)
		assert.Contains(t, out, `id="class" size="40" placeholder="" value="n/a"/>`)
		assert.Contains(t, out, `id="class_ott_id" value="0"`)
		assert.Contains(t, out, `id="phylum" size="40" placeholder="" value="Chordata" disabled/>`)
		assert.Contains(t, out, `id="species_ott_id" value="698406"`)
	})

	t.Run("other rank missing", func(t *testing.T) {
		broken := l
		broken.Genus = nil
		_, err := Taxon{}.Format(context.Background(), "Phocoena phocoena", broken)
		assert.Error(t, err)
	})
}

func TestDataPointsFormat(t *testing.T) {
	dur := 500.0
	ref := 2
	dps := []types.DataPoint{
		{ID: 1, ExperimentID: 24, FrequencyKHz: 0.5, SPLDecibel: 92, SPLReferenceID: &ref, SPLReferenceMethod: "peak to peak (PP)"},
		{ID: 2, ExperimentID: 24, FrequencyKHz: 1, SPLDecibel: 80, DurationMillis: &dur},
	}
	opts := &fakeOptions{}
	out, err := DataPoints{Options: opts}.Format(context.Background(), 24, dps)
	require.NoError(t, err)

	assert.Equal(t, 1, opts.calls)
	assert.Contains(t, out, `<table id="experiment_24" class="audiogram">`)
	assert.Contains(t, out, `<tr id="datapoint_1" class="datapoint">`)
	assert.Contains(t, out, `<tr id="datapoint_2" class="datapoint">`)
	assert.Contains(t, out, `<tr id="datapoint_new" class="datapoint_new">`)
	assert.Contains(t, out, `id="datapoint_1_testtone_frequency_in_khz" class="freq_input" value="0.5"`)
	assert.Contains(t, out, `id="datapoint_2_testtone_duration_in_millisecond" class="ms_input" value="500"`)
	assert.Contains(t, out, `id="datapoint_new_testtone_frequency_in_khz" class="freq_input" value=""`)
	assert.Contains(t, out, `<option value="2" selected>20 μPa</option>`)
	assert.Contains(t, out, `<option value="PP" selected>peak to peak (PP)</option>`)
	assert.Equal(t, 2, strings.Count(out, " selected"), "row 1 reference and method only")
}

func TestDataPointIDs(t *testing.T) {
	assert.Equal(t, "experiment_24", TableID(24))
	assert.Equal(t, "datapoint_7", RowID(7))
	assert.Equal(t, "datapoint_7_sound_pressure_level_in_decibel", FieldID(RowID(7), FieldSPL))
	assert.Equal(t, "datapoint_new_testtone_frequency_in_khz", FieldID(RowNew, FieldFrequency))
}
