package page

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/audiograms/internal/formatter"
	"github.com/mesh-intelligence/audiograms/pkg/types"
)

type splOptions struct{}

func (splOptions) Species(context.Context) ([]types.Option, error)            { return nil, nil }
func (splOptions) Publications(context.Context) ([]types.Option, error)       { return nil, nil }
func (splOptions) Facilities(context.Context) ([]types.Option, error)         { return nil, nil }
func (splOptions) MeasurementMethods(context.Context) ([]types.Option, error) { return nil, nil }
func (splOptions) ToneMethods(context.Context) ([]types.Option, error)        { return nil, nil }
func (splOptions) SPLReferences(context.Context) ([]types.Option, error) {
	return []types.Option{{Value: "1", Label: "1 μPa"}, {Value: "2", Label: "20 μPa"}}, nil
}

func dataPointDocument(t *testing.T) *Document {
	t.Helper()
	ref := 2
	out, err := formatter.DataPoints{Options: splOptions{}}.Format(context.Background(), 24, []types.DataPoint{
		{ID: 1, FrequencyKHz: 0.5, SPLDecibel: 92, SPLReferenceID: &ref, SPLReferenceMethod: types.SPLMethodRMS},
		{ID: 2, FrequencyKHz: 1, SPLDecibel: 80},
	})
	require.NoError(t, err)
	doc, err := Parse(out)
	require.NoError(t, err)
	return doc
}

func TestDocumentValue(t *testing.T) {
	doc := dataPointDocument(t)

	tests := []struct {
		id   string
		want string
	}{
		{"datapoint_1_testtone_frequency_in_khz", "0.5"},
		{"datapoint_1_sound_pressure_level_in_decibel", "92"},
		{"datapoint_1_testtone_duration_in_millisecond", ""},
		{"datapoint_1_sound_pressure_level_reference", "2"},
		{"datapoint_1_sound_pressure_level_reference_method", "RMS"},
		{"datapoint_2_sound_pressure_level_reference", ""},
		{"datapoint_new_testtone_frequency_in_khz", ""},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			got, err := doc.Value(tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := doc.Value("nope")
	assert.ErrorIs(t, err, ErrNoSuchField)
}

func TestDocumentSetValue(t *testing.T) {
	doc := dataPointDocument(t)

	require.NoError(t, doc.SetValue("datapoint_2_testtone_frequency_in_khz", "2"))
	require.NoError(t, doc.SetValue("datapoint_2_sound_pressure_level_reference", "1"))
	require.NoError(t, doc.SetValue("datapoint_1_sound_pressure_level_reference", ""))

	v, _ := doc.Value("datapoint_2_testtone_frequency_in_khz")
	assert.Equal(t, "2", v)
	v, _ = doc.Value("datapoint_2_sound_pressure_level_reference")
	assert.Equal(t, "1", v)
	v, _ = doc.Value("datapoint_1_sound_pressure_level_reference")
	assert.Equal(t, "", v)

	err := doc.SetValue("datapoint_2_sound_pressure_level_reference", "99")
	assert.ErrorIs(t, err, types.ErrInvalidOption)
	assert.ErrorIs(t, doc.SetValue("nope", "1"), ErrNoSuchField)
}

func TestDocumentTextarea(t *testing.T) {
	doc, err := Parse(formatter.Text("Calibration", "calibration", "a < b"))
	require.NoError(t, err)

	v, err := doc.Value("calibration")
	require.NoError(t, err)
	assert.Equal(t, "a < b", v)

	require.NoError(t, doc.SetValue("calibration", "recalibrated"))
	v, _ = doc.Value("calibration")
	assert.Equal(t, "recalibrated", v)
}

func TestDocumentRowsAndTable(t *testing.T) {
	doc := dataPointDocument(t)

	assert.Equal(t, "experiment_24", doc.Table())
	assert.Equal(t, []Row{
		{ID: "datapoint_1", Class: formatter.ClassDataPoint},
		{ID: "datapoint_2", Class: formatter.ClassDataPoint},
		{ID: "datapoint_new", Class: formatter.ClassDataPointNew},
	}, doc.Rows())
}

func TestDocumentToggle(t *testing.T) {
	doc := dataPointDocument(t)

	deleted, err := doc.Toggle("datapoint_1")
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.True(t, doc.Rows()[0].Deleted())
	assert.True(t, doc.Disabled("datapoint_1_testtone_frequency_in_khz"))
	assert.True(t, doc.Disabled("datapoint_1_sound_pressure_level_reference_method"))
	assert.False(t, doc.Disabled("datapoint_2_testtone_frequency_in_khz"))

	deleted, err = doc.Toggle("datapoint_1")
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.False(t, doc.Rows()[0].Deleted())
	assert.False(t, doc.Disabled("datapoint_1_testtone_frequency_in_khz"))

	_, err = doc.Toggle(formatter.RowNew)
	assert.ErrorIs(t, err, ErrNoSuchRow)
	_, err = doc.Toggle("datapoint_99")
	assert.ErrorIs(t, err, ErrNoSuchRow)
}

func TestDocumentSetValueDisabled(t *testing.T) {
	doc := dataPointDocument(t)
	spl := "datapoint_1_sound_pressure_level_in_decibel"
	method := "datapoint_1_sound_pressure_level_reference_method"

	_, err := doc.Toggle("datapoint_1")
	require.NoError(t, err)

	assert.ErrorIs(t, doc.SetValue(spl, "10"), ErrDisabled)
	assert.ErrorIs(t, doc.SetValue(method, types.SPLMethodPP), ErrDisabled)
	v, _ := doc.Value(spl)
	assert.Equal(t, "92", v)
	v, _ = doc.Value(method)
	assert.Equal(t, types.SPLMethodRMS, v)

	_, err = doc.Toggle("datapoint_1")
	require.NoError(t, err)
	require.NoError(t, doc.SetValue(spl, "10"))
	v, _ = doc.Value(spl)
	assert.Equal(t, "10", v)

	t.Run("read-only input", func(t *testing.T) {
		doc, err := Parse(formatter.InputLongDisabled("Genus", "genus", "Phocoena"))
		require.NoError(t, err)
		assert.ErrorIs(t, doc.SetValue("genus", "Phoca"), ErrDisabled)
		v, _ := doc.Value("genus")
		assert.Equal(t, "Phocoena", v)
	})
}

func TestDocumentRenderRoundTrip(t *testing.T) {
	doc := dataPointDocument(t)
	_, err := doc.Toggle("datapoint_2")
	require.NoError(t, err)
	require.NoError(t, doc.SetValue("datapoint_1_testtone_frequency_in_khz", "0.75"))

	out, err := doc.Render()
	require.NoError(t, err)

	again, err := Parse(out)
	require.NoError(t, err)
	assert.Equal(t, doc.Rows(), again.Rows())
	v, _ := again.Value("datapoint_1_testtone_frequency_in_khz")
	assert.Equal(t, "0.75", v)
	assert.True(t, again.Disabled("datapoint_2_testtone_frequency_in_khz"))
}
