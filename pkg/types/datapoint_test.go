package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataPointIsNew(t *testing.T) {
	assert.True(t, DataPoint{ID: NewDataPointID}.IsNew())
	assert.False(t, DataPoint{ID: 12}.IsNew())
}

func TestDataPointValidate(t *testing.T) {
	tests := []struct {
		name    string
		dp      DataPoint
		wantErr error
	}{
		{name: "new point", dp: DataPoint{ID: NewDataPointID}},
		{name: "existing point with code", dp: DataPoint{ID: 3, SPLReferenceMethod: SPLMethodRMS}},
		{name: "existing point with label", dp: DataPoint{ID: 3, SPLReferenceMethod: "peak to peak (PP)"}},
		{name: "zero id", dp: DataPoint{ID: 0}, wantErr: ErrMissingID},
		{name: "unknown method", dp: DataPoint{ID: 3, SPLReferenceMethod: "loud"}, wantErr: ErrInvalidOption},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.dp.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSPLMethodCode(t *testing.T) {
	assert.Equal(t, SPLMethodRMS, SPLMethodCode("root mean squared (RMS)"))
	assert.Equal(t, SPLMethodPP, SPLMethodCode("pp"))
	assert.Equal(t, "", SPLMethodCode(""))
	assert.Equal(t, "other", SPLMethodCode("other"))
}

func TestDataPointDecodesServerRow(t *testing.T) {
	row := `{
		"id": 881,
		"audiogram_experiment_id": 24,
		"testtone_frequency_in_khz": 0.5,
		"sound_pressure_level_in_decibel": 102.3,
		"testtone_duration_in_millisecond": null,
		"sound_pressure_level_reference_id": 2,
		"sound_pressure_level_reference_method": null
	}`
	var dp DataPoint
	require.NoError(t, json.Unmarshal([]byte(row), &dp))
	assert.Equal(t, 881, dp.ID)
	assert.Equal(t, 24, dp.ExperimentID)
	assert.InDelta(t, 0.5, dp.FrequencyKHz, 1e-9)
	assert.InDelta(t, 102.3, dp.SPLDecibel, 1e-9)
	assert.Nil(t, dp.DurationMillis)
	require.NotNil(t, dp.SPLReferenceID)
	assert.Equal(t, 2, *dp.SPLReferenceID)
	assert.Empty(t, dp.SPLReferenceMethod)
}
