package types

import (
	"fmt"
	"strings"
)

// NewDataPointID marks a data point that has not been persisted yet. Such a
// data point must be created, never updated.
const NewDataPointID = -1

// SPL reference methods.
const (
	SPLMethodRMS = "RMS"
	SPLMethodPP  = "PP"
)

// SPLMethods lists the reference method options with their display labels.
var SPLMethods = []Option{
	{Value: SPLMethodRMS, Label: "root mean squared (RMS)"},
	{Value: SPLMethodPP, Label: "peak to peak (PP)"},
}

// SPLMethodCode maps a stored method value to its code. Older rows store the
// display label ("peak to peak (PP)") rather than the code.
func SPLMethodCode(v string) string {
	for _, m := range SPLMethods {
		if strings.EqualFold(v, m.Value) || v == m.Label {
			return m.Value
		}
	}
	return v
}

// DataPoint is one threshold measurement of an audiogram.
type DataPoint struct {
	ID                 int      `json:"id"`
	ExperimentID       int      `json:"audiogram_experiment_id"`
	FrequencyKHz       float64  `json:"testtone_frequency_in_khz"`
	SPLDecibel         float64  `json:"sound_pressure_level_in_decibel"`
	DurationMillis     *float64 `json:"testtone_duration_in_millisecond"`
	SPLReferenceID     *int     `json:"sound_pressure_level_reference_id"`
	SPLReferenceMethod string   `json:"sound_pressure_level_reference_method"`
}

// IsNew reports whether d carries the not-yet-persisted sentinel id.
func (d DataPoint) IsNew() bool {
	return d.ID == NewDataPointID
}

// Validate checks the fields the server cannot accept. Frequency and SPL
// presence is enforced when a row is parsed, not here.
func (d DataPoint) Validate() error {
	if !d.IsNew() && d.ID <= 0 {
		return fmt.Errorf("%w: data point id %d", ErrMissingID, d.ID)
	}
	if d.SPLReferenceMethod != "" {
		code := SPLMethodCode(d.SPLReferenceMethod)
		if code != SPLMethodRMS && code != SPLMethodPP {
			return fmt.Errorf("%w: reference method %q", ErrInvalidOption, d.SPLReferenceMethod)
		}
	}
	return nil
}
