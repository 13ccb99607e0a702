package gateway

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/mesh-intelligence/audiograms/pkg/types"
)

// DataPoints lists, creates, saves and deletes the data points of an
// audiogram. Each call handles exactly one data point.
type DataPoints struct {
	client *Client
}

// List returns every data point of experiment expID, ordered by frequency.
func (g *DataPoints) List(ctx context.Context, expID int) ([]types.DataPoint, error) {
	if expID <= 0 {
		return nil, types.ErrMissingID
	}
	var rows []types.DataPoint
	err := g.client.getJSON(ctx, call{
		op:       "read data points",
		endpoint: EndpointReadDataPoints,
		entityID: strconv.Itoa(expID),
		params:   url.Values{"id": {strconv.Itoa(expID)}},
	}, &rows)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []types.DataPoint{}
	}
	return rows, nil
}

// Create inserts dp into its experiment. dp must carry the new sentinel id.
func (g *DataPoints) Create(ctx context.Context, dp types.DataPoint) error {
	if !dp.IsNew() {
		return fmt.Errorf("create data point %d: %w", dp.ID, types.ErrAlreadyPersisted)
	}
	if err := dp.Validate(); err != nil {
		return err
	}
	if dp.ExperimentID <= 0 {
		return types.ErrMissingID
	}
	params := dataPointParams(dp)
	params.Set("audiogram_experiment_id", strconv.Itoa(dp.ExperimentID))
	return g.client.ack(ctx, call{
		op:       "create data point",
		endpoint: EndpointCreateDataPoint,
		entityID: "new",
		params:   params,
		mutates:  true,
	})
}

// Save updates the existing data point dp.
func (g *DataPoints) Save(ctx context.Context, dp types.DataPoint) error {
	if dp.IsNew() {
		return fmt.Errorf("save data point: %w", types.ErrMissingID)
	}
	if err := dp.Validate(); err != nil {
		return err
	}
	params := dataPointParams(dp)
	params.Set("id", strconv.Itoa(dp.ID))
	return g.client.ack(ctx, call{
		op:       "save data point",
		endpoint: EndpointSaveDataPoint,
		entityID: strconv.Itoa(dp.ID),
		params:   params,
		mutates:  true,
	})
}

// Delete removes data point id.
func (g *DataPoints) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return types.ErrMissingID
	}
	return g.client.ack(ctx, call{
		op:       "delete data point",
		endpoint: EndpointDeleteDataPoint,
		entityID: strconv.Itoa(id),
		params:   url.Values{"id": {strconv.Itoa(id)}},
		mutates:  true,
	})
}

// dataPointParams encodes the measurement fields. Absent optional values are
// sent empty, which the server stores as NULL.
func dataPointParams(dp types.DataPoint) url.Values {
	params := url.Values{
		"testtone_frequency_in_khz":             {formatFloat(dp.FrequencyKHz)},
		"sound_pressure_level_in_decibel":       {formatFloat(dp.SPLDecibel)},
		"testtone_duration_in_millisecond":      {""},
		"sound_pressure_level_reference":        {""},
		"sound_pressure_level_reference_method": {types.SPLMethodCode(dp.SPLReferenceMethod)},
	}
	if dp.DurationMillis != nil {
		params.Set("testtone_duration_in_millisecond", formatFloat(*dp.DurationMillis))
	}
	if dp.SPLReferenceID != nil {
		params.Set("sound_pressure_level_reference", strconv.Itoa(*dp.SPLReferenceID))
	}
	return params
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
