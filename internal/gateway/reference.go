package gateway

import (
	"context"

	"github.com/mesh-intelligence/audiograms/pkg/types"
)

// References fetches the option lists for select fields. Lists are read
// fresh on every call; nothing is cached.
type References struct {
	client *Client
}

// Species returns species keyed by ott id, labelled with the English name.
func (g *References) Species(ctx context.Context) ([]types.Option, error) {
	return g.options(ctx, EndpointSpeciesVernacular, "ott_id", "vernacular_name_english")
}

// Publications returns publications labelled with the short citation.
func (g *References) Publications(ctx context.Context) ([]types.Option, error) {
	return g.options(ctx, EndpointPublications, "id", "citation_short")
}

// Facilities returns the research facilities.
func (g *References) Facilities(ctx context.Context) ([]types.Option, error) {
	return g.options(ctx, EndpointFacilities, "id", "name")
}

// MeasurementMethods returns the measurement methods.
func (g *References) MeasurementMethods(ctx context.Context) ([]types.Option, error) {
	return g.options(ctx, EndpointMeasurementMethods, "method_id", "method_name")
}

// ToneMethods returns the test tone form methods.
func (g *References) ToneMethods(ctx context.Context) ([]types.Option, error) {
	return g.options(ctx, EndpointToneMethods, "method_id", "method_name")
}

// SPLReferences returns the sound pressure level references. Labels are
// returned as stored; the formatter repairs their encoding.
func (g *References) SPLReferences(ctx context.Context) ([]types.Option, error) {
	return g.options(ctx, EndpointSPLReferences, "id", "spl_reference_display_label")
}

func (g *References) options(ctx context.Context, endpoint, valueKey, labelKey string) ([]types.Option, error) {
	var rows []map[string]types.Scalar
	err := g.client.getJSON(ctx, call{
		op:       "list " + endpoint,
		endpoint: endpoint,
	}, &rows)
	if err != nil {
		return nil, err
	}
	opts := make([]types.Option, 0, len(rows))
	for _, row := range rows {
		opts = append(opts, types.Option{
			Value: row[valueKey].String(),
			Label: row[labelKey].String(),
		})
	}
	return opts, nil
}
