package gateway

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/audiograms/pkg/types"
)

// Taxonomy looks species up in the Open Tree of Life (through the server)
// and adds their lineage to the database.
type Taxonomy struct {
	client *Client
}

// Retrieve returns the lineage of latinName.
func (g *Taxonomy) Retrieve(ctx context.Context, latinName string) (types.Lineage, error) {
	latinName = strings.TrimSpace(latinName)
	if latinName == "" {
		return types.Lineage{}, types.ErrMissingName
	}
	var l types.Lineage
	err := g.client.getJSON(ctx, call{
		op:       "retrieve species",
		endpoint: EndpointRetrieveSpecies,
		entityID: latinName,
		params:   url.Values{"latin_name": {latinName}},
	}, &l)
	if err != nil {
		return types.Lineage{}, err
	}
	if l.Species == nil {
		return types.Lineage{}, &Failure{Op: "retrieve species", Endpoint: EndpointRetrieveSpecies, Err: types.ErrNotFound}
	}
	return l, nil
}

// Add stores l. The server answers [{"response": bool}, {"response": msg}];
// a false response is returned as a rejection carrying msg.
func (g *Taxonomy) Add(ctx context.Context, l types.Lineage) error {
	if err := l.Validate(); err != nil {
		return err
	}
	params := url.Values{
		"unique_name":     {l.UniqueName},
		"vernacular_name": {l.VernacularName},
	}
	for _, rank := range types.Ranks {
		t := l.Rank(rank)
		params.Set(rank, t.Name)
		params.Set(rank+"_ott_id", strconv.Itoa(t.OttID))
	}

	cl := call{
		op:       "add taxon",
		endpoint: EndpointAddTaxon,
		entityID: l.UniqueName,
		params:   params,
		mutates:  true,
	}
	var rows []map[string]types.Scalar
	if err := g.client.getJSON(ctx, cl, &rows); err != nil {
		return err
	}
	if len(rows) > 0 && rows[0]["response"].String() == "false" {
		msg := "taxon not added"
		if len(rows) > 1 && rows[1]["response"].Valid {
			msg = rows[1]["response"].String()
		}
		return &Failure{Op: cl.op, Endpoint: cl.endpoint, Err: fmt.Errorf("%w: %s", types.ErrRejected, msg)}
	}
	return nil
}
