package gateway

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/audiograms/pkg/types"
)

// unresolvedCitation asks save_publication to look the DOI up on doi.org
// instead of inserting the publication.
const unresolvedCitation = "undefined"

// Publications reads, resolves and saves publications.
type Publications struct {
	client *Client
}

// Read returns publication id.
func (g *Publications) Read(ctx context.Context, id int) (types.Publication, error) {
	if id <= 0 {
		return types.Publication{}, types.ErrMissingID
	}
	var rows []types.Publication
	err := g.client.getJSON(ctx, call{
		op:       "read publication",
		endpoint: EndpointReadPublication,
		entityID: strconv.Itoa(id),
		params:   url.Values{"id": {strconv.Itoa(id)}},
	}, &rows)
	if err != nil {
		return types.Publication{}, err
	}
	return first(rows, "read publication", EndpointReadPublication)
}

// Resolve asks the server to fetch the citations for doi. Nothing is stored;
// a publication whose long citation comes back empty could not be resolved.
func (g *Publications) Resolve(ctx context.Context, doi string) (types.Publication, error) {
	doi = strings.TrimSpace(doi)
	if doi == "" {
		return types.Publication{}, types.ErrMissingDOI
	}
	var p types.Publication
	err := g.client.getJSON(ctx, call{
		op:       "resolve publication",
		endpoint: EndpointSavePublication,
		entityID: doi,
		params: url.Values{
			"doi":            {doi},
			"citation_long":  {unresolvedCitation},
			"citation_short": {unresolvedCitation},
		},
	}, &p)
	if err != nil {
		return types.Publication{}, err
	}
	if p.DOI == "" {
		p.DOI = doi
	}
	return p, nil
}

// Save inserts p and returns the id the server allocated.
func (g *Publications) Save(ctx context.Context, p types.Publication) (int, error) {
	if strings.TrimSpace(p.DOI) == "" {
		return 0, types.ErrMissingDOI
	}
	cl := call{
		op:       "save publication",
		endpoint: EndpointSavePublication,
		entityID: p.DOI,
		params: url.Values{
			"doi":            {p.DOI},
			"citation_long":  {p.CitationLong},
			"citation_short": {p.CitationShort},
		},
		mutates: true,
	}
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
