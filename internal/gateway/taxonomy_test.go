package gateway

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/audiograms/pkg/types"
)

func testLineage() types.Lineage {
	return types.Lineage{
		UniqueName:     "Phocoena phocoena",
		VernacularName: "Harbour porpoise",
		Phylum:         &types.Taxon{Name: "Chordata", OttID: 125642},
		Class:          &types.Taxon{Name: "Mammalia", OttID: 244265},
		Order:          &types.Taxon{Name: "Cetacea", OttID: 698424},
		Family:         &types.Taxon{Name: "Phocoenidae", OttID: 698416},
		Genus:          &types.Taxon{Name: "Phocoena", OttID: 698411},
		Species:        &types.Taxon{Name: "Phocoena phocoena", OttID: 698406},
	}
}

func TestTaxonomyRetrieve(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		c, transport := newTestClient(t)
		req := capture(transport, EndpointRetrieveSpecies, http.StatusOK, `{
			"unique_name": "Phocoena phocoena",
			"vernacular_name": "",
			"phylum": {"name": "Chordata", "ott_id": 125642},
			"order": {"name": "Cetacea", "ott_id": 698424},
			"family": {"name": "Phocoenidae", "ott_id": 698416},
			"genus": {"name": "Phocoena", "ott_id": 698411},
			"species": {"name": "Phocoena phocoena", "ott_id": 698406}
		}`)

		l, err := c.Taxonomy().Retrieve(context.Background(), "Phocoena phocoena")
		require.NoError(t, err)
		assert.Equal(t, "Phocoena phocoena", req.URL.Query().Get("latin_name"))
		assert.Nil(t, l.Class)
		require.NotNil(t, l.Species)
		assert.Equal(t, 698406, l.Species.OttID)
	})

	t.Run("no species", func(t *testing.T) {
		c, transport := newTestClient(t)
		capture(transport, EndpointRetrieveSpecies, http.StatusOK, `{"unique_name": "Nonsense"}`)

		_, err := c.Taxonomy().Retrieve(context.Background(), "Nonsense")
		assert.ErrorIs(t, err, types.ErrNotFound)
	})

	t.Run("empty name", func(t *testing.T) {
		c, transport := newTestClient(t)
		_, err := c.Taxonomy().Retrieve(context.Background(), "")
		assert.ErrorIs(t, err, types.ErrMissingName)
		assert.Zero(t, transport.GetTotalCallCount())
	})
}

func TestTaxonomyAdd(t *testing.T) {
	t.Run("accepted", func(t *testing.T) {
		c, transport := newTestClient(t)
		req := capture(transport, EndpointAddTaxon, http.StatusOK, `[{"response": true}, {"response": "ok"}]`)

		require.NoError(t, c.Taxonomy().Add(context.Background(), testLineage()))

		q := req.URL.Query()
		assert.Equal(t, "Phocoena phocoena", q.Get("unique_name"))
		assert.Equal(t, "Harbour porpoise", q.Get("vernacular_name"))
		assert.Equal(t, "Mammalia", q.Get("class"))
		assert.Equal(t, "244265", q.Get("class_ott_id"))
		assert.Equal(t, "698406", q.Get("species_ott_id"))
	})

	t.Run("refused with message", func(t *testing.T) {
		c, transport := newTestClient(t)
		capture(transport, EndpointAddTaxon, http.StatusOK,
			`[{"response": false}, {"response": "species already in database"}]`)

		err := c.Taxonomy().Add(context.Background(), testLineage())
		require.Error(t, err)
		assert.ErrorIs(t, err, types.ErrRejected)
		assert.Contains(t, err.Error(), "species already in database")
	})

	t.Run("incomplete lineage", func(t *testing.T) {
		c, transport := newTestClient(t)
		l := testLineage()
		l.Genus = nil

		err := c.Taxonomy().Add(context.Background(), l)
		assert.ErrorIs(t, err, types.ErrMissingField)
		assert.Zero(t, transport.GetTotalCallCount())
	})
}
