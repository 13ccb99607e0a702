package controller

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/audiograms/internal/formatter"
	"github.com/mesh-intelligence/audiograms/internal/page"
	"github.com/mesh-intelligence/audiograms/pkg/types"
)

func TestPublicationCreateAndSave(t *testing.T) {
	gw := &fakePublications{
		resolved: types.Publication{CitationLong: "Kastelein RA et al. (2002)", CitationShort: "Kastelein 2002"},
		stored:   map[int]types.Publication{},
		nextID:   13,
	}
	p := page.New()
	c := NewPublicationController(p, gw, nil)
	ctx := context.Background()

	p.EditID = "10.1121/1.1"
	require.NoError(t, c.Create(ctx))
	v, _ := p.Output.Value(formatter.FieldCitationShort)
	assert.Equal(t, "Kastelein 2002", v)
	assert.Empty(t, gw.saved, "resolving stores nothing")

	require.NoError(t, p.Output.SetValue(formatter.FieldCitationShort, "Kastelein et al. 2002"))
	require.NoError(t, c.Save(ctx))

	require.Len(t, gw.saved, 1)
	assert.Equal(t, "10.1121/1.1", gw.saved[0].DOI)
	assert.Equal(t, "Kastelein et al. 2002", gw.saved[0].CitationShort)
	assert.Equal(t, "13", p.EditID)
	v, _ = p.Output.Value(formatter.FieldRecordID)
	assert.Equal(t, "13", v)
}

func TestPublicationCreateUnresolved(t *testing.T) {
	gw := &fakePublications{stored: map[int]types.Publication{}}
	p := page.New()
	c := NewPublicationController(p, gw, nil)
	p.EditID = "10.0/none"

	err := c.Create(context.Background())
	assert.ErrorIs(t, err, types.ErrNotFound)
	assert.Nil(t, p.Output)
	require.Len(t, p.Alerts, 1)
	assert.Contains(t, p.Alerts[0], "Is the DOI correct?")
	assert.False(t, p.Busy(page.IndicatorEdit))
}

func TestPublicationCreateMissingDOI(t *testing.T) {
	p := page.New()
	c := NewPublicationController(p, &fakePublications{}, nil)

	assert.ErrorIs(t, c.Create(context.Background()), types.ErrMissingDOI)
	assert.Equal(t, []string{"No DOI given"}, p.Alerts)
}
