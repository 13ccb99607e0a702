package formatter

import (
	"context"
	"strconv"

	"github.com/mesh-intelligence/audiograms/pkg/types"
)

// Publication form field ids.
const (
	FieldDOI           = "doi"
	FieldCitationLong  = "citation_long"
	FieldCitationShort = "citation_short"
)

// Publication renders the publication form.
type Publication struct{}

// Format renders p. id is 0 for a publication resolved from a DOI but not
// stored yet.
func (Publication) Format(_ context.Context, id int, p types.Publication) (string, error) {
	return section("display_publication_details",
		Hidden(FieldRecordID, strconv.Itoa(id)),
		InputLong("DOI", FieldDOI, p.DOI),
		Text("Citation long", FieldCitationLong, Normalize(p.CitationLong)),
		Text("Citation short", FieldCitationShort, Normalize(p.CitationShort)),
	), nil
}
