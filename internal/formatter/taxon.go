package formatter

import (
	"context"
	"fmt"
	"strconv"

	"github.com/mesh-intelligence/audiograms/pkg/types"
)

// Taxon form field ids. Each rank also has a hidden "<rank>_ott_id" field.
const (
	FieldVernacularName = "vernacular_name"
	FieldUniqueName     = "unique_name"
)

// OttIDField returns the hidden field id holding the ott id of rank.
func OttIDField(rank string) string {
	return rank + "_ott_id"
}

var rankLabels = map[string]string{
	types.RankPhylum:  "Phylum",
	types.RankClass:   "Class",
	types.RankOrder:   "Order",
	types.RankFamily:  "Family",
	types.RankGenus:   "Genus",
	types.RankSpecies: "Species",
}

// Taxon renders a retrieved lineage for review before it is added.
type Taxon struct{}

// Format renders l as retrieved for latinName. Rank names are read-only
// except a missing class, which the curator may fill in.
func (Taxon) Format(_ context.Context, latinName string, l types.Lineage) (string, error) {
	fields := []string{
		Hidden(FieldRecordID, latinName),
		InputLong("English name", FieldVernacularName, Normalize(l.VernacularName)),
	}
	for _, rank := range types.Ranks {
		t := l.Rank(rank)
		switch {
		case t != nil:
			fields = append(fields,
				InputLongDisabled(rankLabels[rank], rank, t.Name),
				Hidden(OttIDField(rank), strconv.Itoa(t.OttID)))
		case rank == types.RankClass:
			fields = append(fields,
				InputLong(rankLabels[rank], rank, types.MissingClassName),
				Hidden(OttIDField(rank), "0"))
		default:
			return "", fmt.Errorf("lineage of %q has no %s", latinName, rank)
		}
	}
	fields = append(fields, InputLongDisabled("Unique name", FieldUniqueName, l.UniqueName))
	return section("display_taxon_details", fields...), nil
}
