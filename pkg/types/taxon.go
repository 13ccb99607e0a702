package types

import "fmt"

// Taxonomic ranks stored for a species, from the root down.
const (
	RankPhylum  = "phylum"
	RankClass   = "class"
	RankOrder   = "order"
	RankFamily  = "family"
	RankGenus   = "genus"
	RankSpecies = "species"
)

// Ranks lists the stored ranks in lineage order.
var Ranks = []string{RankPhylum, RankClass, RankOrder, RankFamily, RankGenus, RankSpecies}

// MissingClassName is shown for lineages that have no class rank.
const MissingClassName = "n/a"

// Taxon is one named rank of a lineage with its Open Tree of Life id.
type Taxon struct {
	Name  string `json:"name"`
	OttID int    `json:"ott_id"`
}

// Lineage is a species' taxonomy as retrieved from the Open Tree of Life.
type Lineage struct {
	UniqueName     string `json:"unique_name"`
	VernacularName string `json:"vernacular_name"`
	Phylum         *Taxon `json:"phylum"`
	Class          *Taxon `json:"class"`
	Order          *Taxon `json:"order"`
	Family         *Taxon `json:"family"`
	Genus          *Taxon `json:"genus"`
	Species        *Taxon `json:"species"`
}

// Rank returns the taxon stored for rank, or nil.
func (l *Lineage) Rank(rank string) *Taxon {
	switch rank {
	case RankPhylum:
		return l.Phylum
	case RankClass:
		return l.Class
	case RankOrder:
		return l.Order
	case RankFamily:
		return l.Family
	case RankGenus:
		return l.Genus
	case RankSpecies:
		return l.Species
	default:
		return nil
	}
}

// SetRank stores t for rank. Unknown ranks are ignored.
func (l *Lineage) SetRank(rank string, t *Taxon) {
	switch rank {
	case RankPhylum:
		l.Phylum = t
	case RankClass:
		l.Class = t
	case RankOrder:
		l.Order = t
	case RankFamily:
		l.Family = t
	case RankGenus:
		l.Genus = t
	case RankSpecies:
		l.Species = t
	}
}

// Validate requires every rank name, the unique name and the vernacular
// name before a lineage is added to the database.
func (l Lineage) Validate() error {
	if l.UniqueName == "" || l.VernacularName == "" {
		return ErrMissingField
	}
	for _, rank := range Ranks {
		t := l.Rank(rank)
		if t == nil || t.Name == "" {
			return fmt.Errorf("%w: %s", ErrMissingField, rank)
		}
	}
	return nil
}
