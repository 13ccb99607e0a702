package types

// Publication is a cited paper, keyed by DOI. ID is the server's row id.
type Publication struct {
	ID            int    `json:"id"`
	DOI           string `json:"doi"`
	CitationLong  string `json:"citation_long"`
	CitationShort string `json:"citation_short"`
}

// Resolved reports whether the long citation is known. A publication created
// from a bare DOI is resolved by the server against doi.org.
func (p Publication) Resolved() bool {
	return p.CitationLong != ""
}
