package types

// Option is one entry of a select field: the submitted value and the label
// shown to the curator.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// OptionsOf builds options whose value and label are the same string.
func OptionsOf(values ...string) []Option {
	opts := make([]Option, 0, len(values))
	for _, v := range values {
		opts = append(opts, Option{Value: v, Label: v})
	}
	return opts
}

// contains reports whether v is "" or one of allowed.
func contains(allowed []string, v string) bool {
	if v == "" {
		return true
	}
	for _, a := range allowed {
		if a == v {
			return true
		}
	}
	return false
}
