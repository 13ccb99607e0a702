package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"clean text unchanged", "Kastelein et al. 2002", "Kastelein et al. 2002"},
		{"latin letter", "MÃ¸hl", "Møhl"},
		{"greek mu", "1 Î¼Pa", "1 μPa"},
		{"twice garbled en dash", "pp. 12Ã¢Â€Â“18", "pp. 12-18"},
		{"once garbled en dash", "pp. 12â€“18", "pp. 12-18"},
		{"curly apostrophe", "itâ€™s", "it's"},
		{"accented vowel", "SÃ©bastien", "S\u00e9bastien"},
		{"correct text unchanged", "Møhl μPa", "Møhl μPa"},
		{"decomposed to composed", "Se\u0301bastien", "S\u00e9bastien"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}
