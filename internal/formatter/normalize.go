package formatter

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/norm"
)

// Characters that legacy rows hold double-encoded, with the text shown in
// their place. Most are shown as themselves; typographic dashes and quotes
// become their ASCII form.
var repairs = buildRepairTable()

func repairTargets() map[rune]string {
	targets := map[rune]string{
		'–': "-", // en dash
		'—': "-", // em dash
		'‘': "'",
		'’': "'",
		'“': `"`,
		'”': `"`,
		'…': "...",
	}
	for r := rune(0xA1); r <= 0xFF; r++ {
		targets[r] = string(r)
	}
	for r := rune(0x391); r <= 0x3C9; r++ {
		targets[r] = string(r)
	}
	return targets
}

// buildRepairTable derives the mis-decoded forms of every target: its UTF-8
// bytes read as Latin-1 or Windows-1252, once and twice over. Twice-garbled
// forms come first so the replacer prefers the longest match.
func buildRepairTable() *strings.Replacer {
	decoders := []*charmap.Charmap{charmap.ISO8859_1, charmap.Windows1252}
	seen := map[string]bool{}
	var twice, once []string

	add := func(dst *[]string, garbled, repl string) {
		if garbled == "" || seen[garbled] || strings.ContainsRune(garbled, utf8.RuneError) {
			return
		}
		seen[garbled] = true
		*dst = append(*dst, garbled, repl)
	}

	targets := repairTargets()
	for r, repl := range targets {
		for _, d1 := range decoders {
			g1, err := d1.NewDecoder().String(string(r))
			if err != nil {
				continue
			}
			for _, d2 := range decoders {
				g2, err := d2.NewDecoder().String(g1)
				if err != nil {
					continue
				}
				add(&twice, g2, repl)
			}
		}
	}
	for r, repl := range targets {
		for _, d := range decoders {
			g, err := d.NewDecoder().String(string(r))
			if err != nil {
				continue
			}
			add(&once, g, repl)
		}
	}
	return strings.NewReplacer(append(twice, once...)...)
}

// Normalize rewrites known double-encoding artifacts ("MÃ¸hl", "Î¼Pa") to
// the characters they stand for and returns the result in NFC. Text without
// artifacts is returned unchanged apart from normalization.
func Normalize(s string) string {
	if s == "" {
		return s
	}
	return norm.NFC.String(repairs.Replace(s))
}
