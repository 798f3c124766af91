package text

import "strings"

// Measurer reports the rendered width of a string.
type Measurer interface {
	Measure(s string) float64
}

// Wrap splits s on whitespace and greedily packs the words into lines no
// wider than maxWidth. A word that is wider than maxWidth on its own is kept
// whole on a line of its own.
func Wrap(s string, maxWidth float64, m Measurer) []string {
	var lines []string
	current := ""
	for _, word := range strings.Fields(s) {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if m.Measure(candidate) <= maxWidth {
			current = candidate
			continue
		}
		if current == "" {
			lines = append(lines, word)
			continue
		}
		lines = append(lines, current)
		current = word
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}
