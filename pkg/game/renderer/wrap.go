package renderer

import "strings"

// Wrap breaks text into lines no wider than maxWidth as reported by measure.
// Newlines in text always break. A single word wider than maxWidth gets a
// line of its own.
func Wrap(text string, maxWidth float64, measure func(string) float64) []string {
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			candidate := line + " " + w
			if measure(candidate) > maxWidth {
				lines = append(lines, line)
				line = w
				continue
			}
			line = candidate
		}
		lines = append(lines, line)
	}
	return lines
}

// RuneWidth measures text in terminal cells, one per rune
func RuneWidth(s string) float64 {
	return float64(len([]rune(s)))
}
