package compose

import (
	"regexp"
	"strconv"
)

var markerPattern = regexp.MustCompile(`\[(\d+)\]`)

// extractMarkers collects the citation markers the model emitted, in first
// occurrence order without duplicates. Markers outside [1, numExcerpts] are
// dropped; the count of dropped markers feeds the confidence penalty.
func extractMarkers(answer string, numExcerpts int) (valid []int, dropped int) {
	seen := make(map[int]bool)

	for _, match := range markerPattern.FindAllStringSubmatch(answer, -1) {
		n, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		if n < 1 || n > numExcerpts {
			dropped++
			continue
		}
		if seen[n] {
			continue
		}
		seen[n] = true
		valid = append(valid, n)
	}

	return valid, dropped
}
