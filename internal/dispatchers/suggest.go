package dispatchers

import (
	"sort"
	"strings"
)

// levenshtein returns the case-insensitive edit distance between a and b,
// counted in runes.
func levenshtein(x, y string) int {
	a := []rune(strings.ToLower(x))
	b := []rune(strings.ToLower(y))

	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}

type suggestion struct {
	name     string
	distance int
}

// FindSimilarCommands returns up to maxResults command names within edit
// distance 3 of input, closest first.
func FindSimilarCommands(input string, commands []*Command, maxResults int) []string {
	const maxDistance = 3

	var suggestions []suggestion
	for _, c := range commands {
		dist := levenshtein(input, c.name)
		if dist <= maxDistance && dist > 0 {
			suggestions = append(suggestions, suggestion{name: c.name, distance: dist})
		}
	}

	// Sort by distance (ascending), then alphabetically for stability
	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].distance != suggestions[j].distance {
			return suggestions[i].distance < suggestions[j].distance
		}
		return suggestions[i].name < suggestions[j].name
	})

	if len(suggestions) > maxResults {
		suggestions = suggestions[:maxResults]
	}

	result := make([]string, len(suggestions))
	for i, s := range suggestions {
		result[i] = s.name
	}
	return result
}
