/* names.go
 * Contains the resolution of typed player names against an event roster.
 * Bot users rarely type a display name exactly, so matching is fuzzy with a
 * preference for exact matches when several candidates rank.
 */

package logic

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Player pairs an identity with its display name for name resolution.
type Player struct {
	UserID      string
	DisplayName string
}

// ResolvePlayerNames matches typed names against the roster and returns the resolved players
// Preconditions: Receives the names as typed and the roster to resolve against
// Postconditions: Returns the resolved players in input order and a slice of the names
// that could not be matched
func ResolvePlayerNames(inputNames []string, roster []Player) ([]Player, []string) {
	var resolved []Player
	var unmatched []string

	// Index lowercase display names for better matching
	lookup := make(map[string]Player)
	var rosterLower []string
	for _, p := range roster {
		lower := strings.ToLower(p.DisplayName)
		lookup[lower] = p
		rosterLower = append(rosterLower, lower)
	}

	for _, name := range inputNames {
		lowerName := strings.ToLower(strings.TrimSpace(name))
		results := fuzzy.RankFind(lowerName, rosterLower)
		if len(results) == 0 {
			unmatched = append(unmatched, name)
			continue
		}
		// Prefer an exact match when several candidates rank
		best := ""
		for i := range results {
			if results[i].Target == lowerName {
				best = results[i].Target
			}
		}
		if best == "" {
			best = results[0].Target
		}
		resolved = append(resolved, lookup[best])
	}
	return resolved, unmatched
}
