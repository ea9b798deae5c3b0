/* scores.go
 * Contains the parsing of player-entered score lines into game scores. Score
 * lines arrive from the bot as space separated games, each "points-points"
 * from the reporter's perspective, e.g. "11-9 9-11 11-8".
 */

package logic

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-andiamo/splitter"

	"courtside/api/match"
)

// ParseScoreLine parses a score line into game scores
// Preconditions: Receives a string of space separated games in the form "a-b"
// Postconditions: Returns the parsed game scores with the reporter's points first in
// each game, or an error describing the first malformed token
func ParseScoreLine(line string) ([]match.GameScore, error) {
	spaceSplitter, err := splitter.NewSplitter(' ', splitter.DoubleQuotes)
	if err != nil {
		return nil, fmt.Errorf("failed to initialise score splitter: %w", err)
	}
	tokens, err := spaceSplitter.Split(strings.TrimSpace(line))
	if err != nil {
		return nil, fmt.Errorf("failed to split score line: %w", err)
	}

	var scores []match.GameScore
	for _, token := range tokens {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		parts := strings.Split(token, "-")
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid game score %q, expected the form 11-9", token)
		}
		mine, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil || mine < 0 {
			return nil, fmt.Errorf("invalid points value %q in game score %q", parts[0], token)
		}
		theirs, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil || theirs < 0 {
			return nil, fmt.Errorf("invalid points value %q in game score %q", parts[1], token)
		}
		scores = append(scores, match.GameScore{SideA: mine, SideB: theirs})
	}
	if len(scores) == 0 {
		return nil, fmt.Errorf("no game scores found in %q", line)
	}
	return scores, nil
}

// OrientScores converts reporter-perspective scores into side A/side B order
// Preconditions: Receives scores with the reporter's points in the SideA slot and the
// side the reporter occupies
// Postconditions: Returns the scores with SideA holding side A's points; scores are
// swapped when the reporter plays on side B
func OrientScores(scores []match.GameScore, reporterSide match.Side) []match.GameScore {
	if reporterSide != match.SideB {
		return scores
	}
	oriented := make([]match.GameScore, len(scores))
	for i, g := range scores {
		oriented[i] = match.GameScore{SideA: g.SideB, SideB: g.SideA}
	}
	return oriented
}
