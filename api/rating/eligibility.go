/* eligibility.go
 * Contains the DUPR eligibility gate: structural validation of an officially
 * resolved match against the rating authority's requirements. The gate only
 * decides; the network submission itself is behind the Client interface in
 * submitter.go.
 */

package rating

import (
	"fmt"

	"courtside/api/match"
)

// MinGameScore is the minimum points at least one side must have reached in
// at least one game for DUPR to accept the match.
const MinGameScore = 6

// Participant is one resolved player on a match, including doubles partners.
type Participant struct {
	UserID      string
	DisplayName string
	Side        match.Side
	DuprID      string // external rating identifier, empty if the player has none
}

// Verdict is the eligibility gate's outcome. Failures are decisions carrying
// a user-facing reason, never errors.
type Verdict struct {
	Eligible bool
	Reason   string
}

func eligible() Verdict {
	return Verdict{Eligible: true}
}

func ineligible(reason string) Verdict {
	return Verdict{Eligible: false, Reason: reason}
}

// CheckEligibility validates a match against DUPR's structural requirements
// Preconditions: Receives the match snapshot and the full roster of resolved
// participants, both players of each side in doubles
// Postconditions: Returns an eligible verdict, or an ineligible verdict carrying the
// first failed requirement's reason
func CheckEligibility(m *match.Match, participants []Participant) Verdict {
	if m.Status != match.StatusCompleted {
		return ineligible("match is not completed")
	}
	scores := match.ResultScores(m)
	if len(scores) == 0 {
		return ineligible("match has no recorded scores")
	}
	if m.Dupr != nil && m.Dupr.Submitted && !m.Dupr.NeedsCorrection {
		return ineligible("match has already been submitted to DUPR")
	}
	for i, g := range scores {
		if g.SideA == g.SideB {
			return ineligible(fmt.Sprintf("tie not allowed: game %d is tied at %d-%d", i+1, g.SideA, g.SideB))
		}
	}
	if !anyGameReachesThreshold(scores) {
		return ineligible(fmt.Sprintf("insufficient score: no side reached %d points in any game", MinGameScore))
	}
	for _, p := range participants {
		if p.DuprID == "" {
			return ineligible(fmt.Sprintf("%s does not have a DUPR id", p.DisplayName))
		}
	}
	return eligible()
}

// anyGameReachesThreshold checks that at least one side scored at or above
// the DUPR minimum in at least one game
func anyGameReachesThreshold(scores []match.GameScore) bool {
	for _, g := range scores {
		if g.SideA >= MinGameScore || g.SideB >= MinGameScore {
			return true
		}
	}
	return false
}
