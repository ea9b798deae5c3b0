/* reports.go
 * Contains the read-side methods: status reports for single matches, the
 * event match list, and the rating-submission request flow.
 */

package api

import (
	"fmt"
	"strings"

	"courtside/api/match"
	"courtside/api/permissions"
	"courtside/api/rating"
	"courtside/api/shared"
)

// MatchStatus builds a human-facing status report for a match
// Preconditions: Receives the match id
// Postconditions: Returns a report containing the sides, the lifecycle label and the
// authoritative result when one exists, or an error if the match cannot be fetched
func (a *API) MatchStatus(matchID string) (string, error) {
	m, err := a.Store.GetMatch(matchID)
	if err != nil {
		return "", err
	}

	var res strings.Builder
	res.WriteString(fmt.Sprintf("%s vs %s — %s\n", m.SideAName, m.SideBName, match.StatusLabel(m)))
	if match.CountsForStandings(m) {
		res.WriteString(fmt.Sprintf("Result: %s won %s\n", match.WinnerName(m), FormatScores(match.ResultScores(m))))
	} else if m.Proposal != nil {
		res.WriteString(fmt.Sprintf("Proposed score (unconfirmed): %s\n", FormatScores(m.Proposal.Scores)))
	}
	return res.String(), nil
}

// ListMatches builds one status line per match in the event
// Postconditions: Returns the formatted lines, or an error if the list cannot be fetched
func (a *API) ListMatches() ([]string, error) {
	matches, err := a.Store.ListEventMatches()
	if err != nil {
		return nil, err
	}
	lines := make([]string, 0, len(matches))
	for i := range matches {
		m := &matches[i]
		lines = append(lines, fmt.Sprintf("%s: %s vs %s — %s", m.MatchID, m.SideAName, m.SideBName, match.StatusLabel(m)))
	}
	return lines, nil
}

// RequestRatingSubmission validates a match against the DUPR gate and queues
// it for the next submitter pass
// Preconditions: Receives the acting user and the match id
// Postconditions: Marks the match eligible and returns an allowed decision; returns
// the permission engine's denial or the gate's ineligibility reason as a denial; an
// ineligible verdict is also recorded on the match. Errors are reserved for store
// failures
func (a *API) RequestRatingSubmission(user shared.User, matchID string) (permissions.Decision, error) {
	m, err := a.Store.GetMatch(matchID)
	if err != nil {
		return permissions.Decision{}, err
	}

	decision := permissions.CanRequestRatingSubmission(m, a.ActorFor(user))
	if !decision.Allowed {
		return decision, nil
	}

	participants, err := a.Store.Participants(m)
	if err != nil {
		return permissions.Decision{}, err
	}
	verdict := rating.CheckEligibility(m, participants)
	resubmitting := m.Dupr != nil && m.Dupr.Submitted
	if !verdict.Eligible {
		if !resubmitting {
			if err := a.Store.SetRatingEligibility(matchID, false); err != nil {
				return permissions.Decision{}, err
			}
		}
		return permissions.Deny(verdict.Reason), nil
	}

	// A submitted match re-queued for correction is already a candidate via
	// its needsCorrection flag; eligibility is frozen after submission.
	if !resubmitting {
		if err := a.Store.SetRatingEligibility(matchID, true); err != nil {
			return permissions.Decision{}, err
		}
	}
	return decision, nil
}

// SetRatingEligibility flags a match's rating eligibility as an organizer
// Preconditions: Receives the acting user, the match id and the eligibility verdict
// Postconditions: Records the flag and returns an allowed decision, or the permission
// engine's denial; blocked once the match has been submitted
func (a *API) SetRatingEligibility(user shared.User, matchID string, eligible bool) (permissions.Decision, error) {
	m, err := a.Store.GetMatch(matchID)
	if err != nil {
		return permissions.Decision{}, err
	}

	decision := permissions.CanSetRatingEligibility(m, a.ActorFor(user))
	if !decision.Allowed {
		return decision, nil
	}
	if err := a.Store.SetRatingEligibility(matchID, eligible); err != nil {
		return permissions.Decision{}, err
	}
	return decision, nil
}

// FormatScores renders game scores as "11-9, 9-11, 11-8"
func FormatScores(scores []match.GameScore) string {
	parts := make([]string, 0, len(scores))
	for _, g := range scores {
		parts = append(parts, fmt.Sprintf("%d-%d", g.SideA, g.SideB))
	}
	return strings.Join(parts, ", ")
}
