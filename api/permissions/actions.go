/* actions.go
 * Contains the AvailableActions aggregate: one decision per action plus the
 * lifecycle label, evaluated in a single pass. This is the struct the bot and
 * any UI consume to show or hide controls; composing the individual checks
 * here means consumers never need to call the engine piecemeal.
 */

package permissions

import "courtside/api/match"

// AvailableActions holds the decision for every score-lifecycle action a
// given actor could attempt on a match, plus the human-facing status label.
type AvailableActions struct {
	Propose                 Decision
	Sign                    Decision
	Dispute                 Decision
	Finalize                Decision
	Correct                 Decision
	DirectFinalize          Decision
	RequestRatingSubmission Decision
	SetRatingEligibility    Decision

	StatusLabel string
}

// ActionsFor evaluates every permission check for the actor against a single
// match snapshot
// Preconditions: Receives the match snapshot, the acting identity and the event context
// Postconditions: Returns the full set of decisions; evaluating twice on the same
// snapshot yields identical results
func ActionsFor(m *match.Match, actor Actor, evt EventContext) AvailableActions {
	return AvailableActions{
		Propose:                 CanProposeScore(m, actor, evt),
		Sign:                    CanSignScore(m, actor),
		Dispute:                 CanDisputeScore(m, actor),
		Finalize:                CanFinalizeScore(m, actor),
		Correct:                 CanCorrectScore(m, actor),
		DirectFinalize:          CanDirectFinalize(m, actor, evt),
		RequestRatingSubmission: CanRequestRatingSubmission(m, actor),
		SetRatingEligibility:    CanSetRatingEligibility(m, actor),
		StatusLabel:             match.StatusLabel(m),
	}
}
