/* engine.go
 * Contains the permission engine: pure functions that decide whether a given
 * actor may perform each score-lifecycle action on a match. Every check is
 * evaluated fresh from the match snapshot it is handed; nothing is cached
 * between calls, so callers can (and should) re-evaluate inside the same
 * transaction that performs the mutation.
 */

package permissions

import (
	"courtside/api/match"
	"courtside/api/shared"
)

// CanProposeScore decides whether the actor may enter a score proposal
// Preconditions: Receives the match snapshot, the acting identity and the event context
// Postconditions: Returns an allowed decision, or a denial carrying the first failed
// precondition's reason
func CanProposeScore(m *match.Match, actor Actor, evt EventContext) Decision {
	if m.ScoreLocked {
		return Deny(ReasonScoreLocked)
	}
	if d := statusPermitsScoreEntry(m); !d.Allowed {
		return d
	}
	if m.Proposal != nil {
		return Deny(ReasonAlreadyProposed)
	}
	if !match.IsParticipant(m, actor.UserID) {
		return Deny(ReasonNotParticipant)
	}
	// Anti-self-reporting: in a regulated event an organizer who plays in the
	// match may not initiate its score, only their opponent may.
	if actor.IsOrganizer && selfReportRuleApplies(evt, m.CreatedAt) {
		return Deny(ReasonOrganizerSelfReport)
	}
	return Allow()
}

// CanSignScore decides whether the actor may countersign the current proposal
// Preconditions: Receives the match snapshot and the acting identity
// Postconditions: Returns an allowed decision, or a denial carrying the first failed
// precondition's reason
func CanSignScore(m *match.Match, actor Actor) Decision {
	return canCountersign(m, actor)
}

// CanDisputeScore decides whether the actor may dispute the current proposal.
// The preconditions are identical to signing; only the resulting transition differs
func CanDisputeScore(m *match.Match, actor Actor) Decision {
	return canCountersign(m, actor)
}

// canCountersign holds the shared sign/dispute preconditions
func canCountersign(m *match.Match, actor Actor) Decision {
	if m.ScoreLocked {
		return Deny(ReasonScoreLocked)
	}
	if m.Proposal == nil || m.Proposal.Status != match.ProposalProposed {
		return Deny(ReasonNoProposal)
	}
	if actor.UserID == m.Proposal.EnteredByUserID {
		return Deny(ReasonSignOwnProposal)
	}
	if !match.IsParticipant(m, actor.UserID) {
		return Deny(ReasonNotParticipant)
	}
	if !match.AreOpposing(m, actor.UserID, m.Proposal.EnteredByUserID) {
		return Deny(ReasonNotOpposingSide)
	}
	return Allow()
}

// CanFinalizeScore decides whether the actor may write the official result.
// Organizers may always finalize, overwriting any existing proposal; the role
// check itself is a fact supplied by the caller
func CanFinalizeScore(m *match.Match, actor Actor) Decision {
	if !actor.IsOrganizer {
		return Deny(ReasonNotOrganizer)
	}
	return Allow()
}

// CanCorrectScore decides whether the actor may correct an official result
// Preconditions: Receives the match snapshot and the acting identity
// Postconditions: Allowed only for organizers and only once an official result exists
func CanCorrectScore(m *match.Match, actor Actor) Decision {
	if !actor.IsOrganizer {
		return Deny(ReasonNotOrganizer)
	}
	if m.Official == nil {
		return Deny(ReasonNoOfficialResult)
	}
	return Allow()
}

// CanDirectFinalize decides whether an organizer may enter a result directly
// as official, bypassing the propose/sign workflow. Only available in
// regulated events, and only to organizers who do not play in the match:
// a non-participant organizer cannot be self-reporting
func CanDirectFinalize(m *match.Match, actor Actor, evt EventContext) Decision {
	if !actor.IsOrganizer {
		return Deny(ReasonNotOrganizer)
	}
	if evt.Mode == shared.RegulationNone {
		return Deny(ReasonNotRegulatedEvent)
	}
	if match.IsParticipant(m, actor.UserID) && selfReportRuleApplies(evt, m.CreatedAt) {
		return Deny(ReasonOrganizerSelfReport)
	}
	if m.ScoreLocked {
		return Deny(ReasonScoreLocked)
	}
	return statusPermitsScoreEntry(m)
}

// CanRequestRatingSubmission decides whether the actor may queue this match
// for submission to the rating authority
func CanRequestRatingSubmission(m *match.Match, actor Actor) Decision {
	if !actor.IsOrganizer {
		return Deny(ReasonNotOrganizer)
	}
	if m.Official == nil {
		return Deny(ReasonResultNotOfficial)
	}
	if m.Status != match.StatusCompleted {
		return Deny(ReasonMatchNotCompleted)
	}
	if m.ScoreState != match.ScoreStateOfficial && m.ScoreState != match.ScoreStateSubmitted {
		return Deny(ReasonResultNotOfficial)
	}
	if m.Dupr != nil {
		if m.Dupr.Submitted && !m.Dupr.NeedsCorrection {
			return Deny(ReasonAlreadySubmitted)
		}
		if m.Dupr.Eligible != nil && !*m.Dupr.Eligible {
			return Deny(ReasonMarkedIneligible)
		}
	}
	return Allow()
}

// CanSetRatingEligibility decides whether the actor may flag the match's
// rating eligibility. Blocked once the match has been submitted
func CanSetRatingEligibility(m *match.Match, actor Actor) Decision {
	if !actor.IsOrganizer {
		return Deny(ReasonNotOrganizer)
	}
	if m.Dupr != nil && m.Dupr.Submitted {
		return Deny(ReasonEligibilityAfterSubmit)
	}
	return Allow()
}

// statusPermitsScoreEntry rejects score entry on matches whose status forbids it
func statusPermitsScoreEntry(m *match.Match) Decision {
	switch m.Status {
	case match.StatusCompleted:
		return Deny(ReasonMatchCompleted)
	case match.StatusCancelled:
		return Deny(ReasonMatchCancelled)
	}
	return Allow()
}

// selfReportRuleApplies reports whether the anti-self-reporting rule binds a
// match created at the given time. The event must be rating-regulated and the
// match must fall inside the configured rule window; callers have already
// established that the organizer plays in the match
func selfReportRuleApplies(evt EventContext, createdAt int64) bool {
	if evt.Mode == shared.RegulationNone {
		return false
	}
	if evt.SelfReportRuleSince.IsZero() {
		return true
	}
	return createdAt >= evt.SelfReportRuleSince.Unix()
}
