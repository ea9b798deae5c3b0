/* models.go
 * Contains the decision type, actor context and reason strings used by the
 * permission engine. Reasons are part of the caller-facing contract: they are
 * surfaced verbatim to end users and asserted on by tests, so they live here
 * as named constants rather than ad hoc strings.
 */

package permissions

import (
	"time"

	"courtside/api/shared"
)

// Decision is the outcome of a permission check. Business-rule failures are
// decisions, not errors; callers must check Allowed before mutating.
type Decision struct {
	Allowed bool
	Reason  string // populated when not allowed
}

// Allow returns an allowed decision
func Allow() Decision {
	return Decision{Allowed: true}
}

// Deny returns a denied decision carrying the given reason
func Deny(reason string) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// Actor is the acting identity as supplied by the caller. The engine never
// looks up roles itself; whether the actor organizes this event is a fact the
// caller already knows.
type Actor struct {
	UserID      string
	IsOrganizer bool
}

// EventContext carries the event-level facts a permission decision needs.
type EventContext struct {
	Mode shared.RegulationMode

	// SelfReportRuleSince controls whether the anti-self-reporting rule
	// applies retroactively. The zero value applies the rule to every match;
	// a non-zero cutoff exempts matches created before it.
	SelfReportRuleSince time.Time
}

// Reason strings surfaced to end users. Stable; the bot and UI show these verbatim.
const (
	ReasonScoreLocked         = "the score for this match has been locked by an organizer"
	ReasonMatchCompleted      = "this match has already been completed"
	ReasonMatchCancelled      = "this match has been cancelled"
	ReasonAlreadyProposed     = "a score has already been proposed for this match"
	ReasonNotParticipant      = "only a player on this match can report its score"
	ReasonOrganizerSelfReport = "organizers cannot enter a score for a match they play in"

	ReasonNoProposal      = "there is no proposed score awaiting confirmation"
	ReasonSignOwnProposal = "cannot sign your own score proposal"
	ReasonNotOpposingSide = "only a player on the opposing side can confirm or dispute this score"

	ReasonNotOrganizer     = "only an event organizer can perform this action"
	ReasonNoOfficialResult = "there is no official result to correct"

	ReasonNotRegulatedEvent      = "direct finalization is only available in rating-regulated events"
	ReasonMatchNotCompleted      = "the match must be completed before its result can be submitted for rating"
	ReasonResultNotOfficial      = "only an official result can be submitted for rating"
	ReasonAlreadySubmitted       = "this match has already been submitted to the rating authority"
	ReasonMarkedIneligible       = "this match has been marked ineligible for rating submission"
	ReasonEligibilityAfterSubmit = "rating eligibility cannot be changed after submission"
)
