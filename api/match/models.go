/* models.go
 * Contains the Match record and its sub-records as stored in the matches collection.
 * The score workflow state (ScoreState) is tracked independently of the match
 * status so that a disputed score does not clobber scheduling information.
 */

package match

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Status is the scheduling/administrative state of a match.
type Status string

const (
	StatusScheduled           Status = "scheduled"
	StatusInProgress          Status = "in_progress"
	StatusPendingConfirmation Status = "pending_confirmation"
	StatusCompleted           Status = "completed"
	StatusDisputed            Status = "disputed"
	StatusCancelled           Status = "cancelled"
	StatusForfeit             Status = "forfeit"
	StatusBye                 Status = "bye"
)

// ScoreState tracks the score-specific workflow, independent of Status.
type ScoreState string

const (
	ScoreStateNone      ScoreState = "none"
	ScoreStateProposed  ScoreState = "proposed"
	ScoreStateSigned    ScoreState = "signed"
	ScoreStateDisputed  ScoreState = "disputed"
	ScoreStateOfficial  ScoreState = "official"
	ScoreStateSubmitted ScoreState = "submitted_to_rating_authority"
)

// ProposalStatus is the state of a player-entered score proposal.
type ProposalStatus string

const (
	ProposalProposed ProposalStatus = "proposed"
	ProposalSigned   ProposalStatus = "signed"
	ProposalDisputed ProposalStatus = "disputed"
)

// GameScore holds the points each side scored in a single game.
type GameScore struct {
	SideA int `bson:"sideA"`
	SideB int `bson:"sideB"`
}

// ScoreProposal is a player-submitted score awaiting acknowledgment from the
// opposing side. It is provisional and never authoritative on its own.
type ScoreProposal struct {
	EnteredByUserID string         `bson:"enteredByUserId,omitempty"`
	Scores          []GameScore    `bson:"scores,omitempty"`
	Status          ProposalStatus `bson:"status,omitempty"`
	Locked          bool           `bson:"locked,omitempty"`
}

// OfficialResult is the organizer-finalized, authoritative result. Player
// actions never write it.
type OfficialResult struct {
	WinnerID   string      `bson:"winnerId,omitempty"`
	WinnerName string      `bson:"winnerName,omitempty"`
	Scores     []GameScore `bson:"scores,omitempty"`
}

// TeamSnapshot is a frozen copy of which identities occupied each side at
// scheduling time. Later roster edits must not retroactively change who was
// on a historical match, so membership checks read this before live rosters.
type TeamSnapshot struct {
	SideAPlayerIDs []string `bson:"sideAPlayerIds,omitempty"`
	SideBPlayerIDs []string `bson:"sideBPlayerIds,omitempty"`
}

// RatingSubmission tracks the DUPR submission state for a match. Submitted is
// monotonic: once true it is only revisited by the correction workflow.
type RatingSubmission struct {
	Eligible        *bool `bson:"eligible,omitempty"`
	Submitted       bool  `bson:"submitted,omitempty"`
	NeedsCorrection bool  `bson:"needsCorrection,omitempty"`
}

// Match is the unit of competition between two sides.
type Match struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	MatchID   string             `bson:"matchId,omitempty"`
	EventID   string             `bson:"eventId,omitempty"`
	EventType string             `bson:"eventType,omitempty"` // tournament, league, club, meetup
	CreatedAt int64              `bson:"createdAt,omitempty"` // unix seconds, set at scheduling time

	Status      Status          `bson:"status,omitempty"`
	ScoreState  ScoreState      `bson:"scoreState,omitempty"`
	ScoreLocked bool            `bson:"scoreLocked,omitempty"`
	Proposal    *ScoreProposal  `bson:"scoreProposal,omitempty"`
	Official    *OfficialResult `bson:"officialResult,omitempty"`
	Snapshot    *TeamSnapshot   `bson:"teamSnapshot,omitempty"`

	// Live side rosters, used only when no snapshot was captured
	SideAPlayerIDs []string `bson:"sideAPlayerIds,omitempty"`
	SideBPlayerIDs []string `bson:"sideBPlayerIds,omitempty"`

	SideAID   string `bson:"sideAId,omitempty"`
	SideBID   string `bson:"sideBId,omitempty"`
	SideAName string `bson:"sideAName,omitempty"`
	SideBName string `bson:"sideBName,omitempty"`

	// Legacy flat fields from before the proposal/official split. Only
	// readable as a result when MigratedFromLegacy is set.
	MigratedFromLegacy bool        `bson:"migratedFromLegacy,omitempty"`
	WinnerID           string      `bson:"winnerId,omitempty"`
	WinnerName         string      `bson:"winnerName,omitempty"`
	Scores             []GameScore `bson:"scores,omitempty"`

	Dupr *RatingSubmission `bson:"dupr,omitempty"`
}
