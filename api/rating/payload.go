/* payload.go
 * Contains the structured submission payload sent to DUPR and the idempotency
 * identifier that keys it. Submissions are retried by the scheduler, so the
 * identifier must be stable for a given match.
 */

package rating

import (
	"fmt"

	"courtside/api/match"
)

// MatchSubmission is the payload handed to the DUPR client.
type MatchSubmission struct {
	SubmissionID string            `json:"submissionId"`
	EventID      string            `json:"eventId"`
	EventType    string            `json:"eventType"`
	MatchID      string            `json:"matchId"`
	SideADuprIDs []string          `json:"sideADuprIds"`
	SideBDuprIDs []string          `json:"sideBDuprIds"`
	Scores       []match.GameScore `json:"scores"`
	WinnerSide   match.Side        `json:"winnerSide"`
}

// SubmissionID builds the idempotency identifier for a match submission
// Preconditions: Receives the event type, event id and match id
// Postconditions: Returns the identifier in the form {eventType}_{eventId}_{matchId}
func SubmissionID(eventType string, eventID string, matchID string) string {
	return fmt.Sprintf("%s_%s_%s", eventType, eventID, matchID)
}

// BuildSubmission assembles the DUPR payload for an eligible match
// Preconditions: Receives a match that has passed CheckEligibility and its resolved participants
// Postconditions: Returns the populated payload, or an error if the match has no
// resolvable result (programmer misuse; the gate should have run first)
func BuildSubmission(m *match.Match, participants []Participant) (MatchSubmission, error) {
	scores := match.ResultScores(m)
	if len(scores) == 0 {
		return MatchSubmission{}, fmt.Errorf("match %s has no result scores to submit", m.MatchID)
	}
	winner := match.WinnerSide(scores)
	if winner == match.SideNone {
		return MatchSubmission{}, fmt.Errorf("match %s has no derivable winner", m.MatchID)
	}

	sub := MatchSubmission{
		SubmissionID: SubmissionID(m.EventType, m.EventID, m.MatchID),
		EventID:      m.EventID,
		EventType:    m.EventType,
		MatchID:      m.MatchID,
		Scores:       scores,
		WinnerSide:   winner,
	}
	for _, p := range participants {
		switch p.Side {
		case match.SideA:
			sub.SideADuprIDs = append(sub.SideADuprIDs, p.DuprID)
		case match.SideB:
			sub.SideBDuprIDs = append(sub.SideBDuprIDs, p.DuprID)
		}
	}
	return sub, nil
}
