/* transitions.go
 * Contains pure constructors for the record deltas each lifecycle transition
 * writes. The permission engine decides whether a transition may happen;
 * these functions only build what gets written. The store applies the delta
 * inside its own transactional write so racing callers are serialised there.
 */

package match

import "fmt"

// NewProposal builds the score proposal delta for a propose action
// Preconditions: Receives the proposing user's id and a non-empty list of game scores
// Postconditions: Returns a ScoreProposal in the proposed state
func NewProposal(userID string, scores []GameScore) *ScoreProposal {
	return &ScoreProposal{
		EnteredByUserID: userID,
		Scores:          scores,
		Status:          ProposalProposed,
	}
}

// SignedProposal builds the proposal delta for a sign action
// Preconditions: Receives the existing proposal; the proposal must be in the proposed state
// Postconditions: Returns a copy of the proposal in the signed state, or an error if the
// proposal is missing or has already progressed (programmer misuse, callers are expected
// to consult the permission engine first)
func SignedProposal(p *ScoreProposal) (*ScoreProposal, error) {
	if p == nil {
		return nil, fmt.Errorf("no score proposal to sign")
	}
	if p.Status != ProposalProposed {
		return nil, fmt.Errorf("score proposal is %s, only a proposed score can be signed", p.Status)
	}
	signed := *p
	signed.Status = ProposalSigned
	return &signed, nil
}

// DisputedProposal builds the proposal delta for a dispute action
// Preconditions: Receives the existing proposal; the proposal must be in the proposed state
// Postconditions: Returns a copy of the proposal in the disputed state, or an error if the
// proposal is missing or has already progressed
func DisputedProposal(p *ScoreProposal) (*ScoreProposal, error) {
	if p == nil {
		return nil, fmt.Errorf("no score proposal to dispute")
	}
	if p.Status != ProposalProposed {
		return nil, fmt.Errorf("score proposal is %s, only a proposed score can be disputed", p.Status)
	}
	disputed := *p
	disputed.Status = ProposalDisputed
	return &disputed, nil
}

// WinnerSide determines which side won a score list by games won
// Preconditions: Receives a list of game scores
// Postconditions: Returns SideA or SideB, or SideNone if the list is empty or games are split evenly
func WinnerSide(scores []GameScore) Side {
	var aGames, bGames int
	for _, g := range scores {
		if g.SideA > g.SideB {
			aGames++
		} else if g.SideB > g.SideA {
			bGames++
		}
	}
	if aGames > bGames {
		return SideA
	}
	if bGames > aGames {
		return SideB
	}
	return SideNone
}

// OfficialFromScores builds the official result delta an organizer finalize writes
// Preconditions: Receives the match being finalized and the score list to make official
// Postconditions: Returns an OfficialResult with the winner derived from games won, or an
// error if no winner can be derived from the scores
func OfficialFromScores(m *Match, scores []GameScore) (*OfficialResult, error) {
	side := WinnerSide(scores)
	if side == SideNone {
		return nil, fmt.Errorf("cannot determine a winner from the provided scores")
	}
	result := &OfficialResult{Scores: scores}
	if side == SideA {
		result.WinnerID = m.SideAID
		result.WinnerName = m.SideAName
	} else {
		result.WinnerID = m.SideBID
		result.WinnerName = m.SideBName
	}
	return result, nil
}

// OfficialFromProposal builds the official result delta for finalizing an accepted proposal
// Preconditions: Receives the match carrying the proposal to promote
// Postconditions: Returns an OfficialResult derived from the proposal's scores, or an error
// if there is no proposal or no winner can be derived
func OfficialFromProposal(m *Match) (*OfficialResult, error) {
	if m.Proposal == nil {
		return nil, fmt.Errorf("no score proposal to finalize")
	}
	return OfficialFromScores(m, m.Proposal.Scores)
}
