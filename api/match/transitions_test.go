/* transitions_test.go
 * Contains unit tests for transitions.go functions
 */

package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestNewProposal tests building a propose delta
func TestNewProposal(t *testing.T) {
	scores := []GameScore{{SideA: 11, SideB: 9}, {SideA: 9, SideB: 11}, {SideA: 11, SideB: 8}}

	p := NewProposal("p1", scores)

	assert.Equal(t, "p1", p.EnteredByUserID)
	assert.Equal(t, scores, p.Scores)
	assert.Equal(t, ProposalProposed, p.Status)
	assert.False(t, p.Locked)
}

// TestSignedProposal tests progressing a proposal to signed
func TestSignedProposal(t *testing.T) {
	p := NewProposal("p1", []GameScore{{SideA: 11, SideB: 9}})

	signed, err := SignedProposal(p)

	assert.NoError(t, err)
	assert.Equal(t, ProposalSigned, signed.Status)
	// The original proposal is untouched
	assert.Equal(t, ProposalProposed, p.Status)
}

// TestSignedProposal_NoProposal tests signing with no proposal present
func TestSignedProposal_NoProposal(t *testing.T) {
	_, err := SignedProposal(nil)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no score proposal")
}

// TestSignedProposal_AlreadySigned tests that the proposal cannot cycle
func TestSignedProposal_AlreadySigned(t *testing.T) {
	p := &ScoreProposal{EnteredByUserID: "p1", Status: ProposalSigned}

	_, err := SignedProposal(p)

	assert.Error(t, err)
}

// TestDisputedProposal tests progressing a proposal to disputed
func TestDisputedProposal(t *testing.T) {
	p := NewProposal("p1", []GameScore{{SideA: 11, SideB: 9}})

	disputed, err := DisputedProposal(p)

	assert.NoError(t, err)
	assert.Equal(t, ProposalDisputed, disputed.Status)
}

// TestDisputedProposal_AlreadyDisputed tests that a disputed proposal cannot progress again
func TestDisputedProposal_AlreadyDisputed(t *testing.T) {
	p := &ScoreProposal{EnteredByUserID: "p1", Status: ProposalDisputed}

	_, err := DisputedProposal(p)

	assert.Error(t, err)
}

// TestWinnerSide_SideA tests a straight side A win
func TestWinnerSide_SideA(t *testing.T) {
	scores := []GameScore{{SideA: 11, SideB: 9}, {SideA: 11, SideB: 4}}

	assert.Equal(t, SideA, WinnerSide(scores))
}

// TestWinnerSide_SideBComeback tests a three game side B win
func TestWinnerSide_SideBComeback(t *testing.T) {
	scores := []GameScore{{SideA: 11, SideB: 9}, {SideA: 9, SideB: 11}, {SideA: 7, SideB: 11}}

	assert.Equal(t, SideB, WinnerSide(scores))
}

// TestWinnerSide_NoWinner tests empty and split score lists
func TestWinnerSide_NoWinner(t *testing.T) {
	assert.Equal(t, SideNone, WinnerSide(nil))
	assert.Equal(t, SideNone, WinnerSide([]GameScore{{SideA: 11, SideB: 9}, {SideA: 9, SideB: 11}}))
}

// TestOfficialFromScores tests building a finalize delta
func TestOfficialFromScores(t *testing.T) {
	m := &Match{
		SideAID:   "team-a",
		SideBID:   "team-b",
		SideAName: "Dink Dynasty",
		SideBName: "Net Gains",
	}
	scores := []GameScore{{SideA: 11, SideB: 9}, {SideA: 11, SideB: 7}}

	result, err := OfficialFromScores(m, scores)

	assert.NoError(t, err)
	assert.Equal(t, "team-a", result.WinnerID)
	assert.Equal(t, "Dink Dynasty", result.WinnerName)
	assert.Equal(t, scores, result.Scores)
}

// TestOfficialFromScores_NoWinner tests finalizing undecidable scores
func TestOfficialFromScores_NoWinner(t *testing.T) {
	m := &Match{SideAID: "team-a", SideBID: "team-b"}

	_, err := OfficialFromScores(m, nil)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "cannot determine a winner")
}

// TestOfficialFromProposal tests promoting a proposal to an official result
func TestOfficialFromProposal(t *testing.T) {
	m := &Match{
		SideAID:   "team-a",
		SideBID:   "team-b",
		SideAName: "Dink Dynasty",
		SideBName: "Net Gains",
		Proposal: &ScoreProposal{
			EnteredByUserID: "p3",
			Scores:          []GameScore{{SideA: 8, SideB: 11}, {SideA: 5, SideB: 11}},
			Status:          ProposalSigned,
		},
	}

	result, err := OfficialFromProposal(m)

	assert.NoError(t, err)
	assert.Equal(t, "team-b", result.WinnerID)
	assert.Equal(t, "Net Gains", result.WinnerName)
}

// TestOfficialFromProposal_NoProposal tests promoting with nothing to promote
func TestOfficialFromProposal_NoProposal(t *testing.T) {
	m := &Match{}

	_, err := OfficialFromProposal(m)

	assert.Error(t, err)
}
