/* eligibility_test.go
 * Contains unit tests for eligibility.go functions
 */

package rating

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"courtside/api/match"
)

func eligibleMatch() *match.Match {
	return &match.Match{
		MatchID:   "m1",
		EventID:   "spring-league-2026",
		EventType: "league",
		Status:    match.StatusCompleted,
		Official: &match.OfficialResult{
			WinnerID:   "team-a",
			WinnerName: "Dink Dynasty",
			Scores:     []match.GameScore{{SideA: 11, SideB: 9}, {SideA: 11, SideB: 7}},
		},
	}
}

func fullRoster() []Participant {
	return []Participant{
		{UserID: "p1", DisplayName: "Alice", Side: match.SideA, DuprID: "DUPR-001"},
		{UserID: "p2", DisplayName: "Ben", Side: match.SideA, DuprID: "DUPR-002"},
		{UserID: "p3", DisplayName: "Cara", Side: match.SideB, DuprID: "DUPR-003"},
		{UserID: "p4", DisplayName: "Dev", Side: match.SideB, DuprID: "DUPR-004"},
	}
}

// TestCheckEligibility_ValidMatch tests a normal eligible match
func TestCheckEligibility_ValidMatch(t *testing.T) {
	v := CheckEligibility(eligibleMatch(), fullRoster())

	assert.True(t, v.Eligible)
	assert.Empty(t, v.Reason)
}

// TestCheckEligibility_NotCompleted tests that only completed matches are eligible
func TestCheckEligibility_NotCompleted(t *testing.T) {
	m := eligibleMatch()
	m.Status = match.StatusInProgress

	v := CheckEligibility(m, fullRoster())

	assert.False(t, v.Eligible)
	assert.Equal(t, "match is not completed", v.Reason)
}

// TestCheckEligibility_NoScores tests a completed match with no readable result
func TestCheckEligibility_NoScores(t *testing.T) {
	m := &match.Match{MatchID: "m1", Status: match.StatusCompleted}

	v := CheckEligibility(m, fullRoster())

	assert.False(t, v.Eligible)
	assert.Equal(t, "match has no recorded scores", v.Reason)
}

// TestCheckEligibility_AlreadySubmitted tests the resubmission block
func TestCheckEligibility_AlreadySubmitted(t *testing.T) {
	m := eligibleMatch()
	m.Dupr = &match.RatingSubmission{Submitted: true}

	v := CheckEligibility(m, fullRoster())

	assert.False(t, v.Eligible)
	assert.Equal(t, "match has already been submitted to DUPR", v.Reason)
}

// TestCheckEligibility_CorrectionReopens tests that a correction flag allows resubmission
func TestCheckEligibility_CorrectionReopens(t *testing.T) {
	m := eligibleMatch()
	m.Dupr = &match.RatingSubmission{Submitted: true, NeedsCorrection: true}

	v := CheckEligibility(m, fullRoster())

	assert.True(t, v.Eligible)
}

// TestCheckEligibility_TiedGame tests that any tied game is rejected with its position
func TestCheckEligibility_TiedGame(t *testing.T) {
	m := eligibleMatch()
	m.Official.Scores = []match.GameScore{{SideA: 11, SideB: 9}, {SideA: 10, SideB: 10}}

	v := CheckEligibility(m, fullRoster())

	assert.False(t, v.Eligible)
	assert.Equal(t, "tie not allowed: game 2 is tied at 10-10", v.Reason)
}

// TestCheckEligibility_BelowThreshold tests that no game reaching 6 points is rejected
func TestCheckEligibility_BelowThreshold(t *testing.T) {
	m := eligibleMatch()
	m.Official.Scores = []match.GameScore{{SideA: 5, SideB: 3}, {SideA: 4, SideB: 2}}

	v := CheckEligibility(m, fullRoster())

	assert.False(t, v.Eligible)
	assert.Equal(t, "insufficient score: no side reached 6 points in any game", v.Reason)
}

// TestCheckEligibility_SingleGameAtThreshold tests a 6-4 single game, the minimum
// acceptable score line
func TestCheckEligibility_SingleGameAtThreshold(t *testing.T) {
	m := eligibleMatch()
	m.Official.Scores = []match.GameScore{{SideA: 6, SideB: 4}}

	v := CheckEligibility(m, fullRoster())

	assert.True(t, v.Eligible)
}

// TestCheckEligibility_MissingDuprID tests that the verdict names the player without an id
func TestCheckEligibility_MissingDuprID(t *testing.T) {
	m := eligibleMatch()
	m.Official.Scores = []match.GameScore{{SideA: 6, SideB: 4}}
	roster := fullRoster()
	roster[2].DuprID = ""

	v := CheckEligibility(m, roster)

	assert.False(t, v.Eligible)
	assert.Equal(t, "Cara does not have a DUPR id", v.Reason)
}

// TestCheckEligibility_MigratedLegacyResult tests that migrated legacy scores feed the gate
func TestCheckEligibility_MigratedLegacyResult(t *testing.T) {
	m := &match.Match{
		MatchID:            "m1",
		Status:             match.StatusCompleted,
		MigratedFromLegacy: true,
		WinnerID:           "team-a",
		Scores:             []match.GameScore{{SideA: 11, SideB: 8}},
	}

	v := CheckEligibility(m, fullRoster())

	assert.True(t, v.Eligible)
}
