/* roster_test.go
 * Contains unit tests for roster.go functions
 */

package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSideOf_SnapshotAuthoritative tests that the snapshot wins over live rosters
func TestSideOf_SnapshotAuthoritative(t *testing.T) {
	m := &Match{
		Snapshot: &TeamSnapshot{
			SideAPlayerIDs: []string{"p1", "p2"},
			SideBPlayerIDs: []string{"p3", "p4"},
		},
		// Live rosters were edited after scheduling; p1 was moved to side B
		SideAPlayerIDs: []string{"p5"},
		SideBPlayerIDs: []string{"p1"},
	}

	assert.Equal(t, SideA, SideOf(m, "p1"))
	assert.Equal(t, SideB, SideOf(m, "p3"))
}

// TestSideOf_SnapshotExcludesLatecomers tests that a player only on the live roster is
// not a participant when a snapshot exists
func TestSideOf_SnapshotExcludesLatecomers(t *testing.T) {
	m := &Match{
		Snapshot: &TeamSnapshot{
			SideAPlayerIDs: []string{"p1"},
			SideBPlayerIDs: []string{"p2"},
		},
		SideAPlayerIDs: []string{"p1", "substitute"},
	}

	assert.Equal(t, SideNone, SideOf(m, "substitute"))
}

// TestSideOf_LiveRosterFallback tests resolution for matches that predate snapshotting
func TestSideOf_LiveRosterFallback(t *testing.T) {
	m := &Match{
		SideAPlayerIDs: []string{"p1"},
		SideBPlayerIDs: []string{"p2"},
	}

	assert.Equal(t, SideA, SideOf(m, "p1"))
	assert.Equal(t, SideB, SideOf(m, "p2"))
	assert.Equal(t, SideNone, SideOf(m, "p3"))
}

// TestSideOf_EmptyUserID tests that an empty id never resolves to a side
func TestSideOf_EmptyUserID(t *testing.T) {
	m := &Match{SideAPlayerIDs: []string{""}}

	assert.Equal(t, SideNone, SideOf(m, ""))
}

// TestIsParticipant tests participant resolution on both sides
func TestIsParticipant(t *testing.T) {
	m := &Match{
		Snapshot: &TeamSnapshot{
			SideAPlayerIDs: []string{"p1"},
			SideBPlayerIDs: []string{"p2"},
		},
	}

	assert.True(t, IsParticipant(m, "p1"))
	assert.True(t, IsParticipant(m, "p2"))
	assert.False(t, IsParticipant(m, "organizer"))
}

// TestAreOpposing_DifferentSides tests two players on opposite sides
func TestAreOpposing_DifferentSides(t *testing.T) {
	m := &Match{
		Snapshot: &TeamSnapshot{
			SideAPlayerIDs: []string{"p1", "p2"},
			SideBPlayerIDs: []string{"p3", "p4"},
		},
	}

	assert.True(t, AreOpposing(m, "p1", "p3"))
	assert.True(t, AreOpposing(m, "p4", "p2"))
}

// TestAreOpposing_SameSide tests two doubles partners
func TestAreOpposing_SameSide(t *testing.T) {
	m := &Match{
		Snapshot: &TeamSnapshot{
			SideAPlayerIDs: []string{"p1", "p2"},
			SideBPlayerIDs: []string{"p3", "p4"},
		},
	}

	assert.False(t, AreOpposing(m, "p1", "p2"))
}

// TestAreOpposing_NonParticipant tests that a non-participant never opposes anyone
func TestAreOpposing_NonParticipant(t *testing.T) {
	m := &Match{
		Snapshot: &TeamSnapshot{
			SideAPlayerIDs: []string{"p1"},
			SideBPlayerIDs: []string{"p2"},
		},
	}

	assert.False(t, AreOpposing(m, "p1", "stranger"))
	assert.False(t, AreOpposing(m, "stranger", "p2"))
	assert.False(t, AreOpposing(m, "stranger", "stranger2"))
}
