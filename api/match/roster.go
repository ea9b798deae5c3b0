/* roster.go
 * Contains the team-membership resolver. Membership is resolved against the
 * roster snapshot captured at scheduling time; the live side rosters are only
 * a fallback for matches that predate snapshotting. This keeps permission
 * decisions anchored to who was on the match when it was scheduled, not to
 * the present roster.
 */

package match

// Side identifies which side of a match an identity belongs to.
type Side string

const (
	SideA    Side = "sideA"
	SideB    Side = "sideB"
	SideNone Side = "" // not a participant
)

// SideOf resolves which side of the match a user is on
// Preconditions: Receives a pointer to a Match and a user id
// Postconditions: Returns SideA or SideB if the user occupies that side, or SideNone
// if the user is not a participant. The team snapshot is authoritative when present
func SideOf(m *Match, userID string) Side {
	if userID == "" {
		return SideNone
	}
	if m.Snapshot != nil {
		if containsID(m.Snapshot.SideAPlayerIDs, userID) {
			return SideA
		}
		if containsID(m.Snapshot.SideBPlayerIDs, userID) {
			return SideB
		}
		return SideNone
	}
	if containsID(m.SideAPlayerIDs, userID) {
		return SideA
	}
	if containsID(m.SideBPlayerIDs, userID) {
		return SideB
	}
	return SideNone
}

// IsParticipant reports whether the user occupies either side of the match
func IsParticipant(m *Match, userID string) bool {
	return SideOf(m, userID) != SideNone
}

// AreOpposing reports whether two users occupy different sides of the match
// Preconditions: Receives a pointer to a Match and two user ids
// Postconditions: Returns true iff both users resolve to a side and the sides differ
func AreOpposing(m *Match, userID1 string, userID2 string) bool {
	side1 := SideOf(m, userID1)
	side2 := SideOf(m, userID2)
	if side1 == SideNone || side2 == SideNone {
		return false
	}
	return side1 != side2
}

// containsID checks a player id list for an exact id match
func containsID(ids []string, userID string) bool {
	for _, id := range ids {
		if id == userID {
			return true
		}
	}
	return false
}
