/* results.go
 * Contains the result readers: pure functions that extract the authoritative
 * score/winner from a match record. The structured official result is always
 * preferred; legacy flat fields are readable only behind the explicit
 * MigratedFromLegacy flag so old and new data never silently blend.
 */

package match

// Winner returns the authoritative winner id for a match
// Preconditions: Receives a pointer to a Match
// Postconditions: Returns the winner id from the official result, the legacy flat field
// if the match is flagged as migrated, or "" when no winner has been determined
func Winner(m *Match) string {
	if m.Official != nil {
		return m.Official.WinnerID
	}
	if m.MigratedFromLegacy {
		return m.WinnerID
	}
	return ""
}

// WinnerName returns the authoritative winner display name for a match
// Preconditions: Receives a pointer to a Match
// Postconditions: Returns the winner name from the official result, the legacy flat field
// if the match is flagged as migrated, or "" when no winner has been determined
func WinnerName(m *Match) string {
	if m.Official != nil {
		return m.Official.WinnerName
	}
	if m.MigratedFromLegacy {
		return m.WinnerName
	}
	return ""
}

// ResultScores returns the authoritative game scores for a match
// Preconditions: Receives a pointer to a Match
// Postconditions: Returns the scores from the official result, the legacy flat field
// if the match is flagged as migrated, or nil when no result has been determined
func ResultScores(m *Match) []GameScore {
	if m.Official != nil {
		return m.Official.Scores
	}
	if m.MigratedFromLegacy {
		return m.Scores
	}
	return nil
}

// CountsForStandings reports whether a match contributes to standings and
// statistics. A proposal never counts, even one signed by both sides.
// Preconditions: Receives a pointer to a Match
// Postconditions: Returns true iff an official result exists, or the match is a
// legacy migration with a winner id set
func CountsForStandings(m *Match) bool {
	if m.Official != nil {
		return true
	}
	return m.MigratedFromLegacy && m.WinnerID != ""
}

// IsOfficiallyCompleted reports whether a match has a fully resolved,
// standings-eligible result
// Preconditions: Receives a pointer to a Match
// Postconditions: Returns true iff the match counts for standings and a winner is resolvable
func IsOfficiallyCompleted(m *Match) bool {
	return CountsForStandings(m) && Winner(m) != ""
}
