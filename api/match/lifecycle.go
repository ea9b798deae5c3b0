/* lifecycle.go
 * Contains the lifecycle reporter: a pure mapping from the combination of
 * score state and match status to a single human-facing label. The score
 * state takes priority over the status whenever it is informative.
 */

package match

// StatusLabel derives the human-facing status label for a match
// Preconditions: Receives a pointer to a Match
// Postconditions: Returns a label string; always returns something, with "unknown"
// for unrecognised combinations
func StatusLabel(m *Match) string {
	switch m.ScoreState {
	case ScoreStateDisputed:
		return "disputed — awaiting organiser"
	case ScoreStateProposed:
		return "score proposed — awaiting confirmation"
	case ScoreStateSigned:
		return "score signed — awaiting organiser finalisation"
	case ScoreStateSubmitted:
		return "official — submitted for rating"
	case ScoreStateOfficial:
		return "official"
	}

	// No informative score state; fall back to the match status
	switch m.Status {
	case StatusScheduled:
		return "scheduled"
	case StatusInProgress:
		return "in progress"
	case StatusPendingConfirmation:
		return "awaiting score confirmation"
	case StatusCompleted:
		if m.Official != nil || (m.MigratedFromLegacy && m.WinnerID != "") {
			return "completed"
		}
		return "completed — result pending"
	case StatusDisputed:
		return "disputed — awaiting organiser"
	case StatusCancelled:
		return "cancelled"
	case StatusForfeit:
		return "forfeit"
	case StatusBye:
		return "bye"
	}
	return "unknown"
}
