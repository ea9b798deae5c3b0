/* store_interface.go
 * Contains the Store interface for dependency injection and testing
 */

package store

import (
	"context"

	"courtside/api/logic"
	"courtside/api/match"
	"courtside/api/rating"
)

// Interface defines the methods that Store implements.
// This allows for mocking in tests.
type Interface interface {
	GetMatch(matchID string) (*match.Match, error)
	ListEventMatches() ([]match.Match, error)
	SaveProposal(matchID string, p *match.ScoreProposal) error
	SetProposalStatus(matchID string, status match.ProposalStatus) error
	FinalizeMatch(matchID string, result *match.OfficialResult) error
	CorrectMatch(matchID string, result *match.OfficialResult) error
	MarkRatingSubmitted(matchID string) error
	FlagRatingCorrection(matchID string) error
	SetRatingEligibility(matchID string, eligible bool) error
	ListRatingCandidates() ([]match.Match, error)

	GetPlayers(userIDs []string) ([]Player, error)
	EventRoster() ([]logic.Player, error)
	Participants(m *match.Match) ([]rating.Participant, error)

	// Getter methods for accessing fields
	GetEventID() string
	GetEventType() string
	GetClient() interface{ Disconnect(context.Context) error }
}

// Ensure Store implements Interface
var _ Interface = (*Store)(nil)

// Ensure Store can feed the rating submitter
var _ rating.MatchSource = (*Store)(nil)

// GetEventID returns the event this store is scoped to
func (s *Store) GetEventID() string {
	return s.EventID
}

// GetEventType returns the event type (tournament, league, club, meetup)
func (s *Store) GetEventType() string {
	return s.EventType
}

// GetClient returns the MongoDB client
func (s *Store) GetClient() interface{ Disconnect(context.Context) error } {
	return s.Client
}
