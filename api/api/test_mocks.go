/* test_mocks.go
 * Contains mock structures and interfaces for testing the API package and its
 * consumers. The mock store reproduces the guarded-update semantics of the
 * real store so permission/transition flows behave the same under test.
 */

package api

import (
	"context"
	"fmt"

	"courtside/api/logic"
	"courtside/api/match"
	"courtside/api/rating"
	"courtside/api/store"
)

// MockStore implements the Store interface for testing
type MockStore struct {
	// Storage for mock data
	Matches map[string]*match.Match
	Players map[string]store.Player

	// Error injection for testing error paths
	GetMatchError       error
	SaveProposalError   error
	ListCandidatesError error

	EventID   string
	EventType string
}

// NewMockStore creates a new MockStore with default values
func NewMockStore(eventID string, eventType string) *MockStore {
	return &MockStore{
		Matches:   make(map[string]*match.Match),
		Players:   make(map[string]store.Player),
		EventID:   eventID,
		EventType: eventType,
	}
}

// AddMatch stores a match record in the mock
func (m *MockStore) AddMatch(rec *match.Match) {
	m.Matches[rec.MatchID] = rec
}

// AddPlayer stores a player record in the mock
func (m *MockStore) AddPlayer(p store.Player) {
	m.Players[p.UserID] = p
}

// GetMatch returns a copy of the stored match so callers cannot mutate the mock's state
func (m *MockStore) GetMatch(matchID string) (*match.Match, error) {
	if m.GetMatchError != nil {
		return nil, m.GetMatchError
	}
	rec, ok := m.Matches[matchID]
	if !ok {
		return nil, fmt.Errorf("no match found with id %s", matchID)
	}
	copied := *rec
	return &copied, nil
}

// ListEventMatches returns every stored match
func (m *MockStore) ListEventMatches() ([]match.Match, error) {
	var matches []match.Match
	for _, rec := range m.Matches {
		matches = append(matches, *rec)
	}
	return matches, nil
}

// SaveProposal mirrors the real store's guarded proposal write
func (m *MockStore) SaveProposal(matchID string, p *match.ScoreProposal) error {
	if m.SaveProposalError != nil {
		return m.SaveProposalError
	}
	rec, ok := m.Matches[matchID]
	if !ok || rec.ScoreLocked || rec.Proposal != nil ||
		rec.Status == match.StatusCompleted || rec.Status == match.StatusCancelled {
		return store.ErrMatchModified
	}
	rec.Proposal = p
	rec.ScoreState = match.ScoreStateProposed
	rec.Status = match.StatusPendingConfirmation
	return nil
}

// SetProposalStatus mirrors the real store's guarded proposal progression
func (m *MockStore) SetProposalStatus(matchID string, status match.ProposalStatus) error {
	rec, ok := m.Matches[matchID]
	if !ok || rec.ScoreLocked || rec.Proposal == nil || rec.Proposal.Status != match.ProposalProposed {
		return store.ErrMatchModified
	}
	rec.Proposal.Status = status
	if status == match.ProposalSigned {
		rec.ScoreState = match.ScoreStateSigned
	} else {
		rec.ScoreState = match.ScoreStateDisputed
		rec.Status = match.StatusDisputed
	}
	return nil
}

// FinalizeMatch mirrors the real store's finalize write
func (m *MockStore) FinalizeMatch(matchID string, result *match.OfficialResult) error {
	rec, ok := m.Matches[matchID]
	if !ok {
		return store.ErrMatchModified
	}
	rec.Official = result
	rec.ScoreState = match.ScoreStateOfficial
	rec.ScoreLocked = true
	rec.Status = match.StatusCompleted
	return nil
}

// CorrectMatch mirrors the real store's correction write
func (m *MockStore) CorrectMatch(matchID string, result *match.OfficialResult) error {
	rec, ok := m.Matches[matchID]
	if !ok || rec.Official == nil {
		return store.ErrMatchModified
	}
	rec.Official = result
	if rec.Dupr != nil && rec.Dupr.Submitted {
		rec.Dupr.NeedsCorrection = true
	}
	return nil
}

// MarkRatingSubmitted mirrors the real store's submission write
func (m *MockStore) MarkRatingSubmitted(matchID string) error {
	rec, ok := m.Matches[matchID]
	if !ok || rec.Official == nil {
		return store.ErrMatchModified
	}
	if rec.Dupr == nil {
		rec.Dupr = &match.RatingSubmission{}
	}
	rec.Dupr.Submitted = true
	rec.Dupr.NeedsCorrection = false
	rec.ScoreState = match.ScoreStateSubmitted
	return nil
}

// FlagRatingCorrection mirrors the real store's correction flag write
func (m *MockStore) FlagRatingCorrection(matchID string) error {
	rec, ok := m.Matches[matchID]
	if !ok || rec.Dupr == nil || !rec.Dupr.Submitted {
		return store.ErrMatchModified
	}
	rec.Dupr.NeedsCorrection = true
	return nil
}

// SetRatingEligibility mirrors the real store's eligibility write
func (m *MockStore) SetRatingEligibility(matchID string, eligible bool) error {
	rec, ok := m.Matches[matchID]
	if !ok || (rec.Dupr != nil && rec.Dupr.Submitted) {
		return store.ErrMatchModified
	}
	if rec.Dupr == nil {
		rec.Dupr = &match.RatingSubmission{}
	}
	rec.Dupr.Eligible = &eligible
	return nil
}

// ListRatingCandidates applies the real store's candidate filter in memory
func (m *MockStore) ListRatingCandidates() ([]match.Match, error) {
	if m.ListCandidatesError != nil {
		return nil, m.ListCandidatesError
	}
	var candidates []match.Match
	for _, rec := range m.Matches {
		if rec.Status != match.StatusCompleted || rec.Official == nil {
			continue
		}
		if rec.ScoreState != match.ScoreStateOfficial && rec.ScoreState != match.ScoreStateSubmitted {
			continue
		}
		if rec.Dupr != nil {
			if rec.Dupr.Eligible != nil && !*rec.Dupr.Eligible {
				continue
			}
			if rec.Dupr.Submitted && !rec.Dupr.NeedsCorrection {
				continue
			}
		}
		candidates = append(candidates, *rec)
	}
	return candidates, nil
}

// GetPlayers returns the stored player records for the given ids
func (m *MockStore) GetPlayers(userIDs []string) ([]store.Player, error) {
	var players []store.Player
	for _, id := range userIDs {
		if p, ok := m.Players[id]; ok {
			players = append(players, p)
		}
	}
	return players, nil
}

// EventRoster returns every stored player in resolver shape
func (m *MockStore) EventRoster() ([]logic.Player, error) {
	var roster []logic.Player
	for _, p := range m.Players {
		roster = append(roster, logic.Player{UserID: p.UserID, DisplayName: p.DisplayName})
	}
	return roster, nil
}

// Participants resolves a match's roster from the stored players
func (m *MockStore) Participants(rec *match.Match) ([]rating.Participant, error) {
	var participants []rating.Participant
	appendSide := func(ids []string, side match.Side) error {
		for _, id := range ids {
			p, ok := m.Players[id]
			if !ok {
				return fmt.Errorf("no player record for participant %s", id)
			}
			participants = append(participants, rating.Participant{
				UserID:      p.UserID,
				DisplayName: p.DisplayName,
				Side:        side,
				DuprID:      p.DuprID,
			})
		}
		return nil
	}

	sideA, sideB := rec.SideAPlayerIDs, rec.SideBPlayerIDs
	if rec.Snapshot != nil {
		sideA, sideB = rec.Snapshot.SideAPlayerIDs, rec.Snapshot.SideBPlayerIDs
	}
	if err := appendSide(sideA, match.SideA); err != nil {
		return nil, err
	}
	if err := appendSide(sideB, match.SideB); err != nil {
		return nil, err
	}
	return participants, nil
}

// GetEventID returns the mock's event id
func (m *MockStore) GetEventID() string {
	return m.EventID
}

// GetEventType returns the mock's event type
func (m *MockStore) GetEventType() string {
	return m.EventType
}

// mockClient implements the minimal client interface needed for tests
type mockClient struct{}

func (c *mockClient) Disconnect(ctx context.Context) error {
	return nil
}

// GetClient returns a no-op client
func (m *MockStore) GetClient() interface{ Disconnect(context.Context) error } {
	return &mockClient{}
}

// Ensure MockStore implements the Store interface
var _ store.Interface = (*MockStore)(nil)
