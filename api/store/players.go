/* players.go
 * Contains the methods for interacting with the players collection: roster
 * lookups for name resolution and participant resolution for the DUPR gate.
 */

package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"courtside/api/logic"
	"courtside/api/match"
	"courtside/api/rating"
)

// GetPlayers retrieves player records for the given user ids
// Preconditions: Receives a slice of user ids
// Postconditions: Returns the matching player records; ids with no record are absent
// from the result rather than an error
func (s *Store) GetPlayers(userIDs []string) ([]Player, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	cursor, err := s.Collections.Players.Find(context.TODO(), bson.D{
		{Key: "userId", Value: bson.D{{Key: "$in", Value: userIDs}}},
	})
	if err != nil {
		return nil, fmt.Errorf("error fetching players: %w", err)
	}
	var players []Player
	if err := cursor.All(context.TODO(), &players); err != nil {
		return nil, fmt.Errorf("error decoding players: %w", err)
	}
	return players, nil
}

// EventRoster retrieves every player registered to this store's event, in the
// shape the name resolver consumes
func (s *Store) EventRoster() ([]logic.Player, error) {
	cursor, err := s.Collections.Players.Find(context.TODO(), bson.D{
		{Key: "eventIds", Value: s.EventID},
	})
	if err != nil {
		return nil, fmt.Errorf("error fetching event roster: %w", err)
	}
	var players []Player
	if err := cursor.All(context.TODO(), &players); err != nil {
		return nil, fmt.Errorf("error decoding event roster: %w", err)
	}
	roster := make([]logic.Player, 0, len(players))
	for _, p := range players {
		roster = append(roster, logic.Player{UserID: p.UserID, DisplayName: p.DisplayName})
	}
	return roster, nil
}

// Participants resolves the full roster of a match, both players of each side
// in doubles, in the shape the eligibility gate consumes
// Preconditions: Receives a pointer to a Match
// Postconditions: Returns one participant per occupying player with their DUPR id, or
// an error if a player record is missing (programmer misuse, rosters are provisioned
// at registration time)
func (s *Store) Participants(m *match.Match) ([]rating.Participant, error) {
	sideA := sideIDs(m, match.SideA)
	sideB := sideIDs(m, match.SideB)

	players, err := s.GetPlayers(append(append([]string{}, sideA...), sideB...))
	if err != nil {
		return nil, err
	}
	byID := make(map[string]Player, len(players))
	for _, p := range players {
		byID[p.UserID] = p
	}

	var participants []rating.Participant
	for _, id := range sideA {
		p, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("no player record for participant %s", id)
		}
		participants = append(participants, rating.Participant{
			UserID:      p.UserID,
			DisplayName: p.DisplayName,
			Side:        match.SideA,
			DuprID:      p.DuprID,
		})
	}
	for _, id := range sideB {
		p, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("no player record for participant %s", id)
		}
		participants = append(participants, rating.Participant{
			UserID:      p.UserID,
			DisplayName: p.DisplayName,
			Side:        match.SideB,
			DuprID:      p.DuprID,
		})
	}
	return participants, nil
}

// sideIDs returns the player ids occupying a side, preferring the snapshot
func sideIDs(m *match.Match, side match.Side) []string {
	if m.Snapshot != nil {
		if side == match.SideA {
			return m.Snapshot.SideAPlayerIDs
		}
		return m.Snapshot.SideBPlayerIDs
	}
	if side == match.SideA {
		return m.SideAPlayerIDs
	}
	return m.SideBPlayerIDs
}
