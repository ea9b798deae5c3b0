/* api.go
 * This file contains the public methods for interacting with this package. For
 * consistent results, functions should only be called from this file, not the
 * sub packages for match, permissions and rating. Every mutating method
 * consults the permission engine against a fresh snapshot and then applies the
 * transition through a guarded store write, so a stale decision can never
 * produce a write.
 */

package api

import (
	"fmt"
	"strings"

	"courtside/api/logic"
	"courtside/api/match"
	"courtside/api/permissions"
	"courtside/api/shared"
	"courtside/api/store"
)

// API provides methods for interacting with the courtside data layer
type API struct {
	Store        store.Interface
	Event        permissions.EventContext
	OrganizerIDs []string
}

// NewAPI creates a new API instance with the provided configuration
// Preconditions: Receives the db name, mongo URI, event id and type, the event's
// regulation mode and the user ids of the event's organizers
// Postconditions: Returns a pointer to the API, or an error if it occurs
func NewAPI(dbName string, mongoURI string, eventID string, eventType string, mode shared.RegulationMode, organizerIDs []string) (*API, error) {
	if dbName == "" || eventID == "" || eventType == "" {
		return nil, fmt.Errorf("dbName, eventID, and eventType are required")
	}

	s, err := store.NewStore(dbName, mongoURI, eventID, eventType)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize store: %w", err)
	}

	return &API{
		Store:        s,
		Event:        permissions.EventContext{Mode: mode},
		OrganizerIDs: organizerIDs,
	}, nil
}

// ActorFor builds the permission-engine actor for a user. Organizer role is a
// fact this service provisions at event creation, so it is resolved here and
// passed down rather than looked up inside the engine
func (a *API) ActorFor(user shared.User) permissions.Actor {
	return permissions.Actor{
		UserID:      user.UserID,
		IsOrganizer: a.isOrganizer(user.UserID),
	}
}

// ProposeScore enters a score proposal on behalf of a player
// Preconditions: Receives the acting user, the match id and the score line as typed,
// reporter's points first in each game
// Postconditions: Writes the proposal and returns an allowed decision, returns the
// denial from the permission engine, or returns an error for malformed input or
// store failures
func (a *API) ProposeScore(user shared.User, matchID string, scoreLine string) (permissions.Decision, error) {
	m, err := a.Store.GetMatch(matchID)
	if err != nil {
		return permissions.Decision{}, err
	}

	actor := a.ActorFor(user)
	decision := permissions.CanProposeScore(m, actor, a.Event)
	if !decision.Allowed {
		return decision, nil
	}

	scores, err := logic.ParseScoreLine(scoreLine)
	if err != nil {
		return permissions.Decision{}, err
	}
	oriented := logic.OrientScores(scores, match.SideOf(m, user.UserID))

	proposal := match.NewProposal(user.UserID, oriented)
	if err := a.Store.SaveProposal(matchID, proposal); err != nil {
		return permissions.Decision{}, err
	}
	return decision, nil
}

// SignScore countersigns the current proposal on behalf of the opposing side
// Preconditions: Receives the acting user and the match id
// Postconditions: Progresses the proposal to signed and returns an allowed decision,
// returns the denial from the permission engine, or returns an error for store failures
func (a *API) SignScore(user shared.User, matchID string) (permissions.Decision, error) {
	m, err := a.Store.GetMatch(matchID)
	if err != nil {
		return permissions.Decision{}, err
	}

	decision := permissions.CanSignScore(m, a.ActorFor(user))
	if !decision.Allowed {
		return decision, nil
	}
	if err := a.Store.SetProposalStatus(matchID, match.ProposalSigned); err != nil {
		return permissions.Decision{}, err
	}
	return decision, nil
}

// DisputeScore disputes the current proposal on behalf of the opposing side
// Preconditions: Receives the acting user and the match id
// Postconditions: Progresses the proposal to disputed and returns an allowed decision,
// returns the denial from the permission engine, or returns an error for store failures
func (a *API) DisputeScore(user shared.User, matchID string) (permissions.Decision, error) {
	m, err := a.Store.GetMatch(matchID)
	if err != nil {
		return permissions.Decision{}, err
	}

	decision := permissions.CanDisputeScore(m, a.ActorFor(user))
	if !decision.Allowed {
		return decision, nil
	}
	if err := a.Store.SetProposalStatus(matchID, match.ProposalDisputed); err != nil {
		return permissions.Decision{}, err
	}
	return decision, nil
}

// FinalizeScore writes the official result as an organizer. With an empty
// score line the current proposal is promoted; otherwise the line is parsed
// side A first and overrides any proposal
// Preconditions: Receives the acting user, the match id and an optional score line
// Postconditions: Writes the official result, locks the score and completes the match,
// returns the denial from the permission engine, or returns an error
func (a *API) FinalizeScore(user shared.User, matchID string, scoreLine string) (permissions.Decision, error) {
	m, err := a.Store.GetMatch(matchID)
	if err != nil {
		return permissions.Decision{}, err
	}

	decision := permissions.CanFinalizeScore(m, a.ActorFor(user))
	if !decision.Allowed {
		return decision, nil
	}

	result, err := a.buildOfficialResult(m, scoreLine)
	if err != nil {
		return permissions.Decision{}, err
	}
	if err := a.Store.FinalizeMatch(matchID, result); err != nil {
		return permissions.Decision{}, err
	}
	return decision, nil
}

// CorrectScore overwrites an existing official result as an organizer
// Preconditions: Receives the acting user, the match id and the corrected score line,
// side A first
// Postconditions: Replaces the official result, returns the denial from the permission
// engine, or returns an error
func (a *API) CorrectScore(user shared.User, matchID string, scoreLine string) (permissions.Decision, error) {
	m, err := a.Store.GetMatch(matchID)
	if err != nil {
		return permissions.Decision{}, err
	}

	decision := permissions.CanCorrectScore(m, a.ActorFor(user))
	if !decision.Allowed {
		return decision, nil
	}

	scores, err := logic.ParseScoreLine(scoreLine)
	if err != nil {
		return permissions.Decision{}, err
	}
	result, err := match.OfficialFromScores(m, scores)
	if err != nil {
		return permissions.Decision{}, err
	}
	if err := a.Store.CorrectMatch(matchID, result); err != nil {
		return permissions.Decision{}, err
	}
	return decision, nil
}

// DirectFinalize enters a result directly as official, bypassing the
// propose/sign workflow. Only non-participant organizers of a regulated event
// may do this, since they cannot be self-reporting
// Preconditions: Receives the acting user, the match id and the score line, side A first
// Postconditions: Writes the official result, returns the denial from the permission
// engine, or returns an error
func (a *API) DirectFinalize(user shared.User, matchID string, scoreLine string) (permissions.Decision, error) {
	m, err := a.Store.GetMatch(matchID)
	if err != nil {
		return permissions.Decision{}, err
	}

	decision := permissions.CanDirectFinalize(m, a.ActorFor(user), a.Event)
	if !decision.Allowed {
		return decision, nil
	}

	scores, err := logic.ParseScoreLine(scoreLine)
	if err != nil {
		return permissions.Decision{}, err
	}
	result, err := match.OfficialFromScores(m, scores)
	if err != nil {
		return permissions.Decision{}, err
	}
	if err := a.Store.FinalizeMatch(matchID, result); err != nil {
		return permissions.Decision{}, err
	}
	return decision, nil
}

// AvailableActions evaluates every action decision for a user against a match
// Preconditions: Receives the acting user and the match id
// Postconditions: Returns the full set of decisions plus the status label, or an error
// if the match cannot be fetched
func (a *API) AvailableActions(user shared.User, matchID string) (permissions.AvailableActions, error) {
	m, err := a.Store.GetMatch(matchID)
	if err != nil {
		return permissions.AvailableActions{}, err
	}
	return permissions.ActionsFor(m, a.ActorFor(user), a.Event), nil
}

// buildOfficialResult builds the finalize delta from a score line, or from
// the standing proposal when the line is empty
func (a *API) buildOfficialResult(m *match.Match, scoreLine string) (*match.OfficialResult, error) {
	if strings.TrimSpace(scoreLine) == "" {
		return match.OfficialFromProposal(m)
	}
	scores, err := logic.ParseScoreLine(scoreLine)
	if err != nil {
		return nil, err
	}
	return match.OfficialFromScores(m, scores)
}

// isOrganizer checks the acting user against the event's organizer list
func (a *API) isOrganizer(userID string) bool {
	for _, id := range a.OrganizerIDs {
		if id == userID {
			return true
		}
	}
	return false
}
