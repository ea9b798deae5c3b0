/* matches.go
 * Contains the methods for interacting with the matches collection. Every
 * lifecycle write is a guarded update: the filter re-states the preconditions
 * the permission engine checked, so two callers racing on the same match are
 * serialised by the store rather than by the decision logic. A write whose
 * guard no longer holds reports ErrMatchModified and the caller re-evaluates.
 */

package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"courtside/api/match"
)

// ErrMatchModified is returned when a guarded update matched no document,
// meaning the match changed between the permission check and the write.
var ErrMatchModified = errors.New("match record changed, re-check permissions and retry")

// GetMatch retrieves a single match in this store's event
// Preconditions: Receives the match id
// Postconditions: Returns the match record, or an error if it does not exist
func (s *Store) GetMatch(matchID string) (*match.Match, error) {
	var m match.Match
	err := s.Collections.Matches.FindOne(context.TODO(), bson.D{
		{Key: "matchId", Value: matchID},
		{Key: "eventId", Value: s.EventID},
	}).Decode(&m)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("no match found with id %s", matchID)
		}
		return nil, fmt.Errorf("error fetching match %s: %w", matchID, err)
	}
	return &m, nil
}

// ListEventMatches retrieves every match in this store's event
func (s *Store) ListEventMatches() ([]match.Match, error) {
	cursor, err := s.Collections.Matches.Find(context.TODO(), bson.D{
		{Key: "eventId", Value: s.EventID},
	})
	if err != nil {
		return nil, fmt.Errorf("error listing matches: %w", err)
	}
	var matches []match.Match
	if err := cursor.All(context.TODO(), &matches); err != nil {
		return nil, fmt.Errorf("error decoding matches: %w", err)
	}
	return matches, nil
}

// SaveProposal writes a new score proposal onto an unlocked match without one
// Preconditions: Receives the match id and the proposal delta to write; the caller has
// already consulted the permission engine
// Postconditions: Sets the proposal, moves scoreState to proposed and status to
// pending_confirmation, or returns ErrMatchModified if the guard no longer holds
func (s *Store) SaveProposal(matchID string, p *match.ScoreProposal) error {
	filter := bson.D{
		{Key: "matchId", Value: matchID},
		{Key: "eventId", Value: s.EventID},
		{Key: "scoreLocked", Value: bson.D{{Key: "$ne", Value: true}}},
		{Key: "scoreProposal", Value: nil},
		{Key: "status", Value: bson.D{{Key: "$nin", Value: bson.A{match.StatusCompleted, match.StatusCancelled}}}},
	}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "scoreProposal", Value: p},
		{Key: "scoreState", Value: match.ScoreStateProposed},
		{Key: "status", Value: match.StatusPendingConfirmation},
	}}}
	return s.guardedUpdate(filter, update)
}

// SetProposalStatus progresses the proposal to signed or disputed
// Preconditions: Receives the match id and the target proposal status; a proposed,
// unlocked proposal must exist
// Postconditions: Updates the proposal status and the match's score state, and moves
// the match status to disputed for a dispute, or returns ErrMatchModified
func (s *Store) SetProposalStatus(matchID string, status match.ProposalStatus) error {
	if status != match.ProposalSigned && status != match.ProposalDisputed {
		return fmt.Errorf("proposal status can only progress to signed or disputed, got %s", status)
	}
	filter := bson.D{
		{Key: "matchId", Value: matchID},
		{Key: "eventId", Value: s.EventID},
		{Key: "scoreLocked", Value: bson.D{{Key: "$ne", Value: true}}},
		{Key: "scoreProposal.status", Value: match.ProposalProposed},
	}
	set := bson.D{
		{Key: "scoreProposal.status", Value: status},
	}
	if status == match.ProposalSigned {
		set = append(set, bson.E{Key: "scoreState", Value: match.ScoreStateSigned})
	} else {
		set = append(set, bson.E{Key: "scoreState", Value: match.ScoreStateDisputed})
		set = append(set, bson.E{Key: "status", Value: match.StatusDisputed})
	}
	return s.guardedUpdate(filter, bson.D{{Key: "$set", Value: set}})
}

// FinalizeMatch writes the official result, locks the score and completes the match
// Preconditions: Receives the match id and the official result delta; only organizer
// flows reach here
// Postconditions: Sets officialResult, scoreLocked and scoreState official, marks the
// match completed and freezes any proposal, or returns ErrMatchModified
func (s *Store) FinalizeMatch(matchID string, result *match.OfficialResult) error {
	filter := bson.D{
		{Key: "matchId", Value: matchID},
		{Key: "eventId", Value: s.EventID},
	}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "officialResult", Value: result},
		{Key: "scoreState", Value: match.ScoreStateOfficial},
		{Key: "scoreLocked", Value: true},
		{Key: "status", Value: match.StatusCompleted},
	}}}
	return s.guardedUpdate(filter, update)
}

// CorrectMatch overwrites an existing official result
// Preconditions: Receives the match id and the corrected result; an official result
// must already exist
// Postconditions: Replaces officialResult and, if the match was already submitted to
// DUPR, flags it for correction, or returns ErrMatchModified
func (s *Store) CorrectMatch(matchID string, result *match.OfficialResult) error {
	filter := bson.D{
		{Key: "matchId", Value: matchID},
		{Key: "eventId", Value: s.EventID},
		{Key: "officialResult", Value: bson.D{{Key: "$ne", Value: nil}}},
	}
	m, err := s.GetMatch(matchID)
	if err != nil {
		return err
	}
	set := bson.D{
		{Key: "officialResult", Value: result},
	}
	if m.Dupr != nil && m.Dupr.Submitted {
		set = append(set, bson.E{Key: "dupr.needsCorrection", Value: true})
	}
	return s.guardedUpdate(filter, bson.D{{Key: "$set", Value: set}})
}

// MarkRatingSubmitted records a successful DUPR submission
// Preconditions: Receives the match id
// Postconditions: Sets dupr.submitted, clears any correction flag and moves the
// score state to submitted_to_rating_authority, or returns ErrMatchModified
func (s *Store) MarkRatingSubmitted(matchID string) error {
	filter := bson.D{
		{Key: "matchId", Value: matchID},
		{Key: "eventId", Value: s.EventID},
		{Key: "officialResult", Value: bson.D{{Key: "$ne", Value: nil}}},
	}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "dupr.submitted", Value: true},
		{Key: "dupr.needsCorrection", Value: false},
		{Key: "scoreState", Value: match.ScoreStateSubmitted},
	}}}
	return s.guardedUpdate(filter, update)
}

// FlagRatingCorrection flags a submitted match for the correction workflow
// Preconditions: Receives the match id; the match must have been submitted
// Postconditions: Sets dupr.needsCorrection so the next submitter pass resubmits the
// match, or returns ErrMatchModified
func (s *Store) FlagRatingCorrection(matchID string) error {
	filter := bson.D{
		{Key: "matchId", Value: matchID},
		{Key: "eventId", Value: s.EventID},
		{Key: "dupr.submitted", Value: true},
	}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "dupr.needsCorrection", Value: true},
	}}}
	return s.guardedUpdate(filter, update)
}

// SetRatingEligibility records an eligibility verdict for a match
// Preconditions: Receives the match id and the verdict; callers gate on the
// permission engine, which blocks this once the match has been submitted
// Postconditions: Sets dupr.eligible, or returns ErrMatchModified
func (s *Store) SetRatingEligibility(matchID string, eligible bool) error {
	filter := bson.D{
		{Key: "matchId", Value: matchID},
		{Key: "eventId", Value: s.EventID},
		{Key: "dupr.submitted", Value: bson.D{{Key: "$ne", Value: true}}},
	}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "dupr.eligible", Value: eligible},
	}}}
	return s.guardedUpdate(filter, update)
}

// ListRatingCandidates returns official, completed matches awaiting DUPR submission,
// including submitted matches that were flagged for correction
func (s *Store) ListRatingCandidates() ([]match.Match, error) {
	filter := bson.D{
		{Key: "eventId", Value: s.EventID},
		{Key: "status", Value: match.StatusCompleted},
		{Key: "officialResult", Value: bson.D{{Key: "$ne", Value: nil}}},
		{Key: "scoreState", Value: bson.D{{Key: "$in", Value: bson.A{match.ScoreStateOfficial, match.ScoreStateSubmitted}}}},
		{Key: "dupr.eligible", Value: bson.D{{Key: "$ne", Value: false}}},
		{Key: "$or", Value: bson.A{
			bson.D{{Key: "dupr.submitted", Value: bson.D{{Key: "$ne", Value: true}}}},
			bson.D{{Key: "dupr.needsCorrection", Value: true}},
		}},
	}
	cursor, err := s.Collections.Matches.Find(context.TODO(), filter)
	if err != nil {
		return nil, fmt.Errorf("error listing rating candidates: %w", err)
	}
	var matches []match.Match
	if err := cursor.All(context.TODO(), &matches); err != nil {
		return nil, fmt.Errorf("error decoding rating candidates: %w", err)
	}
	return matches, nil
}

// guardedUpdate applies an update whose filter encodes its preconditions
func (s *Store) guardedUpdate(filter bson.D, update bson.D) error {
	res, err := s.Collections.Matches.UpdateOne(context.TODO(), filter, update)
	if err != nil {
		return fmt.Errorf("error updating match: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrMatchModified
	}
	return nil
}
