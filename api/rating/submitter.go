/* submitter.go
 * Contains the rate-limited submitter that walks official, completed matches
 * and sends eligible ones to DUPR. The gate decides, the Client transports;
 * this file only sequences the two and records the outcome through the
 * MatchSource. Scheduling is owned by main.go.
 */

package rating

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/time/rate"

	"courtside/api/match"
)

// Client is the transport to the DUPR rating authority. The real HTTP client
// lives outside this package; tests supply a mock.
type Client interface {
	SubmitMatch(ctx context.Context, sub MatchSubmission) error
}

// MatchSource is the narrow slice of the store the submitter needs.
type MatchSource interface {
	// ListRatingCandidates returns official, completed matches that have not
	// been submitted, or were submitted and flagged for correction.
	ListRatingCandidates() ([]match.Match, error)
	// Participants resolves the full roster of a match including DUPR ids.
	Participants(m *match.Match) ([]Participant, error)
	// MarkRatingSubmitted records a successful submission.
	MarkRatingSubmitted(matchID string) error
	// SetRatingEligibility records the gate's verdict on the match.
	SetRatingEligibility(matchID string, eligible bool) error
}

// Submitter pushes eligible match results to DUPR at a bounded rate.
type Submitter struct {
	Source  MatchSource
	Client  Client
	Limiter *rate.Limiter
}

// NewSubmitter creates a Submitter with the given request rate
// Preconditions: Receives the match source, the DUPR client and the number of
// requests per second the authority permits
// Postconditions: Returns a pointer to the Submitter, or an error if a dependency is missing
func NewSubmitter(source MatchSource, client Client, requestsPerSecond float64) (*Submitter, error) {
	if source == nil || client == nil {
		return nil, fmt.Errorf("submitter requires a match source and a client")
	}
	if requestsPerSecond <= 0 {
		requestsPerSecond = 1
	}
	return &Submitter{
		Source:  source,
		Client:  client,
		Limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
	}, nil
}

// SubmitPending runs one pass over the rating candidates
// Preconditions: Receives a context used for rate limiting and transport cancellation
// Postconditions: Returns the number of matches submitted. Per-match failures are
// logged and skipped so one bad record cannot stall the queue; an error is returned
// only when the candidate list itself cannot be fetched
func (s *Submitter) SubmitPending(ctx context.Context) (int, error) {
	candidates, err := s.Source.ListRatingCandidates()
	if err != nil {
		return 0, fmt.Errorf("failed to list rating candidates: %w", err)
	}

	submitted := 0
	for i := range candidates {
		m := &candidates[i]

		participants, err := s.Source.Participants(m)
		if err != nil {
			log.Printf("skipping match %s: could not resolve participants: %v", m.MatchID, err)
			continue
		}

		verdict := CheckEligibility(m, participants)
		if !verdict.Eligible {
			log.Printf("match %s ineligible for DUPR: %s", m.MatchID, verdict.Reason)
			if err := s.Source.SetRatingEligibility(m.MatchID, false); err != nil {
				log.Printf("failed to record eligibility for match %s: %v", m.MatchID, err)
			}
			continue
		}

		sub, err := BuildSubmission(m, participants)
		if err != nil {
			log.Printf("skipping match %s: %v", m.MatchID, err)
			continue
		}

		if err := s.Limiter.Wait(ctx); err != nil {
			return submitted, err
		}
		if err := s.Client.SubmitMatch(ctx, sub); err != nil {
			log.Printf("DUPR submission failed for match %s: %v", m.MatchID, err)
			continue
		}
		if err := s.Source.MarkRatingSubmitted(m.MatchID); err != nil {
			log.Printf("failed to record submission for match %s: %v", m.MatchID, err)
			continue
		}
		submitted++
	}
	return submitted, nil
}
