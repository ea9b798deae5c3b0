/* dupr.go
 * Contains the HTTP client used to send match submissions to the DUPR api.
 * Submissions are keyed by the idempotency identifier built in api/rating, so
 * a retried request is safe on the authority's side.
 */

package external

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"courtside/api/rating"
)

// DuprClient posts match submissions to the DUPR api
type DuprClient struct {
	BaseURL string
	APIKey  string
	client  *http.Client
}

// Ensure DuprClient satisfies the submitter's transport interface
var _ rating.Client = (*DuprClient)(nil)

// NewDuprClient creates a DuprClient for the given endpoint
// Preconditions: Receives the api base url and api key
// Postconditions: Returns a pointer to the client, or an error if the url is missing
func NewDuprClient(baseURL string, apiKey string) (*DuprClient, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("DUPR base url is required")
	}
	return &DuprClient{
		BaseURL: baseURL,
		APIKey:  apiKey,
		client:  &http.Client{Timeout: 10 * time.Second},
	}, nil
}

// SubmitMatch posts one match submission to the DUPR api
// Preconditions: Receives a context and the payload built by the rating package
// Postconditions: Returns nil on a 2xx response, or an error describing the failure
func (c *DuprClient) SubmitMatch(ctx context.Context, sub rating.MatchSubmission) error {
	body, err := json.Marshal(sub)
	if err != nil {
		return fmt.Errorf("failed to encode submission %s: %w", sub.SubmissionID, err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/v1/matches", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request for submission %s: %w", sub.SubmissionID, err)
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Authorization", "Bearer "+c.APIKey)
	request.Header.Set("Idempotency-Key", sub.SubmissionID)

	response, err := c.client.Do(request)
	if err != nil {
		return fmt.Errorf("request failed for submission %s: %w", sub.SubmissionID, err)
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(response.Body, 512))
		return fmt.Errorf("DUPR rejected submission %s: status %d: %s", sub.SubmissionID, response.StatusCode, string(payload))
	}
	return nil
}
