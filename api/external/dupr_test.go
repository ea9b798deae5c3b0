/* dupr_test.go
 * Contains unit tests for dupr.go functions, using httptest to stand in for
 * the DUPR api
 */

package external

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"courtside/api/match"
	"courtside/api/rating"
)

func testSubmission() rating.MatchSubmission {
	return rating.MatchSubmission{
		SubmissionID: "league_spring-league-2026_m1",
		EventID:      "spring-league-2026",
		EventType:    "league",
		MatchID:      "m1",
		SideADuprIDs: []string{"DUPR-001", "DUPR-002"},
		SideBDuprIDs: []string{"DUPR-003", "DUPR-004"},
		Scores:       []match.GameScore{{SideA: 11, SideB: 9}},
		WinnerSide:   match.SideA,
	}
}

// TestNewDuprClient tests constructor validation
func TestNewDuprClient(t *testing.T) {
	c, err := NewDuprClient("https://api.dupr.example", "key")
	assert.NoError(t, err)
	assert.NotNil(t, c)

	_, err = NewDuprClient("", "key")
	assert.Error(t, err)
}

// TestSubmitMatch tests a successful submission including the headers DUPR requires
func TestSubmitMatch(t *testing.T) {
	var received rating.MatchSubmission
	var gotAuth, gotIdempotency string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/matches", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		gotIdempotency = r.Header.Get("Idempotency-Key")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	c, _ := NewDuprClient(server.URL, "secret-key")
	err := c.SubmitMatch(context.Background(), testSubmission())

	assert.NoError(t, err)
	assert.Equal(t, "Bearer secret-key", gotAuth)
	assert.Equal(t, "league_spring-league-2026_m1", gotIdempotency)
	assert.Equal(t, "m1", received.MatchID)
	assert.Equal(t, []string{"DUPR-001", "DUPR-002"}, received.SideADuprIDs)
}

// TestSubmitMatch_Rejected tests a non-2xx response surfacing as an error
func TestSubmitMatch_Rejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"error":"player not found"}`))
	}))
	defer server.Close()

	c, _ := NewDuprClient(server.URL, "key")
	err := c.SubmitMatch(context.Background(), testSubmission())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status 422")
	assert.Contains(t, err.Error(), "player not found")
}

// TestSubmitMatch_ServerUnreachable tests a transport failure
func TestSubmitMatch_ServerUnreachable(t *testing.T) {
	c, _ := NewDuprClient("http://127.0.0.1:1", "key")

	err := c.SubmitMatch(context.Background(), testSubmission())

	assert.Error(t, err)
}
