/* dupr_test.go
 * Contains unit tests for dupr.go functions, using httptest and the API
 * package's MockStore
 */

package web

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"courtside/api/api"
	"courtside/api/match"
)

func testServer() (*Server, *api.MockStore) {
	mockStore := api.NewMockStore("spring-league-2026", "league")
	return &Server{api: &api.API{Store: mockStore}}, mockStore
}

func submittedMatch() *match.Match {
	return &match.Match{
		MatchID:    "m1",
		EventID:    "spring-league-2026",
		Status:     match.StatusCompleted,
		ScoreState: match.ScoreStateSubmitted,
		Official:   &match.OfficialResult{WinnerID: "team-a"},
		Dupr:       &match.RatingSubmission{Submitted: true},
	}
}

func postWebhook(s *Server, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/webhooks/dupr", strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.DuprWebhookHandler(rec, req)
	return rec
}

// TestDuprWebhookHandler_Confirmed tests recording a confirmed submission
func TestDuprWebhookHandler_Confirmed(t *testing.T) {
	s, mockStore := testServer()
	m := submittedMatch()
	m.ScoreState = match.ScoreStateOfficial
	m.Dupr = nil
	mockStore.AddMatch(m)

	rec := postWebhook(s, `{"submissionId":"league_spring-league-2026_m1","matchId":"m1","eventId":"spring-league-2026","status":"confirmed"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	stored := mockStore.Matches["m1"]
	assert.True(t, stored.Dupr.Submitted)
	assert.Equal(t, match.ScoreStateSubmitted, stored.ScoreState)
}

// TestDuprWebhookHandler_NeedsCorrection tests flagging a submission for correction
func TestDuprWebhookHandler_NeedsCorrection(t *testing.T) {
	s, mockStore := testServer()
	mockStore.AddMatch(submittedMatch())

	rec := postWebhook(s, `{"matchId":"m1","eventId":"spring-league-2026","status":"needs_correction"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, mockStore.Matches["m1"].Dupr.NeedsCorrection)
}

// TestDuprWebhookHandler_OtherEventSkipped tests that a callback for another event
// is acknowledged without touching the store
func TestDuprWebhookHandler_OtherEventSkipped(t *testing.T) {
	s, mockStore := testServer()
	mockStore.AddMatch(submittedMatch())

	rec := postWebhook(s, `{"matchId":"m1","eventId":"other-event","status":"needs_correction"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, mockStore.Matches["m1"].Dupr.NeedsCorrection)
}

// TestDuprWebhookHandler_UnknownStatusIgnored tests that unknown statuses are acknowledged
func TestDuprWebhookHandler_UnknownStatusIgnored(t *testing.T) {
	s, mockStore := testServer()
	mockStore.AddMatch(submittedMatch())

	rec := postWebhook(s, `{"matchId":"m1","status":"processing"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, mockStore.Matches["m1"].Dupr.NeedsCorrection)
}

// TestDuprWebhookHandler_MissingMatchID tests a callback with no match id
func TestDuprWebhookHandler_MissingMatchID(t *testing.T) {
	s, _ := testServer()

	rec := postWebhook(s, `{"status":"confirmed"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// TestDuprWebhookHandler_MalformedBody tests a callback with invalid json
func TestDuprWebhookHandler_MalformedBody(t *testing.T) {
	s, _ := testServer()

	rec := postWebhook(s, `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// TestDuprWebhookHandler_GetRejected tests that only POST is accepted
func TestDuprWebhookHandler_GetRejected(t *testing.T) {
	s, _ := testServer()
	req := httptest.NewRequest(http.MethodGet, "/webhooks/dupr", nil)
	rec := httptest.NewRecorder()

	s.DuprWebhookHandler(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
