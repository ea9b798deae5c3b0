package web

import (
	"encoding/json"
	"log"
	"net/http"
)

// DuprEvent is the callback DUPR posts after processing a submission.
type DuprEvent struct {
	SubmissionID string `json:"submissionId"`
	MatchID      string `json:"matchId"`
	EventID      string `json:"eventId"`
	Status       string `json:"status"` // confirmed, needs_correction
}

// DuprWebhookHandler HTTP endpoint that receives submission callbacks from
// the DUPR api, used to confirm a submission or flag it for correction
// Preconditions: HTTP server has been started, receives HTTP ResponseWriter and Http Request
// Postconditions: Records the submission outcome on the match record
func (s *Server) DuprWebhookHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	defer r.Body.Close()

	var event DuprEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		log.Println("failed to decode webhook:", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if event.EventID != "" && event.EventID != s.api.Store.GetEventID() {
		// Callback for another event's deployment
		w.WriteHeader(http.StatusOK)
		return
	}
	if event.MatchID == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	log.Printf("DUPR event submission=%s match=%s status=%s\n", event.SubmissionID, event.MatchID, event.Status)

	switch event.Status {
	case "confirmed":
		if err := s.api.Store.MarkRatingSubmitted(event.MatchID); err != nil {
			log.Println("failed to record confirmed submission:", err)
		}
	case "needs_correction":
		if err := s.api.Store.FlagRatingCorrection(event.MatchID); err != nil {
			log.Println("failed to flag submission for correction:", err)
		}
	default:
		log.Printf("ignoring unknown DUPR status %q for match %s\n", event.Status, event.MatchID)
	}

	w.WriteHeader(http.StatusOK)
}
