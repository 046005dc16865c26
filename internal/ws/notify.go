package ws

import (
	"encoding/json"
	"time"

	"skill-gap/internal/domain/analysis"

	"github.com/google/uuid"
)

const EventAnalysisCompleted = "analysis_completed"

type AnalysisCompletedEvent struct {
	Type            string    `json:"type"`
	AnalysisID      uuid.UUID `json:"analysis_id"`
	RequestID       uint64    `json:"request_id"`
	JobTitle        string    `json:"job_title"`
	Company         string    `json:"company"`
	MatchPercentage int       `json:"match_percentage"`
	Gaps            []string  `json:"gaps"`
	Degraded        bool      `json:"degraded"`
	Timestamp       string    `json:"timestamp"`
}

// Notifier publishes completed analyses to the owner's websocket clients.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

func (n *Notifier) AnalysisCompleted(userID uuid.UUID, res analysis.Result) {
	if n == nil || n.hub == nil {
		return
	}
	b, err := json.Marshal(NewAnalysisCompletedEvent(res))
	if err != nil {
		n.hub.logger.Printf("WS encode error | analysis_id=%s err=%v", res.ID, err)
		return
	}
	n.hub.SendTo(userID, b)
}

func NewAnalysisCompletedEvent(res analysis.Result) AnalysisCompletedEvent {
	gaps := res.Gaps
	if gaps == nil {
		gaps = []string{}
	}
	return AnalysisCompletedEvent{
		Type:            EventAnalysisCompleted,
		AnalysisID:      res.ID,
		RequestID:       res.RequestID,
		JobTitle:        res.JobTitle,
		Company:         res.Company,
		MatchPercentage: res.MatchPercentage,
		Gaps:            gaps,
		Degraded:        res.Degraded,
		Timestamp:       res.Timestamp.UTC().Format(time.RFC3339),
	}
}
