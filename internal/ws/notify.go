package ws

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type ApplicationReceivedEvent struct {
	Type          string `json:"type"`
	JobID         string `json:"job_id"`
	ApplicationID string `json:"application_id"`
	Timestamp     string `json:"timestamp"`
}

// Notifier satisfies usecase.ApplicationNotifier by broadcasting through
// the hub. Broadcasts never block the applying request.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

func (n *Notifier) ApplicationReceived(jobID, applicationID uuid.UUID) {
	if n == nil || n.hub == nil {
		return
	}

	evt := ApplicationReceivedEvent{
		Type:          "application_received",
		JobID:         jobID.String(),
		ApplicationID: applicationID.String(),
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	n.hub.Broadcast(b)
}
