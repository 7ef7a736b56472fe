package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TypeExpireQrSession = "qrsession:expire"

type QrSessionPayload struct {
	SessionID string `json:"session_id"`
}

// NewExpireQrSessionTask deactivates a QR attendance session; it is
// enqueued with ProcessAt set to the session's expiry.
func NewExpireQrSessionTask(sessionID string) (*asynq.Task, error) {
	payload, err := json.Marshal(QrSessionPayload{SessionID: sessionID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeExpireQrSession, payload), nil
}
