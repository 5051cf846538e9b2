package jobs

import "time"

// StatusQueued is the only status this service ever writes: there is no job
// processor, so records never transition out of the queue.
const StatusQueued = "queued"

// Job represents a queued generation request owned by a Telegram user.
type Job struct {
	ID         string
	TelegramID string
	Status     string
	Prompt     string
	ResultText *string
	CreatedAt  time.Time
}
