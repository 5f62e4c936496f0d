package domain

import "time"

// JobState representa o estado de um job de relatório
type JobState string

const (
	JobPending JobState = "pending"
	JobDone    JobState = "done"
)

// ReportJob acompanha uma requisição de relatório identificada por um
// request_id opaco. Transição única: pending -> done.
type ReportJob struct {
	RequestID   string     `json:"request_id"`
	State       JobState   `json:"state"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}
