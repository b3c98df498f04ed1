package ports

import (
	"context"
	"time"
)

// HistoryStore persists the outcome of completed search sessions. Persistence
// is best effort: callers log failures and never abort a search because of them.
type HistoryStore interface {
	Record(ctx context.Context, record RunRecord) error
	Recent(ctx context.Context, limit int) ([]RunRecord, error)
	Close() error
}

// RunRecord captures one finished search.
type RunRecord struct {
	ID          string    `json:"id"`
	Algorithm   string    `json:"algorithm"`
	Input       string    `json:"input"`
	Target      int       `json:"target"`
	Found       bool      `json:"found"`
	Index       int       `json:"index"`
	Comparisons int       `json:"comparisons"`
	Resorted    bool      `json:"resorted"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
}
