package shared

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// JournalEntry is the audit record of one performed action.
type JournalEntry struct {
	ID         uuid.UUID
	Kind       string
	Caller     string
	Outcome    string
	Reason     string
	TxHash     string
	AsOfBefore uint64
	AsOfAfter  uint64
	CreatedAt  time.Time
}

type ActionJournal interface {
	Record(ctx context.Context, e JournalEntry) error
	Recent(ctx context.Context, limit int) ([]JournalEntry, error)
}

// NopJournal is used when no database is configured.
type NopJournal struct{}

func (NopJournal) Record(context.Context, JournalEntry) error { return nil }

func (NopJournal) Recent(context.Context, int) ([]JournalEntry, error) { return nil, nil }
