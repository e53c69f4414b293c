package queries

//go:generate mockgen -source=journal.go -destination=../../../tests/mock/queries/journal.go -package=queriesmock

import (
	"context"

	"auction-sync/internal/usecase/shared"
)

const (
	DefaultJournalLimit = 20
	MaxJournalLimit     = 100
)

type JournalQueries interface {
	Recent(ctx context.Context, limit int) ([]shared.JournalEntry, error)
}

type journalQueriesImpl struct {
	journal shared.ActionJournal
}

func NewJournalQueries(journal shared.ActionJournal) JournalQueries {
	return &journalQueriesImpl{journal: journal}
}

func (q *journalQueriesImpl) Recent(ctx context.Context, limit int) ([]shared.JournalEntry, error) {
	if limit <= 0 {
		limit = DefaultJournalLimit
	}
	if limit > MaxJournalLimit {
		limit = MaxJournalLimit
	}
	entries, err := q.journal.Recent(ctx, limit)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []shared.JournalEntry{}
	}
	return entries, nil
}
