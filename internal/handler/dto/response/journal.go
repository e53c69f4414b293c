package response

import (
	"time"

	"auction-sync/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type JournalEntryResponse struct {
	ID         uuid.UUID `json:"id"`
	Kind       string    `json:"kind"`
	Caller     string    `json:"caller"`
	Outcome    string    `json:"outcome"`
	Reason     string    `json:"reason,omitempty"`
	TxHash     string    `json:"tx_hash,omitempty"`
	AsOfBefore uint64    `json:"as_of_before"`
	AsOfAfter  uint64    `json:"as_of_after"`
	CreatedAt  time.Time `json:"created_at"`
}

func FromJournalEntries(entries []shared.JournalEntry) ([]JournalEntryResponse, error) {
	res := make([]JournalEntryResponse, 0, len(entries))
	if err := copier.Copy(&res, &entries); err != nil {
		return nil, err
	}
	return res, nil
}
