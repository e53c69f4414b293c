package repository

import (
	"context"
	"time"

	"auction-sync/internal/infra"
	"auction-sync/internal/pkg/errs"
	"auction-sync/internal/pkg/ptr"
	"auction-sync/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

const pgErrCodeUniqueViolation = "23505"

// DBTX is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const insertJournalEntry = `
INSERT INTO action_journal (id, kind, caller, outcome, reason, tx_hash, as_of_before, as_of_after, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

const listRecentJournalEntries = `
SELECT id, kind, caller, outcome, reason, tx_hash, as_of_before, as_of_after, created_at
FROM action_journal
ORDER BY created_at DESC, id
LIMIT $1`

type JournalRepository struct {
	db DBTX
}

var _ shared.ActionJournal = (*JournalRepository)(nil)

func NewJournalRepository(db DBTX) *JournalRepository {
	return &JournalRepository{db: db}
}

func (r *JournalRepository) Record(ctx context.Context, e shared.JournalEntry) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	_, err := r.db.Exec(ctx, insertJournalEntry,
		e.ID,
		e.Kind,
		e.Caller,
		e.Outcome,
		ptr.PgtypeFromString(&e.Reason),
		ptr.PgtypeFromString(&e.TxHash),
		ptr.PgtypeFromUint64(&e.AsOfBefore),
		ptr.PgtypeFromUint64(&e.AsOfAfter),
		e.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errs.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation {
			return infra.WrapRepoErr("journal entry already recorded", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to record journal entry", err)
	}
	return nil
}

func (r *JournalRepository) Recent(ctx context.Context, limit int) ([]shared.JournalEntry, error) {
	rows, err := r.db.Query(ctx, listRecentJournalEntries, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list journal entries", err)
	}
	defer rows.Close()

	entries := []shared.JournalEntry{}
	for rows.Next() {
		var (
			e          shared.JournalEntry
			reason, tx pgtype.Text
			before     pgtype.Int8
			after      pgtype.Int8
			createdAt  time.Time
		)
		if err := rows.Scan(&e.ID, &e.Kind, &e.Caller, &e.Outcome, &reason, &tx, &before, &after, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan journal entry", err)
		}
		if s := ptr.StringFromPgtype(reason); s != nil {
			e.Reason = *s
		}
		if s := ptr.StringFromPgtype(tx); s != nil {
			e.TxHash = *s
		}
		if v := ptr.Uint64FromPgtype(before); v != nil {
			e.AsOfBefore = *v
		}
		if v := ptr.Uint64FromPgtype(after); v != nil {
			e.AsOfAfter = *v
		}
		e.CreatedAt = createdAt.UTC()
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate journal entries", err)
	}
	return entries, nil
}
