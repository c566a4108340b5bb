// Package audit appends best-effort audit trail entries. Failures are logged
// and swallowed; audit writes are never part of the caller's transaction.
package audit

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
)

type Entry struct {
	ID         string
	ActorID    *string
	ActorType  string
	Action     string
	EntityType string
	EntityID   string
	IPAddress  string
	Metadata   string
	OccurredAt time.Time
}

type Store interface {
	InsertAuditLog(ctx context.Context, entry *Entry) error
}

type Recorder struct {
	store Store
}

func NewRecorder(store Store) *Recorder {
	return &Recorder{store: store}
}

// Record stamps and appends the entry. Safe to call on a nil recorder.
func (r *Recorder) Record(ctx context.Context, entry Entry) {
	if r == nil || r.store == nil {
		return
	}

	entry.ID = uuid.NewString()
	entry.OccurredAt = time.Now()

	if err := r.store.InsertAuditLog(ctx, &entry); err != nil {
		log.Printf("warn: failed to append audit entry %s/%s: %v", entry.EntityType, entry.Action, err)
	}
}
