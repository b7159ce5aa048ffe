package audit

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/house-hunting/internal/jobs"
	"github.com/BruksfildServices01/house-hunting/internal/models"
	"github.com/BruksfildServices01/house-hunting/internal/pagination"
)

type Event struct {
	ActorID  string
	Action   string
	Entity   string
	EntityID string
	Metadata any
}

type Store interface {
	WriteAuditLog(ctx context.Context, entry *models.AuditLog) error
	ListAuditLogs(ctx context.Context, actorID, action string, p pagination.Params) ([]models.AuditLog, int64, error)
}

// Sink accepts events without ever failing the caller.
type Sink interface {
	Record(ev Event)
}

// Recorder persists events on the background queue.
type Recorder struct {
	store Store
	queue jobs.Submitter
	log   *zap.Logger
}

func NewRecorder(store Store, queue jobs.Submitter, log *zap.Logger) *Recorder {
	return &Recorder{store: store, queue: queue, log: log}
}

func (r *Recorder) Record(ev Event) {
	entry := &models.AuditLog{
		ActorID:  ev.ActorID,
		Action:   ev.Action,
		Entity:   ev.Entity,
		EntityID: ev.EntityID,
	}
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			entry.Metadata = string(b)
		} else {
			r.log.Warn("audit metadata not serializable", zap.String("action", ev.Action), zap.Error(err))
		}
	}

	r.queue.Submit(jobs.Job{
		Name: "audit." + ev.Action,
		Run: func(ctx context.Context) error {
			return r.store.WriteAuditLog(ctx, entry)
		},
	})
}

// Discard drops every event.
type Discard struct{}

func (Discard) Record(Event) {}
