package audit

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(ctx context.Context, ev Event) error {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	entry := models.AuditLog{
		ActorID:  ev.ActorID,
		Action:   ev.Action,
		Entity:   ev.Entity,
		EntityID: ev.EntityID,
		Metadata: metaJSON,
	}

	return l.db.WithContext(ctx).Create(&entry).Error
}

// Query filters the audit trail. Zero values do not filter.
type Query struct {
	ActorID string
	Action  string
	Entity  string
	From    time.Time
	To      time.Time
	Limit   int
	Offset  int
}

// List returns one page of entries, newest first, and the matching total.
func (l *Logger) List(ctx context.Context, q Query) ([]models.AuditLog, int64, error) {
	base := l.db.WithContext(ctx).Model(&models.AuditLog{})

	if q.ActorID != "" {
		base = base.Where("actor_id = ?", q.ActorID)
	}
	if q.Action != "" {
		base = base.Where("action = ?", q.Action)
	}
	if q.Entity != "" {
		base = base.Where("entity = ?", q.Entity)
	}
	if !q.From.IsZero() {
		base = base.Where("created_at >= ?", q.From)
	}
	if !q.To.IsZero() {
		base = base.Where("created_at < ?", q.To)
	}
	base = base.Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, httperr.Transient("count audit logs", err)
	}

	var logs []models.AuditLog
	if err := base.
		Order("created_at DESC").
		Limit(q.Limit).
		Offset(q.Offset).
		Find(&logs).Error; err != nil {
		return nil, 0, httperr.Transient("list audit logs", err)
	}
	return logs, total, nil
}
