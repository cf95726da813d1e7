package audit

import (
	"context"
	"encoding/json"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/service-marketplace/internal/models"
)

type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(ctx context.Context, ev Event) error {
	var details string
	if ev.Details != nil {
		if b, err := json.Marshal(ev.Details); err == nil {
			details = string(b)
		}
	}

	entry := models.AuditLog{
		ActorID:      ev.ActorID,
		ActorEmail:   ev.ActorEmail,
		Action:       ev.Action,
		ResourceType: ev.ResourceType,
		ResourceID:   ev.ResourceID,
		Details:      details,
	}

	return l.db.WithContext(ctx).Create(&entry).Error
}
