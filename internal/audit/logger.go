package audit

import (
	"encoding/json"
	"log/slog"

	"gorm.io/gorm"

	"github.com/OptiVisionCare/optic-booking/internal/models"
)

// Logger records booking lifecycle events. With a database it persists
// audit_logs rows; with nil it falls back to structured logs, which is the
// normal mode when the spreadsheet backend is active. Either way only
// action, entity and id are recorded, never the customer payload.
type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(
	action string,
	entity string,
	entityID string,
	metadata any,
) error {

	var metaJSON string
	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			metaJSON = string(b)
		}
	}

	if l.db == nil {
		slog.Info("audit",
			"action", action,
			"entity", entity,
			"entity_id", entityID,
		)
		return nil
	}

	log := models.AuditLog{
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Metadata: metaJSON,
	}

	return l.db.Create(&log).Error
}
