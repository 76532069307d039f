package migrations

import (
	"planvite.app/configs/configslog"
	"planvite.app/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MigrateRSVPTable creates/updates the event_rsvps table, including the
// unique (event, user) index backing the one-answer-per-user invariant.
func MigrateRSVPTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating event_rsvps table...")
	if err := db.AutoMigrate(&models.EventRSVP{}); err != nil {
		configslog.Log.Error("Failed to migrate event_rsvps table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Event_rsvps table migrated successfully")
	return nil
}
