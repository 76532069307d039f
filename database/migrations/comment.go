package migrations

import (
	"planvite.app/configs/configslog"
	"planvite.app/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MigrateCommentsTable creates/updates the event_comments table.
func MigrateCommentsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating event_comments table...")
	if err := db.AutoMigrate(&models.EventComment{}); err != nil {
		configslog.Log.Error("Failed to migrate event_comments table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Event_comments table migrated successfully")
	return nil
}
