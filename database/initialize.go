package database

import (
	"planvite.app/configs/configslog"
	"planvite.app/database/migrations"
	"planvite.app/database/seeders"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Initialize runs the requested migration/seed steps inside one transaction.
func Initialize(db *gorm.DB, migrate bool, seed bool) {
	if !migrate && !seed {
		configslog.SLog.Info("Neither migrate nor seed requested, nothing to do.")
		return
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if migrate {
			configslog.SLog.Info("Running migrations...")
			if err := RunMigrationsInOrder(tx); err != nil {
				return err
			}
			configslog.SLog.Info("Migrations completed.")
		}
		if seed {
			configslog.SLog.Info("Running seeders...")
			if err := RunSeeders(tx); err != nil {
				return err
			}
			configslog.SLog.Info("Seeders completed.")
		}
		return nil
	})
	if err != nil {
		configslog.Log.Error("Database initialization failed", zap.Error(err))
		return
	}

	configslog.SLog.Info("Database initialization finished successfully")
}

// RunMigrationsInOrder migrates table by table; users first, then the event
// aggregate tables that reference them.
func RunMigrationsInOrder(db *gorm.DB) error {
	if err := migrations.MigrateUsersTable(db); err != nil {
		return err
	}
	if err := migrations.MigrateEventsTable(db); err != nil {
		return err
	}
	if err := migrations.MigrateRSVPTable(db); err != nil {
		return err
	}
	if err := migrations.MigrateCommentsTable(db); err != nil {
		return err
	}
	return nil
}

// RunSeeders executes every seeder; each one decides for itself whether it
// has work to do.
func RunSeeders(db *gorm.DB) error {
	return seeders.SeedDemoUser(db)
}
