package seeders

import (
	"os"

	"planvite.app/configs/configslog"
	"planvite.app/models"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedDemoUser creates the user described by the SEED_USER_* environment
// variables when one is configured and not present yet. Useful for local
// setups; a missing SEED_USER_EMAIL skips the step entirely.
func SeedDemoUser(db *gorm.DB) error {
	email := os.Getenv("SEED_USER_EMAIL")
	if email == "" {
		configslog.SLog.Info("SEED_USER_EMAIL not set, skipping demo user seed.")
		return nil
	}

	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		configslog.SLog.Info("Demo user already exists, nothing to seed.")
		return nil
	}

	password := os.Getenv("SEED_USER_PASSWORD")
	if password == "" {
		password = "changeme"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	name := os.Getenv("SEED_USER_NAME")
	if name == "" {
		name = "Demo User"
	}

	user := models.User{Name: name, Email: email, PasswordHash: string(hash)}
	if err := db.Create(&user).Error; err != nil {
		configslog.Log.Error("Failed to seed demo user", zap.Error(err))
		return err
	}

	configslog.SLog.Infof("Demo user seeded: id=%d", user.ID)
	return nil
}
