package main

import (
	"flag"

	"planvite.app/configs/configsdatabase"
	"planvite.app/configs/configslog"
	"planvite.app/database"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	configslog.InitLogger()
	defer configslog.SyncLogger()

	migrateFlag := flag.Bool("migrate", false, "run the database migrations")
	seedFlag := flag.Bool("seed", false, "run the database seeders")
	flag.Parse()

	db, err := configsdatabase.Connect()
	if err != nil {
		configslog.Log.Fatal("database connection failed", zap.Error(err))
	}
	defer configsdatabase.Close(db)

	configslog.SLog.Info("Running database initialization...")
	database.Initialize(db, *migrateFlag, *seedFlag)
	configslog.SLog.Info("Database initialization done.")
}
