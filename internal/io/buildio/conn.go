package buildio

import (
	"log/slog"

	"github.com/davidpeckham/vin/pkg/io/modelio"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func gormConn(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		slog.Error("Cannot open database", "error", err, "path", path)
		return nil, err
	}
	return db, nil
}

func closeConn(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	_ = sqlDB.Close()
}

func (b *buildio) migrate() error {
	slog.Info("Creating snapshot schema")
	m := modelio.New(b.db)
	return m.Migrate()
}
