package mock

import (
	"fmt"
	"sync/atomic"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/alvaro-malheiros/pipo-budget-manager/internal/integration/persistence/model"
)

var dbCounter atomic.Int64

// NewDb opens a fresh named in-memory SQLite database with the storage table
// migrated. Each call returns an isolated database.
func NewDb() (*gorm.DB, error) {
	dsn := fmt.Sprintf("file:godog_%d?mode=memory&cache=shared", dbCounter.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open in-memory database: %w", err)
	}
	if err := db.AutoMigrate(&model.StorageEntryModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate storage table: %w", err)
	}
	return db, nil
}
