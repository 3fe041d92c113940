package persist

import (
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

// record is a row in the kv_store table
type record struct {
	Key       string `gorm:"primaryKey;column:key"`
	Value     string `gorm:"type:text;not null;column:value"`
	UpdatedAt time.Time
}

func (record) TableName() string {
	return "kv_store"
}

// SQLiteAdapter stores each collection as one row in a local sqlite file
type SQLiteAdapter struct {
	db *gorm.DB
}

// OpenSQLite opens (or creates) the sqlite data file
func OpenSQLite(path string) (*SQLiteAdapter, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open data file: %w", err)
	}
	return &SQLiteAdapter{db: db}, nil
}

// AutoMigrate creates the kv_store table if it does not exist. cmd/migrate
// manages the same schema through goose; this is the convenient path for a
// fresh local data file.
func (a *SQLiteAdapter) AutoMigrate() error {
	return a.db.AutoMigrate(&record{})
}

// Load implements Adapter
func (a *SQLiteAdapter) Load(key string) ([]byte, bool, error) {
	var rec record
	err := a.db.First(&rec, "key = ?", key).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to load %s: %w", key, err)
	}
	return []byte(rec.Value), true, nil
}

// Save implements Adapter with an upsert on the key
func (a *SQLiteAdapter) Save(key string, value []byte) error {
	rec := record{Key: key, Value: string(value), UpdatedAt: time.Now().UTC()}
	err := a.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&rec).Error
	if err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}

// Close releases the underlying database handle
func (a *SQLiteAdapter) Close() error {
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
