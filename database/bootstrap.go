package database

import (
	"log"
	"time"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"

	"farmlink/entities"
)

func OpenSQLite(path string) *gorm.DB {
	// Timestamps are stored in UTC regardless of the configured timezone;
	// sqlite compares them as wall-clock strings, so every stored value and
	// every bound cutoff must share one zone.
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&entities.Actor{},
		&entities.Farm{},
		&entities.FarmReport{},
		&entities.Transaction{},
	); err != nil {
		log.Fatalf("automigrate: %v", err)
	}

	return db
}

// OpenMemory opens an isolated named in-memory database; used by tests.
// The shared cache keeps every pooled connection on the same database.
func OpenMemory(name string) *gorm.DB {
	return OpenSQLite("file:" + name + "?mode=memory&cache=shared")
}
