// Package mock provides test doubles for BDD integration tests.
package mock

import (
	"database/sql"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/fitness-partner/backend/internal/integration/persistence/model"
)

var once sync.Once
var db *Db

// Db wraps a shared in-memory database used across scenarios.
type Db struct {
	DbConn *gorm.DB
}

// NewDb opens (once) the in-memory database with the full schema migrated.
func NewDb() *Db {
	once.Do(func() {
		db = open()
	})
	return db
}

func open() *Db {
	dbSQL, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}

	dbSQL.SetMaxOpenConns(1)

	dbConn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	if err := dbConn.AutoMigrate(
		&model.UserModel{},
		&model.MealModel{},
		&model.DailyGoalModel{},
		&model.ConversationModel{},
	); err != nil {
		panic("failed to migrate schema. err: " + err.Error())
	}

	return &Db{DbConn: dbConn}
}

// ClearDB wipes all rows so each scenario starts from an empty state.
func (d *Db) ClearDB() error {
	for _, table := range []string{"meals", "daily_goals", "conversations", "users"} {
		if err := d.DbConn.Exec("DELETE FROM " + table).Error; err != nil {
			return err
		}
	}
	return nil
}
