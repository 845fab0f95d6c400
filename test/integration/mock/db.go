// Package mock provides in-process test doubles for integration tests.
package mock

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/budget-planner/backend/internal/integration/persistence/model"
)

var dbOnce sync.Once
var dbConn *gorm.DB

// migratedModels lists every persisted model in dependency order, so tables
// with foreign keys are created after the tables they reference and cleared
// before them.
var migratedModels = []any{
	&model.UserModel{},
	&model.CategoryModel{},
	&model.BudgetModel{},
	&model.TransactionModel{},
	&model.GoalModel{},
	&model.GoalContributionModel{},
}

// NewDb returns a shared in-memory SQLite connection with the full schema
// migrated. The connection is created once per test binary.
func NewDb() *gorm.DB {
	dbOnce.Do(func() {
		dbConn = openDb()
	})
	return dbConn
}

func openDb() *gorm.DB {
	sqlDB, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}

	// A single connection keeps the shared in-memory database alive
	sqlDB.SetMaxOpenConns(1)

	conn, err := gorm.Open(sqlite.Dialector{Conn: sqlDB}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	if err := conn.AutoMigrate(migratedModels...); err != nil {
		panic(fmt.Sprintf("failed to migrate test schema. err: %s", err.Error()))
	}

	return conn
}

// ClearDb removes every row from every table, children first.
func ClearDb(db *gorm.DB) error {
	for i := len(migratedModels) - 1; i >= 0; i-- {
		err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(migratedModels[i]).Error
		if err != nil {
			return fmt.Errorf("failed to clear table for model %T: %w", migratedModels[i], err)
		}
	}
	return nil
}
