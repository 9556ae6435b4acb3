package db

import (
	"fmt"

	"expensetrack/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Connect opens the PostgreSQL database through GORM and ensures the schema.
func Connect(dsn string) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		// Every store operation is a single statement; multi-statement
		// transactions are not used anywhere.
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	if err := gdb.AutoMigrate(&models.User{}, &models.Expense{}); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	// Fail fast if the DB cannot be reached.
	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("unwrap sql.DB: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return gdb, nil
}
