package database

import (
	"fmt"

	"scheduler-api/core/database/migrations"
	"scheduler-api/core/logger"

	"github.com/pressly/goose/v3"
)

// gooseLogger routes goose output through the process logger.
type gooseLogger struct{}

func (gooseLogger) Fatal(v ...any) { logger.Fatal("Database:Migrate", "detail", fmt.Sprint(v...)) }
func (gooseLogger) Fatalf(format string, v ...any) {
	logger.Fatal("Database:Migrate", "detail", fmt.Sprintf(format, v...))
}
func (gooseLogger) Print(v ...any)   { logger.Info("Database:Migrate", "detail", fmt.Sprint(v...)) }
func (gooseLogger) Println(v ...any) { logger.Info("Database:Migrate", "detail", fmt.Sprint(v...)) }
func (gooseLogger) Printf(format string, v ...any) {
	logger.Info("Database:Migrate", "detail", fmt.Sprintf(format, v...))
}

// Migrate applies the embedded schema migrations.
func (d *Database) Migrate() error {
	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(gooseLogger{})

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}
	if err := goose.Up(d.sqlx.DB, "."); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}
