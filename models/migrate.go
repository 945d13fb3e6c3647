package models

import (
	"fmt"
	"log"
	"os"

	"gorm.io/gen"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

/*
Migration & Codegen Usage:

1. Set the environment variable: GENERATE_MODELS=true
2. Run the application: go run main.go

AutoMigrate creates the five tables, the tag_posts join table, the cascading
foreign keys and the tag name uniqueness index, then gorm/gen emits typed
query helpers under ./generated.
*/

// GenerateModels migrates the schema and regenerates typed query helpers.
func GenerateModels(db *gorm.DB) {
	// First, ensure the database is ready
	if err := db.Exec("SELECT 1").Error; err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}

	// Set up verbose logging for migration
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             0,
			LogLevel:                  logger.Info,
			IgnoreRecordNotFoundError: false,
			Colorful:                  true,
		},
	)

	migrateDB := db.Session(&gorm.Session{
		Logger:                 newLogger,
		SkipDefaultTransaction: true,
		PrepareStmt:            false,
	})

	fmt.Println("Starting database migration...")
	if err := migrateDB.AutoMigrate(
		&Post{},
		&Comment{},
		&Tag{},
		&Product{},
		&Order{},
	); err != nil {
		fmt.Printf("Error during models migration: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Database migration completed successfully!")

	g := gen.NewGenerator(gen.Config{
		OutPath:           "./generated",
		Mode:              gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable:     true,
		FieldCoverable:    true,
		FieldWithIndexTag: true,
		FieldWithTypeTag:  true,
	})

	g.UseDB(migrateDB)

	g.ApplyBasic(
		Post{},
		Comment{},
		Tag{},
		Product{},
		Order{},
	)

	g.Execute()
	fmt.Println("Model generation complete!")
}
