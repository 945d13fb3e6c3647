package database

import (
	"context"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/demosite/blogshop-backend/config"
)

type Database struct {
	db          *gorm.DB
	postRepo    *PostRepo
	commentRepo *CommentRepo
	tagRepo     *TagRepo
	productRepo *ProductRepo
	orderRepo   *OrderRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		db:          db,
		postRepo:    NewPostRepo(db),
		commentRepo: NewCommentRepo(db),
		tagRepo:     NewTagRepo(db),
		productRepo: NewProductRepo(db),
		orderRepo:   NewOrderRepo(db),
	}
}

// Ping verifies the database connection with a trivial query
func (d Database) Ping(ctx context.Context) error {
	var result int
	return d.db.WithContext(ctx).Raw("SELECT 1").Scan(&result).Error
}

// Accessor methods for each repository

func (d Database) PostRepo() *PostRepo {
	return d.postRepo
}

func (d Database) CommentRepo() *CommentRepo {
	return d.commentRepo
}

func (d Database) TagRepo() *TagRepo {
	return d.tagRepo
}

func (d Database) ProductRepo() *ProductRepo {
	return d.productRepo
}

func (d Database) OrderRepo() *OrderRepo {
	return d.orderRepo
}

// Open connects to Postgres using the resolved settings. Connection pooling is
// owned by database/sql; the only tunable applied here is the 60s max
// connection age the deployment expects.
func Open(settings config.Settings) (*gorm.DB, error) {
	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             10 * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  settings.Database.DSN(),
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		PrepareStmt: false,
		Logger:      gormLogger,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetConnMaxLifetime(config.DBConnMaxAge)

	return db, nil
}
