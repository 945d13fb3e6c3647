package database

import (
	"gorm.io/gorm"

	"github.com/demosite/blogshop-backend/models"
)

type PostRepo struct {
	db *gorm.DB
}

func NewPostRepo(db *gorm.DB) *PostRepo {
	return &PostRepo{db}
}

// GetDB returns the underlying database connection for debugging purposes
func (r *PostRepo) GetDB() *gorm.DB {
	return r.db
}

// FindAll returns all posts with their tags and comments
func (r *PostRepo) FindAll() ([]*models.Post, error) {
	var posts []*models.Post
	err := r.db.Preload("Tags").Preload("Comments").Find(&posts).Error
	return posts, err
}

// FindPublished returns all posts flagged as published
func (r *PostRepo) FindPublished() ([]*models.Post, error) {
	var posts []*models.Post
	err := r.db.Preload("Tags").Where("is_published = ?", true).Find(&posts).Error
	return posts, err
}

// FindByID returns a post by its ID
func (r *PostRepo) FindByID(id int64) (*models.Post, error) {
	var post models.Post
	err := r.db.Preload("Tags").Preload("Comments").First(&post, id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Add inserts a new post into the database
func (r *PostRepo) Add(post *models.Post) error {
	return r.db.Create(post).Error
}

// Update updates an existing post. The published_date column has create-only
// write permission, so it survives saves of a loaded row unchanged.
func (r *PostRepo) Update(post *models.Post) error {
	return r.db.Save(post).Error
}

// Delete removes a post by id. Comments and tag associations go with it via
// the schema's cascade rules.
func (r *PostRepo) Delete(id int64) error {
	return r.db.Delete(&models.Post{}, id).Error
}
