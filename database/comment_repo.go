package database

import (
	"gorm.io/gorm"

	"github.com/demosite/blogshop-backend/models"
)

type CommentRepo struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) *CommentRepo {
	return &CommentRepo{db}
}

// FindByPost returns all comments attached to the given post
func (r *CommentRepo) FindByPost(postID int64) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := r.db.Where("post_id = ?", postID).Find(&comments).Error
	return comments, err
}

// Add inserts a new comment into the database
func (r *CommentRepo) Add(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// Delete removes a comment from the database by id
func (r *CommentRepo) Delete(id int64) error {
	return r.db.Delete(&models.Comment{}, id).Error
}
