package database

import (
	"gorm.io/gorm"

	"github.com/demosite/blogshop-backend/models"
)

type TagRepo struct {
	db *gorm.DB
}

func NewTagRepo(db *gorm.DB) *TagRepo {
	return &TagRepo{db}
}

// FindAll returns all tags from the database
func (r *TagRepo) FindAll() ([]*models.Tag, error) {
	var tags []*models.Tag
	err := r.db.Find(&tags).Error
	return tags, err
}

// FindByID returns a tag by its ID
func (r *TagRepo) FindByID(id int64) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.First(&tag, id).Error
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// FindByName returns the tag with the given name, if any
func (r *TagRepo) FindByName(name string) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.Where("name = ?", name).First(&tag).Error
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// Add inserts a new tag. Duplicate names fail on the unique index.
func (r *TagRepo) Add(tag *models.Tag) error {
	return r.db.Create(tag).Error
}

// Delete removes a tag from the database by id
func (r *TagRepo) Delete(id int64) error {
	return r.db.Delete(&models.Tag{}, id).Error
}

// TagPost links a tag to a post in the tag_posts join table
func (r *TagRepo) TagPost(tag *models.Tag, post *models.Post) error {
	return r.db.Model(tag).Association("Posts").Append(post)
}

// UntagPost removes the tag's link to a post from the join table
func (r *TagRepo) UntagPost(tag *models.Tag, post *models.Post) error {
	return r.db.Model(tag).Association("Posts").Delete(post)
}
