package models

import (
	"time"
)

// Post represents a blog post with its comments and tags
type Post struct {
	ID            int64     `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	Title         string    `json:"title" db:"title" gorm:"type:varchar(200);not null"`
	Content       string    `json:"content" db:"content" gorm:"type:text;not null"`
	Author        string    `json:"author" db:"author" gorm:"type:varchar(100);not null"`
	PublishedDate time.Time `json:"publishedDate" db:"published_date" gorm:"type:timestamptz;not null;autoCreateTime;<-:create"`
	IsPublished   bool      `json:"isPublished" db:"is_published" gorm:"not null;default:false"`

	Comments []Comment `json:"comments,omitempty" gorm:"foreignKey:PostID;references:ID;constraint:OnDelete:CASCADE"`
	Tags     []Tag     `json:"tags,omitempty" gorm:"many2many:tag_posts;constraint:OnDelete:CASCADE"`
}
