package models

// Comment represents a reader comment attached to a single post
type Comment struct {
	ID      int64  `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	PostID  int64  `json:"postId" db:"post_id" gorm:"not null;index:idx_comment_post_id"`
	Author  string `json:"author" db:"author" gorm:"type:varchar(100);not null"`
	Content string `json:"content" db:"content" gorm:"type:text;not null"`

	Post *Post `json:"post,omitempty" gorm:"foreignKey:PostID;references:ID;constraint:OnDelete:CASCADE"`
}
